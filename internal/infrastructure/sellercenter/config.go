package sellercenter

import (
	"errors"
	"net/url"
	"time"
)

// Config holds the credentials and endpoint of a SellerCenter account
type Config struct {
	// Endpoint is the API base URL, e.g. https://sellercenter-api.falabella.com
	Endpoint string
	// UserID is the e-mail of the API user
	UserID string
	// APIKey is the secret used to sign requests
	APIKey string
	// Version is the API version parameter
	Version string
	// Format is the response format parameter
	Format string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

const (
	// DefaultVersion is the only API version SellerCenter serves
	DefaultVersion = "1.0"
	// DefaultFormat is the response format the client decodes
	DefaultFormat = "XML"
	// DefaultTimeoutSeconds is the HTTP timeout when none is configured
	DefaultTimeoutSeconds = 30
)

// Errors for SellerCenter configuration
var (
	ErrConfigMissingEndpoint = errors.New("sellercenter: endpoint is required")
	ErrConfigInvalidEndpoint = errors.New("sellercenter: endpoint must be an absolute URL")
	ErrConfigMissingUserID   = errors.New("sellercenter: user id is required")
	ErrConfigMissingAPIKey   = errors.New("sellercenter: api key is required")
)

// NewConfig creates a configuration with defaults
func NewConfig(endpoint, userID, apiKey string) *Config {
	return &Config{
		Endpoint:       endpoint,
		UserID:         userID,
		APIKey:         apiKey,
		Version:        DefaultVersion,
		Format:         DefaultFormat,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return ErrConfigMissingEndpoint
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrConfigInvalidEndpoint
	}
	if c.UserID == "" {
		return ErrConfigMissingUserID
	}
	if c.APIKey == "" {
		return ErrConfigMissingAPIKey
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return nil
}

// Timeout returns the HTTP timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
