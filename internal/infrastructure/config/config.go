// Package config loads the SellerCenter client configuration from
// sellercenter.toml and SELLERCENTER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/erp/sellercenter/internal/infrastructure/logger"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter"
	"github.com/erp/sellercenter/internal/infrastructure/telemetry"
)

// EnvPrefix prefixes every environment override, e.g. SELLERCENTER_SELLERCENTER_API_KEY
const EnvPrefix = "SELLERCENTER"

// Config holds all application configuration
type Config struct {
	App          AppConfig
	SellerCenter SellerCenterConfig
	Log          LogConfig
	Webhook      WebhookConfig
	Telemetry    TelemetryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string `validate:"required"`
	Env  string `validate:"oneof=development staging production test"`
}

// SellerCenterConfig holds the API account settings
type SellerCenterConfig struct {
	Endpoint string        `validate:"required,url"`
	UserID   string        `validate:"required"`
	APIKey   string        `validate:"required"`
	Version  string        `validate:"required"`
	Format   string        `validate:"oneof=XML"`
	Timeout  time.Duration `validate:"gt=0"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn warning error"`
	Format string `validate:"oneof=json console"`
	Output string
}

// WebhookConfig holds the notification receiver settings
type WebhookConfig struct {
	ListenAddr      string `validate:"required"`
	Path            string `validate:"startswith=/"`
	MaxPayloadBytes int64  `validate:"gt=0"`
}

// TelemetryConfig holds OpenTelemetry tracing and metrics settings
type TelemetryConfig struct {
	Enabled           bool
	ServiceName       string
	CollectorEndpoint string
	SamplingRatio     float64 `validate:"gte=0,lte=1"`
	Insecure          bool
	ExportInterval    time.Duration `validate:"gte=0"`
}

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Load reads sellercenter.toml from ., ./config or /etc/sellercenter and
// applies SELLERCENTER_ environment overrides.
//
// Priority (highest to lowest):
// 1. Environment variables (e.g. SELLERCENTER_SELLERCENTER_API_KEY)
// 2. sellercenter.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("sellercenter")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/sellercenter")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}
	return build(v)
}

// LoadFile reads an explicit config file; environment overrides still apply
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		SellerCenter: SellerCenterConfig{
			Endpoint: v.GetString("sellercenter.endpoint"),
			UserID:   v.GetString("sellercenter.user_id"),
			APIKey:   v.GetString("sellercenter.api_key"),
			Version:  v.GetString("sellercenter.version"),
			Format:   v.GetString("sellercenter.format"),
			Timeout:  v.GetDuration("sellercenter.timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Webhook: WebhookConfig{
			ListenAddr:      v.GetString("webhook.listen_addr"),
			Path:            v.GetString("webhook.path"),
			MaxPayloadBytes: v.GetInt64("webhook.max_payload_bytes"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			ServiceName:       v.GetString("telemetry.service_name"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			Insecure:          v.GetBool("telemetry.insecure"),
			ExportInterval:    v.GetDuration("telemetry.export_interval"),
		},
	}

	applyDefaults(cfg, v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config, v *viper.Viper) {
	if cfg.App.Name == "" {
		cfg.App.Name = "sellercenter"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.SellerCenter.Version == "" {
		cfg.SellerCenter.Version = sellercenter.DefaultVersion
	}
	if cfg.SellerCenter.Format == "" {
		cfg.SellerCenter.Format = sellercenter.DefaultFormat
	}
	if cfg.SellerCenter.Timeout <= 0 {
		cfg.SellerCenter.Timeout = sellercenter.DefaultTimeoutSeconds * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
	if cfg.Webhook.ListenAddr == "" {
		cfg.Webhook.ListenAddr = ":8080"
	}
	if cfg.Webhook.Path == "" {
		cfg.Webhook.Path = "/webhooks/sellercenter"
	}
	if cfg.Webhook.MaxPayloadBytes <= 0 {
		cfg.Webhook.MaxPayloadBytes = 1 << 20
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if !v.IsSet("telemetry.sampling_ratio") {
		cfg.Telemetry.SamplingRatio = 1.0
	}
}

// Validate checks struct tags and returns the first failing field
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidConfig, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ClientConfig returns the client-level configuration
func (c *Config) ClientConfig() *sellercenter.Config {
	return &sellercenter.Config{
		Endpoint:       c.SellerCenter.Endpoint,
		UserID:         c.SellerCenter.UserID,
		APIKey:         c.SellerCenter.APIKey,
		Version:        c.SellerCenter.Version,
		Format:         c.SellerCenter.Format,
		TimeoutSeconds: int(c.SellerCenter.Timeout / time.Second),
	}
}

// LoggerConfig returns the logger configuration
func (c *Config) LoggerConfig() *logger.Config {
	return &logger.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		Output: c.Log.Output,
	}
}

// TracingConfig returns the tracer and meter provider configuration
func (c *Config) TracingConfig() telemetry.Config {
	return telemetry.Config{
		Enabled:           c.Telemetry.Enabled,
		CollectorEndpoint: c.Telemetry.CollectorEndpoint,
		SamplingRatio:     c.Telemetry.SamplingRatio,
		ServiceName:       c.Telemetry.ServiceName,
		Insecure:          c.Telemetry.Insecure,
		ExportInterval:    c.Telemetry.ExportInterval,
	}
}
