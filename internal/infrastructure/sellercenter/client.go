package sellercenter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/response"
	"github.com/erp/sellercenter/internal/infrastructure/telemetry"
)

// maxResponseSize is the maximum allowed response size from SellerCenter (10MB)
const maxResponseSize = 10 * 1024 * 1024

// TimestampLayout is the DATE_ATOM layout of the Timestamp parameter
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Transport errors
var (
	ErrTransport    = errors.New("sellercenter: transport failure")
	ErrHTTPStatus   = errors.New("sellercenter: unexpected HTTP status")
	ErrEmptyAction  = errors.New("sellercenter: action is required")
	ErrClientConfig = errors.New("sellercenter: config is required")
)

// HTTPDoer performs HTTP requests; *http.Client satisfies it
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request describes one API call
type Request struct {
	Action string
	// Method defaults to GET, or POST when Body is set
	Method string
	// Parameters are merged over the base parameters before signing
	Parameters map[string]any
	// Body is an XML request document for write actions
	Body string
}

func (r Request) method() string {
	if r.Method != "" {
		return r.Method
	}
	if r.Body != "" {
		return http.MethodPost
	}
	return http.MethodGet
}

// Client signs and sends SellerCenter requests
type Client struct {
	config  *Config
	http    HTTPDoer
	logger  *zap.Logger
	now     func() time.Time
	meter   metric.Meter
	metrics *clientMetrics
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default *http.Client
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		if doer != nil {
			c.http = doer
		}
	}
}

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMeter records call metrics on meter instead of the global provider
func WithMeter(meter metric.Meter) ClientOption {
	return func(c *Client) {
		if meter != nil {
			c.meter = meter
		}
	}
}

// WithClock overrides the time source used for the Timestamp parameter
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient creates a client after validating config
func NewClient(config *Config, opts ...ClientOption) (*Client, error) {
	if config == nil {
		return nil, ErrClientConfig
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout()},
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.meter == nil {
		c.meter = otel.GetMeterProvider().Meter(telemetry.TracerName)
	}
	metrics, err := newClientMetrics(c.meter)
	if err != nil {
		return nil, err
	}
	c.metrics = metrics
	return c, nil
}

// Config returns the client configuration
func (c *Client) Config() *Config {
	return c.config
}

// BaseParameters returns the parameters every call carries
func (c *Client) BaseParameters(action string) *Parameters {
	return NewParameters().Set(map[string]any{
		"Action":    action,
		"Format":    c.config.Format,
		"Timestamp": c.now().UTC().Format(TimestampLayout),
		"UserID":    c.config.UserID,
		"Version":   c.config.Version,
	})
}

// SignedQuery builds the canonical query string with the signature appended last
func (c *Client) SignedQuery(req Request) (string, error) {
	params := c.BaseParameters(req.Action).Set(req.Parameters)
	sig, err := GenerateSignature(params, c.config.APIKey)
	if err != nil {
		return "", err
	}
	return params.Encode() + "&Signature=" + sig.String(), nil
}

// Send performs req and returns the decoded success document. SellerCenter
// error documents come back as *response.ApplicationError.
func (c *Client) Send(ctx context.Context, req Request) (*response.SuccessResponse, error) {
	if req.Action == "" {
		return nil, ErrEmptyAction
	}

	requestID := uuid.NewString()
	ctx, span := telemetry.StartSpan(ctx, "sellercenter."+req.Action,
		telemetry.WithSpanKind(trace.SpanKindClient),
		telemetry.WithAttribute(telemetry.AttrAction, req.Action),
		telemetry.WithAttribute(telemetry.AttrRequestID, requestID),
	)
	defer span.End()

	log := c.logger.With(zap.String("action", req.Action), zap.String("request_id", requestID))
	start := time.Now()

	resp, status, err := c.do(ctx, req)
	elapsed := time.Since(start)
	c.metrics.record(ctx, req.Action, status, elapsed, err)
	log.Debug("sellercenter call",
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
	)
	if err != nil {
		var appErr *response.ApplicationError
		if errors.As(err, &appErr) {
			log.Warn("sellercenter application error",
				zap.Int("code", appErr.Code),
				zap.String("type", appErr.Type),
				zap.String("message", appErr.Message),
			)
		}
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.AttrStatus, status)
	return resp, nil
}

func (c *Client) do(ctx context.Context, req Request) (*response.SuccessResponse, int, error) {
	query, err := c.SignedQuery(req)
	if err != nil {
		return nil, 0, err
	}
	target, err := url.Parse(c.config.Endpoint)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrConfigInvalidEndpoint, err)
	}
	target.RawQuery = query

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method(), target.String(), body)
	if err != nil {
		return nil, 0, fmt.Errorf("sellercenter: failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/xml")
	if req.Body != "" {
		httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	if httpResp.StatusCode >= 400 {
		// SellerCenter reports most failures as an ErrorResponse with a 4xx/5xx status
		var appErr *response.ApplicationError
		if vErr := response.Validate(raw); errors.As(vErr, &appErr) {
			return nil, httpResp.StatusCode, appErr
		}
		return nil, httpResp.StatusCode, fmt.Errorf("%w: HTTP %d", ErrHTTPStatus, httpResp.StatusCode)
	}

	resp, err := response.Handle(raw)
	return resp, httpResp.StatusCode, err
}
