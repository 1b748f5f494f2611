// Package router assembles the gin engine of the webhook receiver.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/infrastructure/logger"
	"github.com/erp/sellercenter/internal/interfaces/http/middleware"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config configures the engine
type Config struct {
	ServiceName     string
	TracingEnabled  bool
	TracerProvider  trace.TracerProvider
	MetricsEnabled  bool
	MeterProvider   metric.MeterProvider
	MaxPayloadBytes int64
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	registrars []RouteRegistrar
}

// New creates an engine with request id, recovery, access logging, tracing
// and metrics installed, plus a GET /healthz liveness route
func New(cfg Config, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.ServiceName,
			Enabled:     cfg.TracingEnabled,
			Provider:    cfg.TracerProvider,
		}),
		middleware.SpanAttributes(),
		middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			Enabled:  cfg.MetricsEnabled,
			Provider: cfg.MeterProvider,
		}),
		logger.GinMiddleware(log),
	)
	if cfg.MaxPayloadBytes > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxPayloadBytes))
	}
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return &Router{engine: engine}
}

// Register adds a RouteRegistrar to be registered on Setup
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes and returns the engine
func (r *Router) Setup() *gin.Engine {
	root := r.engine.Group("")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(root)
	}
	return r.engine
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
