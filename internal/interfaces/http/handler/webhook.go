// Package handler contains the HTTP handlers of the webhook receiver.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/domain/webhook"
	"github.com/erp/sellercenter/internal/infrastructure/logger"
)

// DefaultMaxPayloadBytes bounds a notification body when no limit is configured
const DefaultMaxPayloadBytes int64 = 1 << 20

// NotificationHandler processes one webhook notification
type NotificationHandler interface {
	HandleNotification(ctx context.Context, n webhook.Notification) error
}

// NotificationHandlerFunc adapts a function to NotificationHandler
type NotificationHandlerFunc func(ctx context.Context, n webhook.Notification) error

// HandleNotification implements NotificationHandler
func (f NotificationHandlerFunc) HandleNotification(ctx context.Context, n webhook.Notification) error {
	return f(ctx, n)
}

// WebhookResponse is the acknowledgement returned to SellerCenter
type WebhookResponse struct {
	Received bool   `json:"received"`
	Event    string `json:"event,omitempty"`
	Message  string `json:"message,omitempty"`
}

// WebhookHandler receives SellerCenter notifications and dispatches them by
// event alias
type WebhookHandler struct {
	path       string
	maxPayload int64
	logger     *zap.Logger

	mu       sync.RWMutex
	handlers map[string]NotificationHandler
}

// WebhookOption configures a WebhookHandler
type WebhookOption func(*WebhookHandler)

// WithMaxPayload sets the largest accepted body in bytes
func WithMaxPayload(n int64) WebhookOption {
	return func(h *WebhookHandler) {
		if n > 0 {
			h.maxPayload = n
		}
	}
}

// WithLogger sets the fallback logger used when the request carries none
func WithLogger(l *zap.Logger) WebhookOption {
	return func(h *WebhookHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewWebhookHandler creates a handler serving POST path
func NewWebhookHandler(path string, opts ...WebhookOption) *WebhookHandler {
	h := &WebhookHandler{
		path:       path,
		maxPayload: DefaultMaxPayloadBytes,
		logger:     zap.NewNop(),
		handlers:   make(map[string]NotificationHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// On registers handler for event, replacing any previous one
func (h *WebhookHandler) On(event string, handler NotificationHandler) *WebhookHandler {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[event] = handler
	return h
}

// Events returns the aliases with a registered handler
func (h *WebhookHandler) Events() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	events := make([]string, 0, len(h.handlers))
	for event := range h.handlers {
		events = append(events, event)
	}
	return events
}

// RegisterRoutes implements router.RouteRegistrar
func (h *WebhookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST(h.path, h.Receive)
}

// Receive decodes a notification and hands it to the registered handler.
// Unknown events are acknowledged so SellerCenter stops retrying them.
// Handler errors wrapping webhook.ErrRejected answer 400; any other
// handler failure answers 500 so SellerCenter retries.
func (h *WebhookHandler) Receive(c *gin.Context) {
	log := h.requestLogger(c)

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, h.maxPayload+1))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, WebhookResponse{Message: "payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, WebhookResponse{Message: "failed to read request body"})
		return
	}
	if int64(len(payload)) > h.maxPayload {
		c.JSON(http.StatusRequestEntityTooLarge, WebhookResponse{Message: "payload too large"})
		return
	}

	var n webhook.Notification
	if err := binding.JSON.BindBody(payload, &n); err != nil {
		log.Warn("Invalid webhook notification", zap.Error(err))
		c.JSON(http.StatusBadRequest, WebhookResponse{Message: "invalid notification"})
		return
	}

	h.mu.RLock()
	handler, ok := h.handlers[n.Event]
	h.mu.RUnlock()
	if !ok {
		log.Info("Unhandled webhook event", zap.String("event", n.Event))
		c.JSON(http.StatusOK, WebhookResponse{Received: true, Event: n.Event, Message: "event ignored"})
		return
	}

	if err := handler.HandleNotification(c.Request.Context(), n); err != nil {
		if errors.Is(err, webhook.ErrRejected) {
			log.Warn("Webhook notification rejected", zap.String("event", n.Event), zap.Error(err))
			c.JSON(http.StatusBadRequest, WebhookResponse{Event: n.Event, Message: "notification rejected"})
			return
		}
		log.Error("Webhook handler failed", zap.String("event", n.Event), zap.Error(err))
		c.JSON(http.StatusInternalServerError, WebhookResponse{Event: n.Event, Message: "processing failed"})
		return
	}

	log.Debug("Webhook processed", zap.String("event", n.Event))
	c.JSON(http.StatusOK, WebhookResponse{Received: true, Event: n.Event})
}

func (h *WebhookHandler) requestLogger(c *gin.Context) *zap.Logger {
	if _, ok := c.Get("logger"); ok {
		return logger.GetGinLogger(c)
	}
	return h.logger
}
