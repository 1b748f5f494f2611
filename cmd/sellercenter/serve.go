package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/domain/webhook"
	"github.com/erp/sellercenter/internal/interfaces/http/handler"
	"github.com/erp/sellercenter/internal/interfaces/http/router"
)

const shutdownTimeout = 30 * time.Second

// webhookServer builds the notification receiver
func (a *app) webhookServer() *http.Server {
	if a.cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	receiver := handler.NewWebhookHandler(a.cfg.Webhook.Path,
		handler.WithMaxPayload(a.cfg.Webhook.MaxPayloadBytes),
		handler.WithLogger(a.log),
	).
		On(webhook.EventFeedCompleted, handler.NotificationHandlerFunc(a.service.HandleFeedCompleted)).
		On(webhook.EventOrderCreated, handler.NotificationHandlerFunc(a.service.HandleOrderCreated))

	engine := router.New(router.Config{
		ServiceName:     a.cfg.Telemetry.ServiceName,
		TracingEnabled:  a.tracing.IsEnabled(),
		MetricsEnabled:  a.metrics.IsEnabled(),
		MaxPayloadBytes: a.cfg.Webhook.MaxPayloadBytes,
	}, a.log).Register(receiver).Setup()

	return &http.Server{
		Addr:              a.cfg.Webhook.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

func (a *app) serveWebhooks(ctx context.Context) error {
	srv := a.webhookServer()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Webhook receiver starting",
			zap.String("addr", srv.Addr),
			zap.String("path", a.cfg.Webhook.Path),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down webhook receiver...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.log.Info("Webhook receiver exited gracefully")
	return nil
}
