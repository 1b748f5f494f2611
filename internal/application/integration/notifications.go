package integration

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/domain/webhook"
	"github.com/erp/sellercenter/internal/infrastructure/logger"
)

// ErrInvalidNotification is returned when a notification payload lacks the
// identifiers its event needs. It wraps webhook.ErrRejected.
var ErrInvalidNotification = fmt.Errorf("integration: invalid notification payload: %w", webhook.ErrRejected)

// HandleFeedCompleted fetches the final report of the feed named in an
// onFeedCompleted notification and logs its outcome
func (s *Service) HandleFeedCompleted(ctx context.Context, n webhook.Notification) error {
	feedID := cast.ToString(n.Payload["Feed"])
	if feedID == "" {
		return fmt.Errorf("%w: %s without Feed", ErrInvalidNotification, n.Event)
	}
	f, err := s.FeedStatus(ctx, feedID)
	if err != nil {
		return err
	}

	log := s.requestLogger(ctx).With(zap.String("feed", f.ID), zap.String("status", string(f.Status)))
	if f.HasErrors() {
		log.Warn("Feed completed with errors", zap.Int("errors", len(f.Errors)))
		return nil
	}
	log.Info("Feed completed")
	return nil
}

// HandleOrderCreated loads the order named in an onOrderCreated notification
func (s *Service) HandleOrderCreated(ctx context.Context, n webhook.Notification) error {
	orderID, err := cast.ToIntE(n.Payload["OrderId"])
	if err != nil || orderID <= 0 {
		return fmt.Errorf("%w: %s without OrderId", ErrInvalidNotification, n.Event)
	}
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	s.requestLogger(ctx).Info("Order created",
		zap.Int("order_id", o.OrderID),
		zap.String("order_number", o.OrderNumber),
		zap.Strings("statuses", o.Statuses),
	)
	return nil
}

// requestLogger prefers the logger carried by ctx, as set by the HTTP middleware
func (s *Service) requestLogger(ctx context.Context) *zap.Logger {
	if logger.GetRequestID(ctx) != "" {
		return logger.L(ctx)
	}
	return s.logger
}
