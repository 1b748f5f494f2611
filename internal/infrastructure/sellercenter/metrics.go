package sellercenter

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/response"
	"github.com/erp/sellercenter/internal/infrastructure/telemetry"
)

// Metric names recorded by Send
const (
	MetricCallsTotal   = "sellercenter_client_calls_total"
	MetricCallDuration = "sellercenter_client_call_duration_seconds"
)

// Call outcomes
const (
	OutcomeSuccess          = "success"
	OutcomeApplicationError = "application_error"
	OutcomeFailure          = "failure"
)

type clientMetrics struct {
	calls    *telemetry.Counter
	duration *telemetry.Histogram
}

func newClientMetrics(meter metric.Meter) (*clientMetrics, error) {
	calls, err := telemetry.NewCounter(meter, MetricCallsTotal,
		"Total number of SellerCenter API calls", "{call}")
	if err != nil {
		return nil, err
	}
	duration, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        MetricCallDuration,
		Description: "SellerCenter API call latency in seconds",
		Unit:        "s",
		Boundaries:  telemetry.APIDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	return &clientMetrics{calls: calls, duration: duration}, nil
}

// record counts one call tagged with action, outcome and HTTP status.
// status is zero when no response arrived.
func (m *clientMetrics) record(ctx context.Context, action string, status int, elapsed time.Duration, err error) {
	attrs := []attribute.KeyValue{
		telemetry.MetricAttrAction.String(action),
		telemetry.MetricAttrOutcome.String(outcome(err)),
		telemetry.MetricAttrHTTPStatusCode.Int(status),
	}
	m.calls.Inc(ctx, attrs...)
	m.duration.RecordDuration(ctx, elapsed, attrs[:2]...)
}

func outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var appErr *response.ApplicationError
	if errors.As(err, &appErr) {
		return OutcomeApplicationError
	}
	return OutcomeFailure
}
