package endpoint

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/healthops/health"
)

// instruments records evaluation metrics for health endpoint requests.
type instruments struct {
	evalTotal    metric.Int64Counter
	evalDuration metric.Float64Histogram
}

// newInstruments creates the evaluation instruments on the given meter.
func newInstruments(meter metric.Meter) (*instruments, error) {
	evalTotal, err := meter.Int64Counter(
		"health.eval.total",
		metric.WithDescription("Total number of health group evaluations"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	evalDuration, err := meter.Float64Histogram(
		"health.eval.duration_ms",
		metric.WithDescription("Health group evaluation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &instruments{
		evalTotal:    evalTotal,
		evalDuration: evalDuration,
	}, nil
}

// recordEvaluation records one group evaluation.
func (i *instruments) recordEvaluation(ctx context.Context, groupName string, status health.Status, duration time.Duration) {
	opt := metric.WithAttributes(
		attribute.String("health.group", groupName),
		attribute.String("health.status", status.Code),
	)

	i.evalTotal.Add(ctx, 1, opt)
	i.evalDuration.Record(ctx, float64(duration.Milliseconds()), opt)
}
