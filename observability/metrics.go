package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded by the HTTP and auth layers.
type Metrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	authTotal       metric.Int64Counter
}

// NewMetrics creates the instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(tracerName)

	requestTotal, err := meter.Int64Counter("http.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("http.request.duration",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.request.duration histogram: %w", err)
	}

	authTotal, err := meter.Int64Counter("auth.attempt.total",
		metric.WithDescription("Total number of registration and login attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.attempt.total counter: %w", err)
	}

	return &Metrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		authTotal:       authTotal,
	}, nil
}

// RecordRequest records one completed HTTP request.
func (m *Metrics) RecordRequest(ctx context.Context, method, path string, status int, durationSec float64) {
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", path),
		attribute.Int("http.status_code", status),
	)
	m.requestTotal.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, durationSec, attrs)
}

// RecordAuthAttempt records one registration or login attempt.
// operation is "register" or "login"; outcome is "success" or "failure".
func (m *Metrics) RecordAuthAttempt(ctx context.Context, operation, outcome string) {
	m.authTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("auth.operation", operation),
		attribute.String("auth.outcome", outcome),
	))
}
