package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records factory metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCreate records a create call with its duration and hit status.
	RecordCreate(ctx context.Context, productID string, duration time.Duration, hit bool)

	// RecordRegister records a registration. replaced is true when an
	// existing entry was overwritten.
	RecordRegister(ctx context.Context, productID string, replaced bool)

	// RecordUnregister records a removal. present is true when the
	// identifier was actually registered.
	RecordUnregister(ctx context.Context, productID string, present bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	creations       metric.Int64Counter
	creationMisses  metric.Int64Counter
	creationLatency metric.Float64Histogram
	registrations   metric.Int64Counter
	products        metric.Int64UpDownCounter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("prodfab")

	creations, err := meter.Int64Counter("prodfab.creations",
		metric.WithDescription("Number of create calls"),
	)
	if err != nil {
		return nil, err
	}

	creationMisses, err := meter.Int64Counter("prodfab.creation.misses",
		metric.WithDescription("Number of create calls for unregistered identifiers"),
	)
	if err != nil {
		return nil, err
	}

	creationLatency, err := meter.Float64Histogram("prodfab.creation.latency_ms",
		metric.WithDescription("Create call latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	registrations, err := meter.Int64Counter("prodfab.registrations",
		metric.WithDescription("Number of register and unregister calls"),
	)
	if err != nil {
		return nil, err
	}

	products, err := meter.Int64UpDownCounter("prodfab.products",
		metric.WithDescription("Number of currently registered products"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		creations:       creations,
		creationMisses:  creationMisses,
		creationLatency: creationLatency,
		registrations:   registrations,
		products:        products,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCreate records a create call.
func (m *otelMetrics) RecordCreate(ctx context.Context, productID string, duration time.Duration, hit bool) {
	attrs := []attribute.KeyValue{
		attribute.String("product_id", productID),
	}

	m.creations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.creationLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if !hit {
		m.creationMisses.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordRegister records a registration.
func (m *otelMetrics) RecordRegister(ctx context.Context, productID string, replaced bool) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("product_id", productID),
		attribute.String("op", "register"),
	))
	if !replaced {
		m.products.Add(ctx, 1)
	}
}

// RecordUnregister records a removal.
func (m *otelMetrics) RecordUnregister(ctx context.Context, productID string, present bool) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("product_id", productID),
		attribute.String("op", "unregister"),
	))
	if present {
		m.products.Add(ctx, -1)
	}
}
