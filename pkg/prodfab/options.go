package prodfab

import (
	"log/slog"

	"github.com/bao-boyle/prodfab/pkg/prodfab/observability"
)

// Option configures a Factory at construction time.
type Option[T any, K comparable] func(*Factory[T, K])

// WithStore sets the backing store. Default: NewMapStore.
//
// The store must satisfy the Store contract; the factory takes it as-is
// and never copies existing entries.
func WithStore[T any, K comparable](s Store[K, Constructor[T]]) Option[T, K] {
	return func(f *Factory[T, K]) {
		if s != nil {
			f.store = s
		}
	}
}

// WithLogger enables structured logging of registrations, removals, and
// creations. Default: no logging.
func WithLogger[T any, K comparable](logger *slog.Logger) Option[T, K] {
	return func(f *Factory[T, K]) {
		f.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: observability.NoopMetrics.
//
// Example:
//
//	f := prodfab.New[Fruit, string](
//	    prodfab.WithMetrics[Fruit, string](observability.NewMetricsRecorder()),
//	)
func WithMetrics[T any, K comparable](m observability.MetricsRecorder) Option[T, K] {
	return func(f *Factory[T, K]) {
		if m != nil {
			f.metrics = m
		}
	}
}

// WithTracing sets the span manager. Default: observability.NoopSpanManager.
func WithTracing[T any, K comparable](sm observability.SpanManager) Option[T, K] {
	return func(f *Factory[T, K]) {
		if sm != nil {
			f.spans = sm
		}
	}
}
