package prodfab

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bao-boyle/prodfab/pkg/prodfab/observability"
)

// Factory manufactures products of type T from construction functions
// registered under identifiers of type K.
//
// Methods are not safe for concurrent use; see the package documentation
// for sharing a factory across goroutines.
type Factory[T any, K comparable] struct {
	id      string
	store   Store[K, Constructor[T]]
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates an empty factory.
func New[T any, K comparable](opts ...Option[T, K]) *Factory[T, K] {
	f := &Factory[T, K]{
		id:      uuid.NewString(),
		store:   NewMapStore[K, Constructor[T]](),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ID returns the factory's unique instance identifier.
// It appears as factory_id in logs and factory.id in trace spans.
func (f *Factory[T, K]) ID() string { return f.id }

// Register stores fn as the construction function for id.
// Any existing registration under id is silently replaced.
func (f *Factory[T, K]) Register(id K, fn Constructor[T]) {
	name := fmt.Sprint(id)
	_, replaced := f.store.Get(id)
	f.store.Set(id, fn)
	f.metrics.RecordRegister(context.Background(), name, replaced)
	observability.LogRegister(f.logger, f.id, name, replaced)
}

// Unregister removes the registration for id.
// Unregistering an unknown identifier is a no-op, not an error.
func (f *Factory[T, K]) Unregister(id K) {
	name := fmt.Sprint(id)
	_, present := f.store.Get(id)
	if present {
		f.store.Delete(id)
		observability.LogUnregister(f.logger, f.id, name)
	}
	f.metrics.RecordUnregister(context.Background(), name, present)
}

// Create invokes the construction function registered under id and returns
// the new product. Ownership of the product transfers to the caller; the
// factory keeps no reference to it.
//
// An unknown identifier is a checked miss: Create returns the zero value
// of T and false, and the registry is left untouched.
func (f *Factory[T, K]) Create(id K) (T, bool) {
	return f.CreateContext(context.Background(), id)
}

// CreateContext is Create with a caller-supplied context threaded through
// the observability hooks, so creations show up under the caller's trace.
func (f *Factory[T, K]) CreateContext(ctx context.Context, id K) (T, bool) {
	name := fmt.Sprint(id)
	ctx, span := f.spans.StartCreateSpan(ctx, f.id, name)
	start := time.Now()

	fn, ok := f.store.Get(id)
	if !ok {
		f.metrics.RecordCreate(ctx, name, time.Since(start), false)
		f.spans.EndCreateSpan(span, false)
		observability.LogCreateMiss(f.logger, f.id, name)
		var zero T
		return zero, false
	}

	product := fn()
	duration := time.Since(start)
	f.metrics.RecordCreate(ctx, name, duration, true)
	f.spans.EndCreateSpan(span, true)
	observability.LogCreate(f.logger, f.id, name, float64(duration.Milliseconds()))
	return product, true
}

// MustCreate is Create for identifiers the caller knows are registered.
// It panics on a miss.
func (f *Factory[T, K]) MustCreate(id K) T {
	product, ok := f.Create(id)
	if !ok {
		panic(fmt.Sprintf("prodfab: product %v not registered", id))
	}
	return product
}

// Has returns true if id is currently registered.
func (f *Factory[T, K]) Has(id K) bool {
	_, ok := f.store.Get(id)
	return ok
}

// ProductCount returns the number of registered identifiers.
func (f *Factory[T, K]) ProductCount() int { return f.store.Len() }

// Products returns the currently registered identifiers. The order is
// store-defined but stable between mutations.
func (f *Factory[T, K]) Products() []K { return f.store.Keys() }
