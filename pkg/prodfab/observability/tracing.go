package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the prodfab tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("prodfab")

// SpanManager handles trace span lifecycle for factory creations.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartCreateSpan starts a span for one create call.
	// Returns the context with span and the span itself.
	StartCreateSpan(ctx context.Context, factoryID, productID string) (context.Context, trace.Span)

	// EndCreateSpan completes a create span. A miss ends the span with an
	// error status.
	EndCreateSpan(span trace.Span, hit bool)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartCreateSpan starts a span for one create call.
func (m *otelSpanManager) StartCreateSpan(ctx context.Context, factoryID, productID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "prodfab.create",
		trace.WithAttributes(
			attribute.String("factory.id", factoryID),
			attribute.String("product.id", productID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndCreateSpan completes a create span.
func (m *otelSpanManager) EndCreateSpan(span trace.Span, hit bool) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Bool("hit", hit))
	if hit {
		span.SetStatus(codes.Ok, "")
	} else {
		span.SetStatus(codes.Error, "product not registered")
	}
	span.End()
}
