// Package observability provides opt-in observability for prodfab
// factories: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds factory context to a logger.
// Returns a new logger with a factory_id field.
//
// Example:
//
//	enriched := EnrichLogger(logger, f.ID())
//	enriched.Info("catalog applied") // includes factory_id
func EnrichLogger(logger *slog.Logger, factoryID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("factory_id", factoryID))
}

// LogRegister logs a product registration.
func LogRegister(logger *slog.Logger, factoryID, productID string, replaced bool) {
	if logger == nil {
		return
	}
	logger.Debug("product registered",
		slog.String("factory_id", factoryID),
		slog.String("product_id", productID),
		slog.Bool("replaced", replaced),
	)
}

// LogUnregister logs a product removal.
func LogUnregister(logger *slog.Logger, factoryID, productID string) {
	if logger == nil {
		return
	}
	logger.Debug("product unregistered",
		slog.String("factory_id", factoryID),
		slog.String("product_id", productID),
	)
}

// LogCreate logs a successful creation.
func LogCreate(logger *slog.Logger, factoryID, productID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("product created",
		slog.String("factory_id", factoryID),
		slog.String("product_id", productID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCreateMiss logs a create call for an unregistered identifier.
// A miss is a checked condition, so this logs at debug, not error.
func LogCreateMiss(logger *slog.Logger, factoryID, productID string) {
	if logger == nil {
		return
	}
	logger.Debug("product not registered",
		slog.String("factory_id", factoryID),
		slog.String("product_id", productID),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
