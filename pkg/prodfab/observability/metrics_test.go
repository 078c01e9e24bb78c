package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest creates a test meter provider and returns a reader to collect metrics.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	// Save the original provider
	originalProvider := otel.GetMeterProvider()

	// Set test provider
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	// NewMetricsRecorder uses the global provider
	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	// Should not be a noop (since we set up a real provider)
	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordCreate(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	// Create a fresh metrics instance using the test provider
	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("records creation count", func(t *testing.T) {
		m.RecordCreate(ctx, "Apple", 2*time.Millisecond, true)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "prodfab.creations")
		require.NotNil(t, metric)

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok, "Expected Sum type")
		require.NotEmpty(t, sum.DataPoints)

		found := false
		for _, dp := range sum.DataPoints {
			for _, attr := range dp.Attributes.ToSlice() {
				if attr.Key == "product_id" && attr.Value.AsString() == "Apple" {
					found = true
					assert.GreaterOrEqual(t, dp.Value, int64(1))
				}
			}
		}
		assert.True(t, found, "Expected to find datapoint for product_id=Apple")
	})

	t.Run("records latency", func(t *testing.T) {
		m.RecordCreate(ctx, "Pear", 5*time.Millisecond, true)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "prodfab.creation.latency_ms")
		require.NotNil(t, metric)

		hist, ok := metric.Data.(metricdata.Histogram[float64])
		require.True(t, ok, "Expected Histogram type")
		require.NotEmpty(t, hist.DataPoints)
	})

	t.Run("records misses", func(t *testing.T) {
		m.RecordCreate(ctx, "Cherry", 0, false)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "prodfab.creation.misses")
		require.NotNil(t, metric)

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok, "Expected Sum type")
		require.NotEmpty(t, sum.DataPoints)
	})

	t.Run("hit does not count as miss", func(t *testing.T) {
		m.RecordCreate(ctx, "Orange", time.Millisecond, true)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "prodfab.creation.misses")
		require.NotNil(t, metric)

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		for _, dp := range sum.DataPoints {
			for _, attr := range dp.Attributes.ToSlice() {
				if attr.Key == "product_id" {
					assert.NotEqual(t, "Orange", attr.Value.AsString())
				}
			}
		}
	})
}

func TestRecordRegisterAndUnregister(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()

	productsValue := func() int64 {
		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "prodfab.products")
		require.NotNil(t, metric)
		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		var total int64
		for _, dp := range sum.DataPoints {
			total += dp.Value
		}
		return total
	}

	m.RecordRegister(ctx, "Apple", false)
	m.RecordRegister(ctx, "Pear", false)
	assert.Equal(t, int64(2), productsValue())

	// Overwrite does not grow the product gauge
	m.RecordRegister(ctx, "Apple", true)
	assert.Equal(t, int64(2), productsValue())

	m.RecordUnregister(ctx, "Apple", true)
	assert.Equal(t, int64(1), productsValue())

	// Unregistering an absent id does not shrink it
	m.RecordUnregister(ctx, "Cherry", false)
	assert.Equal(t, int64(1), productsValue())

	rm := collectMetrics(t, reader)
	metric := findMetric(rm, "prodfab.registrations")
	require.NotNil(t, metric)
	sum, ok := metric.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(5), total)
}
