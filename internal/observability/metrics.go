package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the storefront-specific metric instruments.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestCount    metric.Int64Counter
	resultCount     metric.Int64Histogram
	cartOpCount     metric.Int64Counter
	errorCount      metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Instrument creation only fails on invalid parameters; on error we fall
	// back to an undescribed instrument and keep going.
	var err error

	m.requestDuration, err = meter.Float64Histogram(
		"storefront.request.duration",
		metric.WithDescription("Duration of storefront requests in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.requestDuration, _ = meter.Float64Histogram("storefront.request.duration")
	}

	m.requestCount, err = meter.Int64Counter(
		"storefront.request.count",
		metric.WithDescription("Total number of storefront requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		m.requestCount, _ = meter.Int64Counter("storefront.request.count")
	}

	m.resultCount, err = meter.Int64Histogram(
		"storefront.result.count",
		metric.WithDescription("Number of products returned by catalog queries"),
		metric.WithUnit("{product}"),
	)
	if err != nil {
		m.resultCount, _ = meter.Int64Histogram("storefront.result.count")
	}

	m.cartOpCount, err = meter.Int64Counter(
		"storefront.cart.operations",
		metric.WithDescription("Total number of cart ledger operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		m.cartOpCount, _ = meter.Int64Counter("storefront.cart.operations")
	}

	m.errorCount, err = meter.Int64Counter(
		"storefront.error.count",
		metric.WithDescription("Total number of storefront errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("storefront.error.count")
	}

	return m
}

// RecordRequest records metrics for a completed request.
func (m *Metrics) RecordRequest(ctx context.Context, operation string, statusCode int, duration time.Duration) {
	attrs := metric.WithAttributes(
		OperationAttr(operation),
		attribute.Int("http.status_code", statusCode),
	)
	m.requestCount.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// RecordResultCount records the size of a catalog query result.
func (m *Metrics) RecordResultCount(ctx context.Context, operation string, count int) {
	m.resultCount.Record(ctx, int64(count), metric.WithAttributes(OperationAttr(operation)))
}

// RecordCartOperation counts one cart ledger operation.
func (m *Metrics) RecordCartOperation(ctx context.Context, operation string) {
	m.cartOpCount.Add(ctx, 1, metric.WithAttributes(OperationAttr(operation)))
}

// RecordError counts one error by code.
func (m *Metrics) RecordError(ctx context.Context, operation, code string) {
	m.errorCount.Add(ctx, 1, metric.WithAttributes(
		OperationAttr(operation),
		attribute.String(AttrErrorCode, code),
	))
}
