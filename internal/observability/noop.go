package observability

import (
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NewNoopTracer creates a tracer that does nothing.
func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer:      tracenoop.NewTracerProvider().Tracer(""),
		serviceName: "",
	}
}

// NewNoopMetrics creates metrics that do nothing.
func NewNoopMetrics() *Metrics {
	meter := noop.NewMeterProvider().Meter("")
	m := &Metrics{}

	// The noop meter never returns an error.
	m.requestDuration, _ = meter.Float64Histogram("storefront.request.duration")
	m.requestCount, _ = meter.Int64Counter("storefront.request.count")
	m.resultCount, _ = meter.Int64Histogram("storefront.result.count")
	m.cartOpCount, _ = meter.Int64Counter("storefront.cart.operations")
	m.errorCount, _ = meter.Int64Counter("storefront.error.count")

	return m
}
