package observability

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OpenTelemetry tracer with storefront-specific span
// creation methods.
type Tracer struct {
	tracer      trace.Tracer
	serviceName string
}

// NewTracer creates a new Tracer using the given TracerProvider.
func NewTracer(tp trace.TracerProvider, serviceName string) *Tracer {
	return &Tracer{
		tracer:      tp.Tracer(TracerName),
		serviceName: serviceName,
	}
}

// StartSpan starts a new span with the given name and attributes.
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// StartCatalogQuery starts a span for a catalog listing or lookup.
func (t *Tracer) StartCatalogQuery(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, OperationAttr(operation))
	return t.tracer.Start(ctx, "storefront.catalog", trace.WithAttributes(attrs...))
}

// StartCartOperation starts a span for a cart ledger mutation or read.
func (t *Tracer) StartCartOperation(ctx context.Context, operation, cartID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "storefront.cart", trace.WithAttributes(
		OperationAttr(operation),
		CartIDAttr(cartID),
	))
}

// StartRequest starts a span for an HTTP request.
func (t *Tracer) StartRequest(ctx context.Context, r *http.Request) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "storefront.request", trace.WithAttributes(
		attribute.String("http.method", r.Method),
		attribute.String("http.url", r.URL.String()),
		attribute.String("http.route", r.URL.Path),
	))
}

// SetHTTPStatus sets the HTTP status code on the current span.
func (t *Tracer) SetHTTPStatus(ctx context.Context, statusCode int) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int("http.status_code", statusCode))
	if statusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(statusCode))
	}
}

// RecordError marks the current span as failed and records the error detail.
func (t *Tracer) RecordError(ctx context.Context, code, message string) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String(AttrErrorCode, code),
		attribute.String(AttrErrorMessage, message),
	)
	span.SetStatus(codes.Error, message)
}
