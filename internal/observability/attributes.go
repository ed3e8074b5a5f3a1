// Package observability provides OpenTelemetry-based instrumentation for the
// storefront service.
//
// It supports distributed tracing, metrics collection, and the Server-Timing
// response header. All features are opt-in; when not configured, no-op
// implementations are used with zero performance overhead.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants.
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/mabkhara/storefront"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/mabkhara/storefront"
)

// Storefront semantic attribute keys.
const (
	AttrCategory    = "storefront.category"
	AttrProductID   = "storefront.product_id"
	AttrCartID      = "storefront.cart_id"
	AttrOperation   = "storefront.operation"
	AttrSortKey     = "storefront.query.orderby"
	AttrResultCount = "storefront.result.count"

	AttrErrorCode    = "storefront.error.code"
	AttrErrorMessage = "storefront.error.message"
)

// Operation types for the storefront.operation attribute.
const (
	OpListProducts     = "list_products"
	OpReadProduct      = "read_product"
	OpListCategories   = "list_categories"
	OpReadCategory     = "read_category"
	OpCategoryProducts = "category_products"
	OpCreateCart       = "create_cart"
	OpReadCart         = "read_cart"
	OpAddItem          = "add_item"
	OpSetQuantity      = "set_quantity"
	OpRemoveItem       = "remove_item"
	OpDeleteCart       = "delete_cart"
)

// OperationAttr builds the storefront.operation attribute.
func OperationAttr(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// CategoryAttr builds the storefront.category attribute.
func CategoryAttr(id string) attribute.KeyValue {
	return attribute.String(AttrCategory, id)
}

// ProductIDAttr builds the storefront.product_id attribute.
func ProductIDAttr(id string) attribute.KeyValue {
	return attribute.String(AttrProductID, id)
}

// CartIDAttr builds the storefront.cart_id attribute.
func CartIDAttr(id string) attribute.KeyValue {
	return attribute.String(AttrCartID, id)
}

// ResultCountAttr builds the storefront.result.count attribute.
func ResultCountAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrResultCount, n)
}
