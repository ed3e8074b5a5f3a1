package storefront

import (
	"github.com/mabkhara/storefront/internal/cart"
	"github.com/mabkhara/storefront/internal/catalog"
	"github.com/mabkhara/storefront/internal/observability"
)

// Aliases for the core domain types, so consumers never import internal
// packages.
type (
	// Product is a single catalog item.
	Product = catalog.Product
	// Category is a product family.
	Category = catalog.Category
	// Tag classifies a product into one of the fixed categories.
	Tag = catalog.Tag
	// CartEntry pairs a product with its quantity in a cart.
	CartEntry = cart.Entry
	// CartTotals are the four monetary figures derived from a cart.
	CartTotals = cart.Totals
	// Pricing is the monetary policy used to derive cart totals.
	Pricing = cart.Pricing
	// QuantityLimits bound the quantity a cart entry may take.
	QuantityLimits = cart.Limits
	// ObservabilityConfig configures tracing, metrics, and Server-Timing.
	ObservabilityConfig = observability.Config
)

// The catalog's fixed category tags.
const (
	TagIncense = catalog.TagIncense
	TagPerfume = catalog.TagPerfume
)
