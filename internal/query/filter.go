package query

import (
	"github.com/shopspring/decimal"

	"github.com/mabkhara/storefront/internal/catalog"
)

// FilterByCategory returns the products whose category tag equals tag,
// preserving relative order. A tag no product carries matches nothing; that
// is not an error.
func FilterByCategory(products []catalog.Product, tag catalog.Tag) []catalog.Product {
	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.Category == tag {
			result = append(result, p)
		}
	}
	return result
}

// FilterByPriceRange returns the products with min <= price <= max, both ends
// inclusive, preserving relative order. A range with min greater than max
// matches nothing and is deliberately not an error: the storefront treats an
// inverted range as an empty shelf, not a fault.
func FilterByPriceRange(products []catalog.Product, min, max decimal.Decimal) []catalog.Product {
	result := make([]catalog.Product, 0, len(products))
	if min.GreaterThan(max) {
		return result
	}
	for _, p := range products {
		if p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max) {
			result = append(result, p)
		}
	}
	return result
}

// filterByMinPrice keeps products priced at or above min. Used by Apply when
// only the lower bound of the range is set.
func filterByMinPrice(products []catalog.Product, min decimal.Decimal) []catalog.Product {
	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.Price.GreaterThanOrEqual(min) {
			result = append(result, p)
		}
	}
	return result
}
