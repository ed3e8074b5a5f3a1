// Package query implements pure, side-effect-free querying over the static
// catalog: category filtering, inclusive price-range filtering, and stable
// sorting by name, price, or rating. No function in this package mutates its
// input or touches any state outside its arguments.
package query

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mabkhara/storefront/internal/catalog"
)

// SortKey identifies the product ordering requested by the caller.
type SortKey string

const (
	// SortByName orders by display name using locale-aware collation.
	SortByName SortKey = "name"
	// SortByPrice orders by ascending price.
	SortByPrice SortKey = "price"
	// SortByRating orders by descending rating, highest-rated first.
	SortByRating SortKey = "rating"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPrice, SortByRating:
		return true
	}
	return false
}

// Options describe one catalog query: an optional category filter, an
// optional inclusive price range, and an optional sort key. The zero value
// selects everything in catalog order.
type Options struct {
	Category catalog.Tag
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     SortKey
}

// Query parameter names accepted by ParseOptions.
const (
	ParamCategory = "category"
	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
	ParamOrderBy  = "orderby"
)

// ParseOptions builds Options from URL query parameters. Unknown sort keys
// and non-numeric prices are reported as errors; an unknown category value is
// not, because filtering on it simply matches nothing.
func ParseOptions(params url.Values) (Options, error) {
	var opts Options

	if raw := strings.TrimSpace(params.Get(ParamCategory)); raw != "" {
		opts.Category = catalog.Tag(raw)
	}

	if raw := strings.TrimSpace(params.Get(ParamMinPrice)); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return Options{}, fmt.Errorf("invalid %s '%s': not a number", ParamMinPrice, raw)
		}
		opts.MinPrice = &min
	}

	if raw := strings.TrimSpace(params.Get(ParamMaxPrice)); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return Options{}, fmt.Errorf("invalid %s '%s': not a number", ParamMaxPrice, raw)
		}
		opts.MaxPrice = &max
	}

	if raw := strings.TrimSpace(params.Get(ParamOrderBy)); raw != "" {
		key := SortKey(strings.ToLower(raw))
		if !key.Valid() {
			return Options{}, fmt.Errorf("invalid %s key '%s', expected 'name', 'price' or 'rating'", ParamOrderBy, raw)
		}
		opts.Sort = key
	}

	return opts, nil
}

// Apply runs the storefront's query pipeline over products: category filter,
// then price filter, then sort. Each stage is skipped when its option is not
// set. The input slice is never modified.
func Apply(products []catalog.Product, opts Options) []catalog.Product {
	result := products

	if opts.Category != "" {
		result = FilterByCategory(result, opts.Category)
	}

	if opts.MinPrice != nil || opts.MaxPrice != nil {
		min := decimal.Zero
		if opts.MinPrice != nil {
			min = *opts.MinPrice
		}
		// An open upper bound filters only on the lower one.
		if opts.MaxPrice != nil {
			result = FilterByPriceRange(result, min, *opts.MaxPrice)
		} else {
			result = filterByMinPrice(result, min)
		}
	}

	if opts.Sort != "" {
		result = SortProducts(result, opts.Sort)
	}

	return result
}
