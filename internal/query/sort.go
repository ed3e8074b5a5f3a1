package query

import (
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mabkhara/storefront/internal/catalog"
)

// SortProducts returns a copy of products ordered by key. Name ordering uses
// Arabic collation, matching the language of the primary display names; price
// sorts ascending and rating descending. All three orderings are stable, so
// products comparing equal keep their original relative order.
//
// An unrecognized key returns the products unsorted; callers validate keys
// through ParseOptions before getting here.
func SortProducts(products []catalog.Product, key SortKey) []catalog.Product {
	sorted := slices.Clone(products)

	switch key {
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating.GreaterThan(sorted[j].Rating)
		})
	case SortByName:
		// A fresh collator per call: collate.Collator buffers state between
		// comparisons and must not be shared across goroutines.
		c := collate.New(language.Arabic)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}

	return sorted
}
