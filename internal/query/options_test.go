package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mabkhara/storefront/internal/catalog"
)

func TestParseOptionsFullSet(t *testing.T) {
	params := url.Values{}
	params.Set("category", "incense")
	params.Set("minPrice", "50")
	params.Set("maxPrice", "300")
	params.Set("orderby", "price")

	opts, err := ParseOptions(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Category != catalog.TagIncense {
		t.Errorf("expected category 'incense', got '%s'", opts.Category)
	}
	if opts.MinPrice == nil || !opts.MinPrice.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected minPrice 50, got %v", opts.MinPrice)
	}
	if opts.MaxPrice == nil || !opts.MaxPrice.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected maxPrice 300, got %v", opts.MaxPrice)
	}
	if opts.Sort != SortByPrice {
		t.Errorf("expected sort key 'price', got '%s'", opts.Sort)
	}
}

func TestParseOptionsEmptyIsZeroValue(t *testing.T) {
	opts, err := ParseOptions(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != (Options{}) {
		t.Errorf("expected zero options, got %+v", opts)
	}
}

func TestParseOptionsRejectsUnknownOrderBy(t *testing.T) {
	params := url.Values{}
	params.Set("orderby", "reviews")

	_, err := ParseOptions(params)
	if err == nil {
		t.Fatal("expected error for unknown orderby key")
	}
	if !strings.Contains(err.Error(), "reviews") {
		t.Errorf("expected error to reference offending key 'reviews', got %v", err)
	}
}

func TestParseOptionsRejectsNonNumericPrice(t *testing.T) {
	for _, param := range []string{"minPrice", "maxPrice"} {
		params := url.Values{}
		params.Set(param, "cheap")

		_, err := ParseOptions(params)
		if err == nil {
			t.Errorf("expected error for non-numeric %s", param)
		}
	}
}

func TestApplyPipelineOrder(t *testing.T) {
	min := decimal.NewFromInt(80)
	max := decimal.NewFromInt(300)
	opts := Options{
		Category: catalog.TagIncense,
		MinPrice: &min,
		MaxPrice: &max,
		Sort:     SortByPrice,
	}

	result := Apply(testProducts(), opts)

	want := []string{"bakhoor-maamoul", "bakhoor-anbar", "oud-cambodi"}
	if len(result) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(result))
	}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("position %d: expected '%s', got '%s'", i, id, result[i].ID)
		}
	}
}

func TestApplyMinPriceOnly(t *testing.T) {
	min := decimal.NewFromInt(100)
	result := Apply(testProducts(), Options{MinPrice: &min})

	for _, p := range result {
		if p.Price.LessThan(min) {
			t.Errorf("product '%s' below the minimum price", p.ID)
		}
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 products at or above 100, got %d", len(result))
	}
}

func TestApplyZeroOptionsReturnsCatalogOrder(t *testing.T) {
	products := testProducts()
	result := Apply(products, Options{})

	if len(result) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(result))
	}
	for i := range products {
		if result[i].ID != products[i].ID {
			t.Errorf("position %d: catalog order not preserved", i)
		}
	}
}
