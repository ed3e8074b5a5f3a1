package catalog

import (
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// Sentinel errors for catalog lookups. Misses are expected (stale links,
// hand-typed URLs), so callers check these with errors.Is rather than
// treating them as faults.
var (
	// ErrProductNotFound indicates the product id is absent from the catalog.
	ErrProductNotFound = errors.New("catalog: product not found")

	// ErrCategoryNotFound indicates the category id is absent from the catalog.
	ErrCategoryNotFound = errors.New("catalog: category not found")
)

// Store is the immutable in-memory catalog. It is built once at startup and
// shared read-only by every consumer; no method mutates it.
type Store struct {
	products   []Product
	categories []Category

	productsByID   map[string]int
	categoriesByID map[string]int
	// productsByTag holds indexes into products, preserving catalog order.
	productsByTag map[Tag][]int
}

// NewStore builds a Store from in-memory slices. Category product lists are
// derived from the product tags, so a category row never carries its own
// product list that could fall out of sync.
func NewStore(products []Product, categories []Category) (*Store, error) {
	s := &Store{
		products:       slices.Clone(products),
		categories:     slices.Clone(categories),
		productsByID:   make(map[string]int, len(products)),
		categoriesByID: make(map[string]int, len(categories)),
		productsByTag:  make(map[Tag][]int),
	}

	for i, c := range s.categories {
		if c.ID == "" {
			return nil, fmt.Errorf("catalog: category at position %d has no id", i)
		}
		if _, dup := s.categoriesByID[c.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate category id '%s'", c.ID)
		}
		s.categoriesByID[c.ID] = i
	}

	for i, p := range s.products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: product at position %d has no id", i)
		}
		if _, dup := s.productsByID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id '%s'", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("catalog: product '%s' has unknown category tag '%s'", p.ID, p.Category)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("catalog: product '%s' has negative price %s", p.ID, p.Price)
		}
		s.productsByID[p.ID] = i
		s.productsByTag[p.Category] = append(s.productsByTag[p.Category], i)
	}

	return s, nil
}

// Load reads the full catalog from the database into a Store. It is the one
// I/O step the catalog performs; everything afterwards is in-memory.
func Load(db *gorm.DB) (*Store, error) {
	var products []Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("catalog: loading products: %w", err)
	}

	var categories []Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("catalog: loading categories: %w", err)
	}

	return NewStore(products, categories)
}

// Products returns all catalog products in catalog order. The slice is a copy
// and safe for the caller to filter or reorder.
func (s *Store) Products() []Product {
	return slices.Clone(s.products)
}

// Categories returns all categories in catalog order.
func (s *Store) Categories() []Category {
	return slices.Clone(s.categories)
}

// LookupProduct returns the product with the given id, or ErrProductNotFound.
func (s *Store) LookupProduct(id string) (Product, error) {
	i, ok := s.productsByID[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: '%s'", ErrProductNotFound, id)
	}
	return s.products[i], nil
}

// LookupCategory returns the category with the given id, or
// ErrCategoryNotFound.
func (s *Store) LookupCategory(id string) (Category, error) {
	i, ok := s.categoriesByID[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: '%s'", ErrCategoryNotFound, id)
	}
	return s.categories[i], nil
}

// CategoryProducts returns the products carrying the category's tag, in
// catalog order. The category must exist; an unknown id yields
// ErrCategoryNotFound before any filtering happens.
func (s *Store) CategoryProducts(id string) ([]Product, error) {
	if _, err := s.LookupCategory(id); err != nil {
		return nil, err
	}

	indexes := s.productsByTag[Tag(id)]
	result := make([]Product, 0, len(indexes))
	for _, i := range indexes {
		result = append(result, s.products[i])
	}
	return result, nil
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}
