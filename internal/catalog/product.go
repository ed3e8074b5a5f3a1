package catalog

import (
	"github.com/shopspring/decimal"
)

// Tag classifies a product into one of the storefront's fixed categories.
type Tag string

// The catalog carries exactly two product families.
const (
	TagIncense Tag = "incense"
	TagPerfume Tag = "perfume"
)

// Valid reports whether t is one of the known category tags.
func (t Tag) Valid() bool {
	switch t {
	case TagIncense, TagPerfume:
		return true
	}
	return false
}

// Product is a single catalog item. Products are static data: they are loaded
// once at startup and never mutated afterwards, so values can be shared freely
// between goroutines.
//
// Prices and ratings are decimals rather than floats so that derived monetary
// figures stay exact.
type Product struct {
	ID            string           `json:"id" gorm:"primaryKey"`
	Name          string           `json:"name" gorm:"not null"`
	NameEN        string           `json:"nameEn"`
	Description   string           `json:"description"`
	DescriptionEN string           `json:"descriptionEn"`
	Price         decimal.Decimal  `json:"price" gorm:"type:decimal(12,2);not null"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty" gorm:"type:decimal(12,2)"`
	Category      Tag              `json:"category" gorm:"index;not null"`
	InStock       bool             `json:"inStock"`
	Rating        decimal.Decimal  `json:"rating" gorm:"type:decimal(3,1)"`
	Reviews       int              `json:"reviews"`
	Features      []string         `json:"features" gorm:"serializer:json"`
	Ingredients   []string         `json:"ingredients,omitempty" gorm:"serializer:json"`
	Size          string           `json:"size,omitempty"`
	Weight        string           `json:"weight,omitempty"`
	Origin        string           `json:"origin,omitempty"`
}

// DiscountPercent returns the rounded discount percentage implied by the
// original price, or zero when no original price is set or it is not above
// the current price. Display-only: no original >= price invariant is enforced
// on the data itself.
func (p Product) DiscountPercent() int64 {
	if p.OriginalPrice == nil || !p.OriginalPrice.GreaterThan(p.Price) {
		return 0
	}
	hundred := decimal.NewFromInt(100)
	pct := p.OriginalPrice.Sub(p.Price).Div(*p.OriginalPrice).Mul(hundred)
	return pct.Round(0).IntPart()
}
