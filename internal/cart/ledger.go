// Package cart maintains per-session cart ledgers: quantities keyed by
// product, with derived order totals. A ledger belongs to exactly one
// session; nothing in this package assumes more than one actor mutates a
// given ledger at a time.
package cart

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mabkhara/storefront/internal/catalog"
)

// Sentinel errors for ledger and session lookups.
var (
	// ErrCartNotFound indicates the cart id is unknown to the manager.
	ErrCartNotFound = errors.New("cart: cart not found")

	// ErrEntryNotFound indicates the product has no entry in the ledger.
	ErrEntryNotFound = errors.New("cart: entry not found")
)

// Limits bound the quantity a single ledger entry may take. Min is the floor
// applied on every write; Max is the ceiling, with zero meaning unbounded.
//
// The storefront carries two distinct limit sets: the cart page increments
// with a floor only, while the detail-page stepper also caps at 10. They are
// configured separately because the two surfaces genuinely behave
// differently.
type Limits struct {
	Min int
	Max int
}

// DefaultAddLimits bound the add/increment path: floor of one, no ceiling.
func DefaultAddLimits() Limits { return Limits{Min: 1} }

// DefaultSetLimits bound the set-quantity path: the detail-page stepper
// range of one to ten.
func DefaultSetLimits() Limits { return Limits{Min: 1, Max: 10} }

// Clamp forces qty into the limit range.
func (l Limits) Clamp(qty int) int {
	if qty < l.Min {
		qty = l.Min
	}
	if l.Max > 0 && qty > l.Max {
		qty = l.Max
	}
	return qty
}

// Entry pairs a catalog product with the quantity in the cart. The product
// value is a snapshot of the immutable catalog record.
type Entry struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Ledger is one session's cart: an ordered sequence of entries with at most
// one entry per product id. Every entry's quantity is at least one; an entry
// that would drop below one is clamped, never retained at zero.
type Ledger struct {
	id        string
	entries   []Entry
	addLimits Limits
	setLimits Limits
}

// NewLedger creates an empty ledger with the given id and quantity limits.
func NewLedger(id string, addLimits, setLimits Limits) *Ledger {
	return &Ledger{
		id:        id,
		addLimits: addLimits,
		setLimits: setLimits,
	}
}

// ID returns the ledger's session identifier.
func (l *Ledger) ID() string { return l.id }

// Len returns the number of distinct products in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns a copy of the ledger's entries in insertion order.
func (l *Ledger) Entries() []Entry {
	return slices.Clone(l.entries)
}

// AddOrIncrement adds delta to the product's quantity, inserting a new entry
// when the product is not yet in the ledger. The result is clamped to the
// add-path limits, so this path can never drive a quantity below the floor:
// adding a negative delta to an absent product still inserts it at the
// minimum quantity.
func (l *Ledger) AddOrIncrement(product catalog.Product, delta int) Entry {
	for i := range l.entries {
		if l.entries[i].Product.ID == product.ID {
			l.entries[i].Quantity = l.addLimits.Clamp(l.entries[i].Quantity + delta)
			return l.entries[i]
		}
	}

	entry := Entry{Product: product, Quantity: l.addLimits.Clamp(delta)}
	l.entries = append(l.entries, entry)
	return entry
}

// SetQuantity replaces the product's quantity, clamped to the set-path
// limits. Unlike AddOrIncrement it never inserts: setting a quantity for a
// product not in the ledger returns ErrEntryNotFound.
func (l *Ledger) SetQuantity(productID string, qty int) (Entry, error) {
	for i := range l.entries {
		if l.entries[i].Product.ID == productID {
			l.entries[i].Quantity = l.setLimits.Clamp(qty)
			return l.entries[i], nil
		}
	}
	return Entry{}, fmt.Errorf("%w: '%s'", ErrEntryNotFound, productID)
}

// Remove deletes the product's entry. Removing a product that is not in the
// ledger is a silent no-op, not an error.
func (l *Ledger) Remove(productID string) {
	for i := range l.entries {
		if l.entries[i].Product.ID == productID {
			l.entries = slices.Delete(l.entries, i, i+1)
			return
		}
	}
}
