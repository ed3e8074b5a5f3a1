package cart

import "github.com/shopspring/decimal"

// Pricing holds the monetary policy used to derive cart totals. All figures
// are in the storefront's single regional currency.
type Pricing struct {
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// The comparison is strict: a subtotal exactly at the threshold still
	// pays the fee.
	FreeShippingThreshold decimal.Decimal

	// ShippingFee is the flat fee charged below the threshold.
	ShippingFee decimal.Decimal

	// TaxRate is the flat value-added tax rate applied to the subtotal.
	// Shipping is not taxed.
	TaxRate decimal.Decimal
}

// DefaultPricing returns the storefront's standard policy: free shipping
// above 200, a flat fee of 25 otherwise, and 15% VAT.
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromInt(200),
		ShippingFee:           decimal.NewFromInt(25),
		TaxRate:               decimal.RequireFromString("0.15"),
	}
}

// Totals are the four monetary figures shown on the order summary.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Totals derives the order summary from the current entries. It recomputes
// everything from scratch on every call; there is no cached subtotal to
// drift out of sync with the entries.
func (l *Ledger) Totals(p Pricing) Totals {
	subtotal := decimal.Zero
	for _, e := range l.entries {
		subtotal = subtotal.Add(e.Product.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}

	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(p.TaxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
