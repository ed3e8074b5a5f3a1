package storefront

import (
	"github.com/mabkhara/storefront/internal/cart"
	"github.com/mabkhara/storefront/internal/catalog"
)

// Sentinel errors for common storefront conditions. These can be used with
// errors.Is() for error handling; all of them describe expected misses, not
// faults.
var (
	// ErrProductNotFound indicates the product id is absent from the catalog.
	// Maps to HTTP 404 Not Found.
	ErrProductNotFound = catalog.ErrProductNotFound

	// ErrCategoryNotFound indicates the category id is absent from the catalog.
	// Maps to HTTP 404 Not Found.
	ErrCategoryNotFound = catalog.ErrCategoryNotFound

	// ErrCartNotFound indicates the cart session id is unknown.
	// Maps to HTTP 404 Not Found.
	ErrCartNotFound = cart.ErrCartNotFound

	// ErrCartEntryNotFound indicates the product has no entry in the cart.
	// Maps to HTTP 404 Not Found.
	ErrCartEntryNotFound = cart.ErrEntryNotFound
)
