// Package etag derives weak ETags for catalog responses so clients can
// revalidate cached product listings cheaply.
package etag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/mabkhara/storefront/internal/catalog"
)

// Product returns the weak ETag for a single product. The hash covers the
// fields a client-visible listing can change on: identity, price, stock
// state, rating, and review count.
func Product(p catalog.Product) string {
	h := xxhash.New()
	writeProduct(h, p)
	return fmt.Sprintf("W/\"%016x\"", h.Sum64())
}

// Collection returns the weak ETag for an ordered product collection. Order
// matters: the same products sorted differently produce a different tag,
// which is what a listing response needs.
func Collection(products []catalog.Product) string {
	h := xxhash.New()
	for _, p := range products {
		writeProduct(h, p)
	}
	return fmt.Sprintf("W/\"%016x\"", h.Sum64())
}

func writeProduct(h *xxhash.Digest, p catalog.Product) {
	// Field separators keep adjacent values from colliding.
	io.WriteString(h, p.ID)
	io.WriteString(h, "|")
	io.WriteString(h, p.Price.String())
	io.WriteString(h, "|")
	io.WriteString(h, strconv.FormatBool(p.InStock))
	io.WriteString(h, "|")
	io.WriteString(h, p.Rating.String())
	io.WriteString(h, "|")
	io.WriteString(h, strconv.Itoa(p.Reviews))
	io.WriteString(h, ";")
}

// Match reports whether an If-None-Match header value matches tag. The
// header may carry a comma-separated list; "*" matches any tag.
func Match(header, tag string) bool {
	if header == "" || tag == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == tag {
			return true
		}
	}
	return false
}
