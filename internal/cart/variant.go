package cart

import (
	"strings"

	"github.com/mercora/storefront/internal/catalog"
)

// PriceQuote is the resolved price and stock for a requested selection.
type PriceQuote struct {
	Price float64
	Stock int
}

// NoMatchPolicy decides what a resolver returns when a product has variants
// but none matches the requested selection.
type NoMatchPolicy int

const (
	// NoMatchFirstVariant falls back to the first listed variant without
	// checking its stock. Adds are never blocked, at the cost of possible
	// overselling.
	NoMatchFirstVariant NoMatchPolicy = iota
)

// Resolver picks the purchasable variant for a (size, color) selection.
type Resolver struct {
	policy NoMatchPolicy
}

// NewResolver builds a resolver with the given no-match policy.
func NewResolver(policy NoMatchPolicy) Resolver {
	return Resolver{policy: policy}
}

// Resolve returns the price and stock for the requested selection. Products
// without variants pass through their base price and stock. Variant matching
// compares size case-insensitively and color against either the raw color
// token or the display name; the first listed match wins.
func (r Resolver) Resolve(product *catalog.Product, requestedSize, requestedColor string) PriceQuote {
	if !product.HasVariants() {
		return PriceQuote{Price: product.Price, Stock: product.CountInStock}
	}

	for _, v := range product.Variants {
		if !strings.EqualFold(v.Size, requestedSize) {
			continue
		}
		if v.Color == requestedColor || v.ColorName == requestedColor {
			return PriceQuote{Price: v.Price, Stock: v.CountInStock}
		}
	}

	// NoMatchFirstVariant is the only policy today.
	first := product.Variants[0]
	return PriceQuote{Price: first.Price, Stock: first.CountInStock}
}
