package cart

import (
	"testing"

	"github.com/mercora/storefront/internal/catalog"
)

func TestResolveNoVariantsPassthrough(t *testing.T) {
	t.Parallel()

	product := &catalog.Product{ID: "p1", Price: 50, CountInStock: 5}
	quote := NewResolver(NoMatchFirstVariant).Resolve(product, "M", "#fff")

	if quote.Price != 50 || quote.Stock != 5 {
		t.Fatalf("expected base price/stock passthrough, got %+v", quote)
	}
}

func TestResolveExactMatch(t *testing.T) {
	t.Parallel()

	product := &catalog.Product{
		ID:    "p1",
		Price: 50,
		Variants: []catalog.Variant{
			{Size: "S", Color: "#000", ColorName: "Black", Price: 55, CountInStock: 2},
			{Size: "M", Color: "#fff", ColorName: "White", Price: 60, CountInStock: 3},
		},
	}
	resolver := NewResolver(NoMatchFirstVariant)

	quote := resolver.Resolve(product, "m", "#fff")
	if quote.Price != 60 || quote.Stock != 3 {
		t.Fatalf("size should match case-insensitively, got %+v", quote)
	}

	quote = resolver.Resolve(product, "M", "White")
	if quote.Price != 60 || quote.Stock != 3 {
		t.Fatalf("display name should match, got %+v", quote)
	}
}

func TestResolveFirstListedMatchWins(t *testing.T) {
	t.Parallel()

	product := &catalog.Product{
		ID: "p1",
		Variants: []catalog.Variant{
			{Size: "M", Color: "#fff", Price: 10, CountInStock: 1},
			{Size: "M", Color: "#fff", Price: 99, CountInStock: 9},
		},
	}
	quote := NewResolver(NoMatchFirstVariant).Resolve(product, "M", "#fff")
	if quote.Price != 10 {
		t.Fatalf("expected first listed duplicate to win, got %+v", quote)
	}
}

func TestResolveNoMatchFallsBackToFirstVariant(t *testing.T) {
	t.Parallel()

	product := &catalog.Product{
		ID:           "p1",
		Price:        50,
		CountInStock: 100,
		Variants: []catalog.Variant{
			{Size: "S", Color: "#000", Price: 44, CountInStock: 0},
			{Size: "M", Color: "#fff", Price: 60, CountInStock: 3},
		},
	}
	quote := NewResolver(NoMatchFirstVariant).Resolve(product, "XL", "Purple")

	// The fallback is availability-agnostic: the first variant wins even with
	// zero stock, and the base price is never used.
	if quote.Price != 44 || quote.Stock != 0 {
		t.Fatalf("expected first-variant fallback, got %+v", quote)
	}
}
