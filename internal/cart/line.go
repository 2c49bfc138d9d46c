package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mercora/storefront/internal/catalog"
)

// CartLine is a single priced entry in the cart. Field names and types are
// stable: the persisted snapshot must round-trip exactly.
type CartLine struct {
	ProductID      string   `json:"productId"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	SizeKey        string   `json:"sizeKey"`
	ColorKey       string   `json:"colorKey"`
	UnitPrice      float64  `json:"unitPrice"`
	SalePercent    float64  `json:"salePercent"`
	EffectivePrice float64  `json:"effectivePrice"`
	StockAvailable int      `json:"stockAvailable"`
	Images         []string `json:"images"`
	Selected       bool     `json:"selected"`
}

// LineKey renders the composite identity (productId, lowered size, color) used
// by checkout selection and by consumers keying off a line.
func (l CartLine) LineKey() string {
	return fmt.Sprintf("%s:%s:%s", l.ProductID, strings.ToLower(l.SizeKey), l.ColorKey)
}

// sameIdentity reports whether two lines are the same cart line: product ids
// equal, sizes equal case-insensitively, colors equal exactly.
func sameIdentity(a, b CartLine) bool {
	return a.ProductID == b.ProductID &&
		strings.EqualFold(a.SizeKey, b.SizeKey) &&
		a.ColorKey == b.ColorKey
}

// newLine builds a CartLine from a resolved product quote. Size is lowered,
// color prefers the display name over the raw token, quantity floors at 1.
func newLine(product *catalog.Product, quote PriceQuote, quantity int, size, color, colorName string) CartLine {
	if quantity < 1 {
		quantity = 1
	}

	colorKey := strings.TrimSpace(colorName)
	if colorKey == "" {
		colorKey = strings.TrimSpace(color)
	}

	line := CartLine{
		ProductID:      product.ID,
		Name:           product.Name,
		Quantity:       quantity,
		SizeKey:        strings.ToLower(strings.TrimSpace(size)),
		ColorKey:       colorKey,
		UnitPrice:      quote.Price,
		SalePercent:    product.SalePercent,
		StockAvailable: quote.Stock,
		Images:         append([]string(nil), product.Images...),
		Selected:       true,
	}
	line.recalcEffectivePrice()
	return line
}

// recalcEffectivePrice derives the post-sale price from its inputs. Called
// whenever UnitPrice or SalePercent change so the stored value never drifts.
func (l *CartLine) recalcEffectivePrice() {
	l.EffectivePrice = effectivePrice(l.UnitPrice, l.SalePercent)
}

func effectivePrice(unitPrice, salePercent float64) float64 {
	unit := decimal.NewFromFloat(unitPrice)
	factor := decimal.NewFromInt(100).
		Sub(decimal.NewFromFloat(salePercent)).
		Div(decimal.NewFromInt(100))
	out, _ := unit.Mul(factor).Float64()
	return out
}
