package cart

import (
	cartsvc "github.com/mercora/storefront/internal/cart"
	"github.com/mercora/storefront/pkg/types"
)

type lineView struct {
	LineKey        string   `json:"line_key"`
	ProductID      string   `json:"product_id"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	SizeKey        string   `json:"size_key"`
	ColorKey       string   `json:"color_key"`
	UnitPrice      float64  `json:"unit_price"`
	SalePercent    float64  `json:"sale_percent"`
	EffectivePrice float64  `json:"effective_price"`
	StockAvailable int      `json:"stock_available"`
	Images         []string `json:"images"`
	Selected       bool     `json:"selected"`
}

type cartView struct {
	Lines            []lineView     `json:"lines"`
	ShippingAddress  *types.Address `json:"shipping_address,omitempty"`
	PaymentMethod    string         `json:"payment_method,omitempty"`
	SelectedLineKeys []string       `json:"selected_line_keys"`
	DrawerOpen       bool           `json:"drawer_open"`
}

func newLineView(line cartsvc.CartLine) lineView {
	return lineView{
		LineKey:        line.LineKey(),
		ProductID:      line.ProductID,
		Name:           line.Name,
		Quantity:       line.Quantity,
		SizeKey:        line.SizeKey,
		ColorKey:       line.ColorKey,
		UnitPrice:      line.UnitPrice,
		SalePercent:    line.SalePercent,
		EffectivePrice: line.EffectivePrice,
		StockAvailable: line.StockAvailable,
		Images:         line.Images,
		Selected:       line.Selected,
	}
}

func newLinesView(lines []cartsvc.CartLine) []lineView {
	out := make([]lineView, 0, len(lines))
	for _, line := range lines {
		out = append(out, newLineView(line))
	}
	return out
}

func newCartView(snap cartsvc.Snapshot) cartView {
	return cartView{
		Lines:            newLinesView(snap.Lines),
		ShippingAddress:  snap.ShippingAddress,
		PaymentMethod:    snap.PaymentMethod,
		SelectedLineKeys: snap.SelectedLineKeys,
		DrawerOpen:       snap.DrawerOpen,
	}
}
