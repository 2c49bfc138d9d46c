package catalog

// Product is the canonical catalog record consumed by the cart engine. Remote
// payloads are normalized into this shape once, at the boundary.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	SalePercent  float64   `json:"sale_percent"`
	CountInStock int       `json:"count_in_stock"`
	Images       []string  `json:"images"`
	Variants     []Variant `json:"variants,omitempty"`
}

// Variant is a purchasable size/color configuration with its own price and stock.
type Variant struct {
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	ColorName    string  `json:"color_name,omitempty"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"count_in_stock"`
}

// HasVariants reports whether the product carries a variant dimension.
func (p *Product) HasVariants() bool {
	return p != nil && len(p.Variants) > 0
}
