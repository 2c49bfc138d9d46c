package catalog

import (
	"encoding/json"
	"strings"

	pkgerrors "github.com/mercora/storefront/pkg/errors"
)

// rawProduct mirrors the loosely-typed catalog payload. Upstream records are
// inconsistent: ids arrive under "_id" or "id" as strings or numbers, and the
// display name under "name" or "productDisplayName".
type rawProduct struct {
	ID             json.RawMessage `json:"id"`
	LegacyID       json.RawMessage `json:"_id"`
	Name           string          `json:"name"`
	DisplayName    string          `json:"productDisplayName"`
	Price          float64         `json:"price"`
	SalePercentage float64         `json:"salePercentage"`
	CountInStock   int             `json:"countInStock"`
	Images         []string        `json:"images"`
	Variants       []rawVariant    `json:"variants"`
}

type rawVariant struct {
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	ColorName    string  `json:"colorName"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
}

// Normalize decodes a raw catalog payload into the canonical Product shape.
func Normalize(payload []byte) (*Product, error) {
	var raw rawProduct
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalogFetch, err, "decode catalog payload")
	}

	id := normalizeID(raw.LegacyID)
	if id == "" {
		id = normalizeID(raw.ID)
	}
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeCatalogFetch, "catalog payload missing product id")
	}

	name := raw.Name
	if name == "" {
		name = raw.DisplayName
	}

	product := &Product{
		ID:           id,
		Name:         name,
		Price:        raw.Price,
		SalePercent:  clampPercent(raw.SalePercentage),
		CountInStock: raw.CountInStock,
		Images:       raw.Images,
	}
	for _, v := range raw.Variants {
		product.Variants = append(product.Variants, Variant(v))
	}
	return product, nil
}

// normalizeID renders string or numeric ids as a plain string.
func normalizeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return strings.TrimSpace(asString)
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return ""
}

func clampPercent(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
