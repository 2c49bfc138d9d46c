package cart

import (
	cartsvc "github.com/mercora/storefront/internal/cart"
	"github.com/mercora/storefront/pkg/types"
)

// AddItemRequest mirrors the add-to-cart action. Color carries the raw color
// token, ColorName the display-cased name.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	ColorName string `json:"color_name"`
}

func (r AddItemRequest) toInput() cartsvc.AddInput {
	return cartsvc.AddInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Size:      r.Size,
		Color:     r.Color,
		ColorName: r.ColorName,
	}
}

// RemoveItemRequest identifies the exact line triple to remove.
type RemoveItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type SaveShippingAddressRequest struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

func (r SaveShippingAddressRequest) toAddress() types.Address {
	return types.Address{
		FullName:   r.FullName,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
	}
}

type SavePaymentMethodRequest struct {
	Method string `json:"method" validate:"required"`
}

type SetDrawerRequest struct {
	Open bool `json:"open"`
}

type SetSelectionRequest struct {
	Keys []string `json:"keys"`
}
