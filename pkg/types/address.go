package types

import "strings"

// Address is the structured shipping address attached to the cart.
type Address struct {
	FullName   string `json:"full_name,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// IsZero reports whether no address has been captured yet.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Normalized trims whitespace and defaults the country.
func (a Address) Normalized() Address {
	out := Address{
		FullName:   strings.TrimSpace(a.FullName),
		Line1:      strings.TrimSpace(a.Line1),
		Line2:      strings.TrimSpace(a.Line2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.TrimSpace(a.Country),
		Phone:      strings.TrimSpace(a.Phone),
	}
	if out.Country == "" && !out.IsZero() {
		out.Country = "US"
	}
	return out
}
