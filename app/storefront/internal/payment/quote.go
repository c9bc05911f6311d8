package payment

import "math"

const (
	FreeShippingAbove int64 = 999
	ShippingFee       int64 = 99
	TaxRate                 = 0.18
)

// Quote is the price breakdown shown on the payment page, in whole currency units.
type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

func NewQuote(subtotal int64) Quote {
	shipping := ShippingFee
	if subtotal > FreeShippingAbove {
		shipping = 0
	}
	tax := int64(math.Round(float64(subtotal) * TaxRate))
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
