package cart

import "math"

// Checkout policy: free shipping from FreeShippingMin up, flat FlatShipping
// below, and TaxRate applied to the subtotal with the result truncated to a
// whole amount.
const (
	FreeShippingMin = 500.0
	FlatShipping    = 25.0
	TaxRate         = 0.08
)

// Summary is the derived checkout arithmetic the cart page renders.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize computes the checkout summary for a subtotal.
func Summarize(subtotal float64) Summary {
	shipping := FlatShipping
	if subtotal >= FreeShippingMin {
		shipping = 0
	}
	tax := math.Trunc(subtotal * TaxRate)
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Summary returns the checkout summary for the cart's current total.
func (s *Store) Summary() Summary {
	return Summarize(s.TotalPrice())
}
