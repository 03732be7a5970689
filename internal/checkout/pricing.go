package checkout

import "github.com/shopspring/decimal"

const (
	FreeShippingThreshold = 2999
	ShippingFee           = 99
)

var taxRate = decimal.RequireFromString("0.18")

// Totals are whole rupees.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

func ShippingCost(subtotal int) int {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// Tax is 18% of the subtotal rounded half away from zero.
func Tax(subtotal int) int {
	return int(decimal.NewFromInt(int64(subtotal)).Mul(taxRate).Round(0).IntPart())
}

func ComputeTotals(subtotal int) Totals {
	shipping := ShippingCost(subtotal)
	tax := Tax(subtotal)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
