// Package pricing derives the cost breakdown for a set of cart lines.
// All arithmetic uses decimal values so repeated additions never drift.
package pricing

import "github.com/shopspring/decimal"

var (
	// TaxRate is applied to the subtotal only, never to subtotal+shipping.
	TaxRate = decimal.NewFromFloat(0.18)

	// FreeShippingThreshold is the subtotal at or above which shipping is free.
	FreeShippingThreshold = decimal.NewFromInt(500)

	// FlatShippingFee is charged on non-empty carts below the threshold.
	FlatShippingFee = decimal.NewFromInt(50)
)

// Line is the minimal view of a cart line the pricing engine needs.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Breakdown is the derived cost summary for a cart.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives the full breakdown from the given lines and discount.
// A negative discount is clamped to zero; the engine never invents discounts.
// The total is floored at zero if an oversized discount would drive it negative.
func ComputeTotals(lines []Line, discount decimal.Decimal) Breakdown {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if discount.IsNegative() {
		discount = decimal.Zero
	}

	tax := subtotal.Mul(TaxRate)
	shipping := shippingCost(len(lines), subtotal)

	total := subtotal.Add(tax).Add(shipping).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}

func shippingCost(lineCount int, subtotal decimal.Decimal) decimal.Decimal {
	if lineCount == 0 {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingFee
}

// AmountForFreeShipping returns how much more subtotal is needed before
// shipping becomes free. Zero once the threshold is reached.
func AmountForFreeShipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FreeShippingThreshold.Sub(subtotal)
}

// FreeShippingEligible reports whether the subtotal qualifies for free shipping.
func FreeShippingEligible(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(FreeShippingThreshold)
}
