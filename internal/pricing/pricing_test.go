package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(price float64, qty int) Line {
	return Line{UnitPrice: decimal.NewFromFloat(price), Quantity: qty}
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	b := ComputeTotals(nil, decimal.Zero)

	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.Tax.IsZero())
	assert.True(t, b.Shipping.IsZero(), "empty cart pays no shipping")
	assert.True(t, b.Total.IsZero())
}

func TestComputeTotals_ReferenceCart(t *testing.T) {
	// Two units of a 100 product: subtotal 200, tax 36, shipping 50, total 286.
	b := ComputeTotals([]Line{line(100, 2)}, decimal.Zero)

	assert.True(t, b.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal = %s", b.Subtotal)
	assert.True(t, b.Tax.Equal(decimal.NewFromInt(36)), "tax = %s", b.Tax)
	assert.True(t, b.Shipping.Equal(decimal.NewFromInt(50)), "shipping = %s", b.Shipping)
	assert.True(t, b.Discount.IsZero())
	assert.True(t, b.Total.Equal(decimal.NewFromInt(286)), "total = %s", b.Total)
}

func TestComputeTotals_TaxOnSubtotalOnly(t *testing.T) {
	b := ComputeTotals([]Line{line(100, 1)}, decimal.Zero)

	// 18% of 100, not of 100+50.
	assert.True(t, b.Tax.Equal(decimal.NewFromInt(18)), "tax = %s", b.Tax)
}

func TestComputeTotals_FreeShippingBoundary(t *testing.T) {
	atThreshold := ComputeTotals([]Line{line(500, 1)}, decimal.Zero)
	assert.True(t, atThreshold.Shipping.IsZero(), "subtotal exactly at threshold ships free")

	below := ComputeTotals([]Line{line(499.99, 1)}, decimal.Zero)
	assert.True(t, below.Shipping.Equal(FlatShippingFee), "one unit below pays the flat fee")
}

func TestComputeTotals_IdentityHolds(t *testing.T) {
	cases := [][]Line{
		{line(10.50, 3)},
		{line(99.99, 1), line(0.01, 7)},
		{line(250, 2), line(49.95, 4)},
	}

	for _, lines := range cases {
		discount := decimal.NewFromInt(20)
		b := ComputeTotals(lines, discount)

		expected := b.Subtotal.Add(b.Tax).Add(b.Shipping).Sub(b.Discount)
		assert.True(t, b.Total.Equal(expected), "total must equal subtotal+tax+shipping-discount")
		assert.False(t, b.Total.IsNegative())
	}
}

func TestComputeTotals_NegativeDiscountClamped(t *testing.T) {
	b := ComputeTotals([]Line{line(100, 1)}, decimal.NewFromInt(-30))

	assert.True(t, b.Discount.IsZero(), "negative discount is rejected")
	assert.True(t, b.Total.Equal(decimal.NewFromInt(168)))
}

func TestComputeTotals_OversizedDiscountFloorsAtZero(t *testing.T) {
	b := ComputeTotals([]Line{line(10, 1)}, decimal.NewFromInt(10000))

	assert.True(t, b.Total.IsZero())
	assert.False(t, b.Total.IsNegative())
}

func TestComputeTotals_NoFloatDrift(t *testing.T) {
	// 1000 additions of 0.10 must be exactly 100.
	lines := make([]Line, 0, 1000)
	for i := 0; i < 1000; i++ {
		lines = append(lines, line(0.10, 1))
	}

	b := ComputeTotals(lines, decimal.Zero)
	assert.True(t, b.Subtotal.Equal(decimal.NewFromInt(100)), "subtotal = %s", b.Subtotal)
}

func TestAmountForFreeShipping(t *testing.T) {
	assert.True(t, AmountForFreeShipping(decimal.NewFromInt(200)).Equal(decimal.NewFromInt(300)))
	assert.True(t, AmountForFreeShipping(decimal.NewFromInt(500)).IsZero())
	assert.True(t, AmountForFreeShipping(decimal.NewFromInt(700)).IsZero())
}

func TestFreeShippingEligible(t *testing.T) {
	assert.False(t, FreeShippingEligible(decimal.NewFromFloat(499.99)))
	assert.True(t, FreeShippingEligible(decimal.NewFromInt(500)))
}
