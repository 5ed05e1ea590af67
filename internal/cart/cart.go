// Package cart implements the mutable shopping cart and its derived totals.
package cart

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
	"github.com/shopeasy/shopeasy-commerce-service/internal/pricing"
)

// Line is one cart entry: a product variant and its quantity. Two lines with
// the same key are the same line and are merged, never duplicated.
type Line struct {
	Key      string          `json:"key"`
	Product  models.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// Subtotal returns price x quantity for the line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineKey builds the stable variant key for a (product, size, color) tuple.
func LineKey(productID int64, size, color string) string {
	if size == "" {
		size = "na"
	}
	if color == "" {
		color = "na"
	}
	return strconv.FormatInt(productID, 10) + "_" + size + "_" + color
}

// Cart holds the line items of one session in insertion order. Derived totals
// are recomputed on every mutation; callers never observe stale totals.
// Cart is not safe for concurrent use; Store serializes access per session.
type Cart struct {
	lines    []*Line
	discount decimal.Decimal
	totals   pricing.Breakdown
}

// New returns an empty cart with zeroed totals.
func New() *Cart {
	c := &Cart{discount: decimal.Zero}
	c.recompute()
	return c
}

// AddLine merges the given quantity into an existing variant line or appends
// a new one. Quantity must be positive.
func (c *Cart) AddLine(product models.Product, quantity int, size, color string) error {
	if quantity <= 0 {
		return apperr.NewValidationError("quantity", "must be positive")
	}

	key := LineKey(product.ID, size, color)
	if existing, ok := c.FindByKey(key); ok {
		existing.Quantity += quantity
	} else {
		c.lines = append(c.lines, &Line{
			Key:      key,
			Product:  product,
			Quantity: quantity,
			Size:     size,
			Color:    color,
		})
	}

	c.recompute()
	return nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line. Unknown keys are a no-op.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(key)
		return
	}

	if line, ok := c.FindByKey(key); ok {
		line.Quantity = quantity
		c.recompute()
	}
}

// RemoveLine deletes the line with the given key, if present.
func (c *Cart) RemoveLine(key string) {
	for i, line := range c.lines {
		if line.Key == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	c.recompute()
}

// Clear drops all lines.
func (c *Cart) Clear() {
	c.lines = nil
	c.recompute()
}

// FindByKey returns the line with the given key, or ok=false if absent.
func (c *Cart) FindByKey(key string) (*Line, bool) {
	for _, line := range c.lines {
		if line.Key == key {
			return line, true
		}
	}
	return nil, false
}

// SetDiscount applies an externally granted discount. Negative values are
// rejected; the cart never invents or inverts discounts.
func (c *Cart) SetDiscount(d decimal.Decimal) error {
	if d.IsNegative() {
		return apperr.NewValidationError("discount", "cannot be negative")
	}
	c.discount = d
	c.recompute()
	return nil
}

// Lines returns the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

// Totals returns the breakdown derived from the current line set.
func (c *Cart) Totals() pricing.Breakdown {
	return c.totals
}

// TotalItemCount returns the summed quantity across all lines.
func (c *Cart) TotalItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Snapshot freezes the current lines and total into immutable order lines.
// The product name and unit price are copied so later catalog edits cannot
// change the historical record.
func (c *Cart) Snapshot() ([]models.OrderLine, decimal.Decimal) {
	lines := make([]models.OrderLine, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, models.OrderLine{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.Product.Price,
		})
	}
	return lines, c.totals.Total
}

func (c *Cart) recompute() {
	priced := make([]pricing.Line, 0, len(c.lines))
	for _, l := range c.lines {
		priced = append(priced, pricing.Line{UnitPrice: l.Product.Price, Quantity: l.Quantity})
	}
	c.totals = pricing.ComputeTotals(priced, c.discount)
}
