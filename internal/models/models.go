// Package models holds the domain entities shared across the service.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultStock is the informational stock count assigned to catalog products.
// Checkout never decrements it.
const DefaultStock = 10

// Product is a catalog entry. Identity is assigned by storage.
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImagePath string          `json:"image_path"`
	Category  string          `json:"category"`
	Stock     int             `json:"stock"`
}

// InStock reports whether the product is available for display purposes.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// User is a registered account. ID is zero until persisted.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Salt         string `json:"-"`
	PasswordHash string `json:"-"`
}

// OrderLine is an immutable snapshot of one purchased cart line. ProductName
// and UnitPrice are captured at purchase time so the order renders the same
// way even if the catalog entry is later renamed or repriced.
type OrderLine struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Subtotal returns price x quantity for the line.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is an immutable snapshot of a completed purchase.
type Order struct {
	OrderID  string          `json:"order_id"`
	PlacedAt time.Time       `json:"placed_at"`
	Total    decimal.Decimal `json:"total"`
	Lines    []OrderLine     `json:"lines"`
}
