package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/shopeasy-commerce-service/internal/cart"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
	"github.com/shopeasy/shopeasy-commerce-service/internal/pricing"
)

// ProductGetter resolves a catalog entry for cart additions.
type ProductGetter interface {
	GetProduct(ctx context.Context, id int64) (models.Product, error)
}

// CartView is a read-only snapshot of a user's cart for presentation.
type CartView struct {
	Lines     []cart.Line
	ItemCount int
	Totals    pricing.Breakdown
}

// CartService applies cart mutations against the catalog.
type CartService struct {
	carts    *cart.Store
	products ProductGetter
	logger   *slog.Logger
}

func NewCartService(carts *cart.Store, products ProductGetter, logger *slog.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// View returns the current cart contents and totals.
func (s *CartService) View(userID int64) CartView {
	var view CartView
	_ = s.carts.Do(userID, func(c *cart.Cart) error {
		view.Lines = c.Lines()
		view.ItemCount = c.TotalItemCount()
		view.Totals = c.Totals()
		return nil
	})
	return view
}

// AddItem resolves the product and merges it into the user's cart.
func (s *CartService) AddItem(ctx context.Context, userID, productID int64, quantity int, size, color string) (CartView, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return CartView{}, err
	}

	err = s.carts.Do(userID, func(c *cart.Cart) error {
		return c.AddLine(product, quantity, size, color)
	})
	if err != nil {
		return CartView{}, err
	}
	s.logger.Info("item added to cart", "user_id", userID, "product_id", productID, "quantity", quantity)
	return s.View(userID), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(userID int64, key string, quantity int) CartView {
	_ = s.carts.Do(userID, func(c *cart.Cart) error {
		c.UpdateQuantity(key, quantity)
		return nil
	})
	return s.View(userID)
}

// RemoveItem deletes a line from the cart. Unknown keys are a no-op.
func (s *CartService) RemoveItem(userID int64, key string) CartView {
	_ = s.carts.Do(userID, func(c *cart.Cart) error {
		c.RemoveLine(key)
		return nil
	})
	return s.View(userID)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID int64) {
	_ = s.carts.Do(userID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

// SetDiscount applies a flat discount to the cart totals.
func (s *CartService) SetDiscount(userID int64, d decimal.Decimal) (CartView, error) {
	err := s.carts.Do(userID, func(c *cart.Cart) error {
		return c.SetDiscount(d)
	})
	if err != nil {
		return CartView{}, err
	}
	return s.View(userID), nil
}
