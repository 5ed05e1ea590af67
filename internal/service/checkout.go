package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/cart"
	"github.com/shopeasy/shopeasy-commerce-service/internal/metrics"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
	"github.com/shopeasy/shopeasy-commerce-service/internal/payment"
	"github.com/shopeasy/shopeasy-commerce-service/internal/repository"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// OrderSaver persists a completed order atomically.
type OrderSaver interface {
	SaveOrder(ctx context.Context, userID int64, order models.Order) error
}

// EventPublisher emits domain events for downstream consumers.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, userID int64, order models.Order) error
}

// CheckoutResult reports the outcome of a single checkout attempt.
type CheckoutResult struct {
	AttemptID string
	Status    AttemptStatus
	Order     *models.Order
}

// CheckoutService drives a checkout attempt through payment, order
// persistence and cart teardown.
type CheckoutService struct {
	carts     *cart.Store
	orders    OrderSaver
	cache     repository.HistoryCache
	payments  payment.Provider
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewCheckoutService(
	carts *cart.Store,
	orders OrderSaver,
	cache repository.HistoryCache,
	payments payment.Provider,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		orders:    orders,
		cache:     cache,
		payments:  payments,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Checkout runs one attempt for the user's cart. On a payment decline the
// cart is left untouched and the caller may retry. If the payment is
// captured but the order cannot be recorded, the error wraps
// apperr.ErrReconciliationRequired so the condition is never reported as an
// ordinary failure.
func (s *CheckoutService) Checkout(ctx context.Context, userID int64) (CheckoutResult, error) {
	result := CheckoutResult{
		AttemptID: uuid.New().String(),
		Status:    AttemptStatusIdle,
	}

	var amount decimal.Decimal
	err := s.carts.Do(userID, func(c *cart.Cart) error {
		if c.IsEmpty() {
			return ErrEmptyCart
		}
		amount = c.Totals().Total
		return nil
	})
	if err != nil {
		result.Status = AttemptStatusFailed
		return result, err
	}

	result.Status = AttemptStatusProcessing
	order := models.Order{
		OrderID:  s.newOrderID(),
		PlacedAt: s.now().UTC(),
	}

	s.logger.Info("checkout started",
		"attempt_id", result.AttemptID,
		"order_id", order.OrderID,
		"user_id", userID,
		"amount", amount.StringFixed(2))

	if err := s.payments.Authorize(ctx, order.OrderID, amount); err != nil {
		result.Status = AttemptStatusFailed
		if errors.Is(err, apperr.ErrPaymentDeclined) {
			s.metrics.PaymentsDeclined.Inc()
			s.logger.Warn("payment declined", "order_id", order.OrderID, "user_id", userID)
			return result, err
		}
		s.logger.Error("payment step failed", "order_id", order.OrderID, "error", err)
		return result, fmt.Errorf("authorize payment: %w", err)
	}

	// Payment is captured. From here on, any persistence failure must be
	// surfaced for reconciliation rather than swallowed.
	err = s.carts.Do(userID, func(c *cart.Cart) error {
		order.Lines, order.Total = c.Snapshot()
		return nil
	})
	if err == nil {
		err = s.orders.SaveOrder(ctx, userID, order)
	}
	if err != nil {
		result.Status = AttemptStatusFailed
		s.metrics.ReconciliationCases.Inc()
		s.logger.Error("order not recorded after payment capture",
			"order_id", order.OrderID,
			"user_id", userID,
			"error", err)
		return result, fmt.Errorf("%w: order %s: %v", apperr.ErrReconciliationRequired, order.OrderID, err)
	}

	if dropErr := s.carts.Do(userID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	}); dropErr != nil {
		s.logger.Error("failed to clear cart after checkout", "user_id", userID, "error", dropErr)
	}

	if s.cache != nil {
		if cacheErr := s.cache.Invalidate(ctx, userID); cacheErr != nil {
			s.logger.Error("failed to invalidate history cache", "user_id", userID, "error", cacheErr)
		}
	}

	if s.publisher != nil {
		if pubErr := s.publisher.PublishOrderPlaced(ctx, userID, order); pubErr != nil {
			s.logger.Error("failed to publish order event", "order_id", order.OrderID, "error", pubErr)
		}
	}

	s.metrics.OrdersPlaced.Inc()
	result.Status = AttemptStatusSucceeded
	result.Order = &order
	s.logger.Info("checkout succeeded",
		"order_id", order.OrderID,
		"user_id", userID,
		"total", order.Total.StringFixed(2))
	return result, nil
}

// newOrderID builds a display identifier unique across restarts.
func (s *CheckoutService) newOrderID() string {
	short := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("ORD-%d-%s", s.now().UnixMilli(), strings.ToUpper(short))
}
