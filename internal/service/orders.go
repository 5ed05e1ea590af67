package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
	"github.com/shopeasy/shopeasy-commerce-service/internal/repository"
)

// OrderReader loads recorded orders for a user.
type OrderReader interface {
	OrderHistory(ctx context.Context, userID int64) ([]models.Order, error)
	PurgeOrdersOlderThan(ctx context.Context, window time.Duration) (int64, error)
}

// OrderService serves order history with a cache-aside read path.
type OrderService struct {
	store  OrderReader
	cache  repository.HistoryCache
	logger *slog.Logger
}

func NewOrderService(store OrderReader, cache repository.HistoryCache, logger *slog.Logger) *OrderService {
	return &OrderService{store: store, cache: cache, logger: logger}
}

// History returns the user's orders, most recent first. Cache failures are
// logged and the database remains the source of truth.
func (s *OrderService) History(ctx context.Context, userID int64) ([]models.Order, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Error("failed to read history cache", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	orders, err := s.store.OrderHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, orders); err != nil {
			s.logger.Error("failed to write history cache", "user_id", userID, "error", err)
		}
	}
	return orders, nil
}

// PurgeExpired removes orders older than the retention window. It is run
// best-effort at startup; failures are reported but never fatal.
func (s *OrderService) PurgeExpired(ctx context.Context, window time.Duration) (int64, error) {
	purged, err := s.store.PurgeOrdersOlderThan(ctx, window)
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		s.logger.Info("purged expired orders", "count", purged, "window", window.String())
	}
	return purged, nil
}
