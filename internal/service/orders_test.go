package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

func sampleOrder(id string, placedAt time.Time) models.Order {
	return models.Order{
		OrderID:  id,
		PlacedAt: placedAt,
		Total:    decimal.NewFromInt(286),
		Lines: []models.OrderLine{
			{ProductID: 1, ProductName: "Canvas Shoes", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		},
	}
}

func TestHistory_CacheMissFallsThroughAndPopulates(t *testing.T) {
	store := newFakeOrderStore()
	cache := newFakeCache()
	store.saved[7] = []models.Order{sampleOrder("ORD-1", time.Now())}
	svc := NewOrderService(store, cache, discardLogger())

	orders, err := svc.History(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, cache.entries[7], 1, "miss populates the cache")
}

func TestHistory_ServedFromCache(t *testing.T) {
	store := newFakeOrderStore()
	cache := newFakeCache()
	cache.entries[7] = []models.Order{sampleOrder("ORD-CACHED", time.Now())}
	store.histErr = errors.New("db down")
	svc := NewOrderService(store, cache, discardLogger())

	orders, err := svc.History(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-CACHED", orders[0].OrderID)
}

func TestHistory_CacheErrorFallsBackToStore(t *testing.T) {
	store := newFakeOrderStore()
	cache := newFakeCache()
	cache.getErr = errors.New("redis unavailable")
	store.saved[7] = []models.Order{sampleOrder("ORD-1", time.Now())}
	svc := NewOrderService(store, cache, discardLogger())

	orders, err := svc.History(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestHistory_NilCache(t *testing.T) {
	store := newFakeOrderStore()
	store.saved[7] = []models.Order{sampleOrder("ORD-1", time.Now())}
	svc := NewOrderService(store, nil, discardLogger())

	orders, err := svc.History(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestPurgeExpired(t *testing.T) {
	store := newFakeOrderStore()
	store.saved[7] = []models.Order{
		sampleOrder("ORD-OLD", time.Now().Add(-8*24*time.Hour)),
		sampleOrder("ORD-NEW", time.Now().Add(-time.Hour)),
	}
	svc := NewOrderService(store, nil, discardLogger())

	purged, err := svc.PurgeExpired(context.Background(), 7*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
	require.Len(t, store.saved[7], 1)
	assert.Equal(t, "ORD-NEW", store.saved[7][0].OrderID)
}
