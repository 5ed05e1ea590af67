package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeOrderStore records saves in memory and can be told to fail.
type fakeOrderStore struct {
	saved   map[int64][]models.Order
	saveErr error
	histErr error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{saved: make(map[int64][]models.Order)}
}

func (f *fakeOrderStore) SaveOrder(_ context.Context, userID int64, order models.Order) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[userID] = append([]models.Order{order}, f.saved[userID]...)
	return nil
}

func (f *fakeOrderStore) OrderHistory(_ context.Context, userID int64) ([]models.Order, error) {
	if f.histErr != nil {
		return nil, f.histErr
	}
	return f.saved[userID], nil
}

func (f *fakeOrderStore) PurgeOrdersOlderThan(_ context.Context, window time.Duration) (int64, error) {
	cutoff := time.Now().Add(-window)
	var purged int64
	for userID, orders := range f.saved {
		kept := orders[:0]
		for _, o := range orders {
			if o.PlacedAt.Before(cutoff) {
				purged++
				continue
			}
			kept = append(kept, o)
		}
		f.saved[userID] = kept
	}
	return purged, nil
}

// fakeProvider is a payment provider with a scripted outcome.
type fakeProvider struct {
	err     error
	charged []decimal.Decimal
}

func (f *fakeProvider) Authorize(_ context.Context, _ string, amount decimal.Decimal) error {
	if f.err != nil {
		return f.err
	}
	f.charged = append(f.charged, amount)
	return nil
}

// fakeCache is an in-memory HistoryCache tracking invalidations.
type fakeCache struct {
	entries     map[int64][]models.Order
	invalidated []int64
	getErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[int64][]models.Order)}
}

func (f *fakeCache) Get(_ context.Context, userID int64) ([]models.Order, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries[userID], nil
}

func (f *fakeCache) Set(_ context.Context, userID int64, orders []models.Order) error {
	f.entries[userID] = orders
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, userID int64) error {
	f.invalidated = append(f.invalidated, userID)
	delete(f.entries, userID)
	return nil
}

// fakePublisher records published order events.
type fakePublisher struct {
	published []models.Order
	err       error
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, _ int64, order models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, order)
	return nil
}

// fakeCatalog serves a fixed product list.
type fakeCatalog struct {
	products  []models.Product
	nextID    int64
	listErr   error
	insertErr error
}

func (f *fakeCatalog) ListProducts(_ context.Context) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Product(nil), f.products...), nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, id int64) (models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, apperr.ErrNotFound
}

func (f *fakeCatalog) InsertProduct(_ context.Context, p models.Product) (models.Product, error) {
	if f.insertErr != nil {
		return models.Product{}, f.insertErr
	}
	f.nextID++
	p.ID = f.nextID
	p.Stock = models.DefaultStock
	f.products = append(f.products, p)
	return p, nil
}

// fakeUserStore keeps accounts in a map keyed by exact username.
type fakeUserStore struct {
	users  map[string]models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, username, salt, hash string) (models.User, error) {
	if _, exists := f.users[username]; exists {
		return models.User{}, apperr.ErrDuplicateUsername
	}
	f.nextID++
	user := models.User{ID: f.nextID, Username: username, Salt: salt, PasswordHash: hash}
	f.users[username] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return models.User{}, apperr.ErrNotFound
	}
	return user, nil
}
