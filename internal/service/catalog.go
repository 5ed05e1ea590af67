package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

// Sort modes accepted by ProductFilter.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
)

// CatalogStore is the persistence surface the catalog needs.
type CatalogStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	InsertProduct(ctx context.Context, p models.Product) (models.Product, error)
}

// ProductFilter narrows and orders a catalog listing. Zero values mean no
// filtering and insertion order.
type ProductFilter struct {
	Category string
	Search   string
	Sort     string
}

// CatalogService lists and administers the product catalog.
type CatalogService struct {
	store  CatalogStore
	logger *slog.Logger
}

func NewCatalogService(store CatalogStore, logger *slog.Logger) *CatalogService {
	return &CatalogService{store: store, logger: logger}
}

// Products returns the catalog narrowed by the filter. Category matching is
// case-insensitive with "All" treated the same as no category; search is a
// case-insensitive substring match on the product name.
func (s *CatalogService) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(filter.Category)
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(category, "All") && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch filter.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) > strings.ToLower(filtered[j].Name)
		})
	}
	return filtered, nil
}

// AddProduct validates and stores a new catalog entry.
func (s *CatalogService) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return models.Product{}, apperr.NewValidationError("name", "product name is required")
	}
	if p.Price.IsNegative() {
		return models.Product{}, apperr.NewValidationError("price", "price must not be negative")
	}

	created, err := s.store.InsertProduct(ctx, p)
	if err != nil {
		return models.Product{}, err
	}
	s.logger.Info("product added", "product_id", created.ID, "name", created.Name)
	return created, nil
}
