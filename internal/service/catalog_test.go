package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

func seededCatalog() *fakeCatalog {
	return &fakeCatalog{
		nextID: 4,
		products: []models.Product{
			{ID: 1, Name: "Canvas Shoes", Price: decimal.NewFromInt(100), Category: "Footwear"},
			{ID: 2, Name: "Denim Jacket", Price: decimal.NewFromInt(450), Category: "Clothing"},
			{ID: 3, Name: "Running Shoes", Price: decimal.NewFromInt(300), Category: "Footwear"},
			{ID: 4, Name: "Ball Cap", Price: decimal.NewFromInt(50), Category: "Accessories"},
		},
	}
}

func TestProducts_NoFilterReturnsAll(t *testing.T) {
	svc := NewCatalogService(seededCatalog(), discardLogger())

	products, err := svc.Products(context.Background(), ProductFilter{})

	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestProducts_CategoryFilter(t *testing.T) {
	svc := NewCatalogService(seededCatalog(), discardLogger())

	products, err := svc.Products(context.Background(), ProductFilter{Category: "footwear"})

	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Footwear", p.Category)
	}
}

func TestProducts_CategoryAllMeansNoFilter(t *testing.T) {
	svc := NewCatalogService(seededCatalog(), discardLogger())

	products, err := svc.Products(context.Background(), ProductFilter{Category: "All"})

	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestProducts_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := NewCatalogService(seededCatalog(), discardLogger())

	products, err := svc.Products(context.Background(), ProductFilter{Search: "SHOES"})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Canvas Shoes", products[0].Name)
	assert.Equal(t, "Running Shoes", products[1].Name)
}

func TestProducts_SortModes(t *testing.T) {
	svc := NewCatalogService(seededCatalog(), discardLogger())

	cases := []struct {
		sort  string
		first string
		last  string
	}{
		{SortPriceAsc, "Ball Cap", "Denim Jacket"},
		{SortPriceDesc, "Denim Jacket", "Ball Cap"},
		{SortNameAsc, "Ball Cap", "Running Shoes"},
		{SortNameDesc, "Running Shoes", "Ball Cap"},
	}
	for _, tc := range cases {
		products, err := svc.Products(context.Background(), ProductFilter{Sort: tc.sort})
		require.NoError(t, err, tc.sort)
		require.Len(t, products, 4, tc.sort)
		assert.Equal(t, tc.first, products[0].Name, tc.sort)
		assert.Equal(t, tc.last, products[3].Name, tc.sort)
	}
}

func TestProducts_FilterAndSortCombine(t *testing.T) {
	svc := NewCatalogService(seededCatalog(), discardLogger())

	products, err := svc.Products(context.Background(), ProductFilter{Category: "Footwear", Sort: SortPriceDesc})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Running Shoes", products[0].Name)
	assert.Equal(t, "Canvas Shoes", products[1].Name)
}

func TestAddProduct_Valid(t *testing.T) {
	catalog := seededCatalog()
	svc := NewCatalogService(catalog, discardLogger())

	created, err := svc.AddProduct(context.Background(), models.Product{
		Name:     "  Wool Scarf  ",
		Price:    decimal.NewFromInt(120),
		Category: "Accessories",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, "Wool Scarf", created.Name, "name is trimmed before storage")
	assert.Equal(t, models.DefaultStock, created.Stock)
}

func TestAddProduct_RejectsEmptyName(t *testing.T) {
	svc := NewCatalogService(seededCatalog(), discardLogger())

	_, err := svc.AddProduct(context.Background(), models.Product{
		Name:  "   ",
		Price: decimal.NewFromInt(10),
	})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestAddProduct_RejectsNegativePrice(t *testing.T) {
	svc := NewCatalogService(seededCatalog(), discardLogger())

	_, err := svc.AddProduct(context.Background(), models.Product{
		Name:  "Wool Scarf",
		Price: decimal.NewFromInt(-1),
	})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}
