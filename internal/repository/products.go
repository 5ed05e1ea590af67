package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

// ListProducts fetches the full catalog. Stock is not persisted; every
// product carries the informational default.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, price, image_path, category
		FROM products
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", apperr.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImagePath, &p.Category); err != nil {
			return nil, fmt.Errorf("%w: scan product: %v", apperr.ErrStorageUnavailable, err)
		}
		p.Stock = models.DefaultStock
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list products: %v", apperr.ErrStorageUnavailable, err)
	}

	return products, nil
}

// GetProduct fetches a single catalog entry by id.
func (s *Store) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	query := `
		SELECT id, name, price, image_path, category
		FROM products
		WHERE id = $1
	`

	var p models.Product
	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.ImagePath, &p.Category)
	if err == sql.ErrNoRows {
		return models.Product{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: get product %d: %v", apperr.ErrStorageUnavailable, id, err)
	}

	p.Stock = models.DefaultStock
	return p, nil
}

// InsertProduct stores a new catalog entry and returns it with the
// storage-assigned id. A single-statement write; no transaction needed.
func (s *Store) InsertProduct(ctx context.Context, p models.Product) (models.Product, error) {
	query := `
		INSERT INTO products (name, price, image_path, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, p.Name, p.Price, p.ImagePath, p.Category).Scan(&p.ID); err != nil {
		s.logger.Error("failed to insert product", "name", p.Name, "error", err)
		return models.Product{}, fmt.Errorf("%w: insert product: %v", apperr.ErrStorageUnavailable, err)
	}

	p.Stock = models.DefaultStock
	s.logger.Info("product added", "product_id", p.ID, "name", p.Name)
	return p, nil
}
