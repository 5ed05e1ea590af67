package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

// SaveOrder durably records an order and all of its lines as one unit of
// work. Either the order row and every line row exist afterwards, or none
// do: any failure rolls the whole transaction back. The transaction is
// released on every exit path.
func (s *Store) SaveOrder(ctx context.Context, userID int64, order models.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin save order: %v", apperr.ErrStorageUnavailable, err)
	}
	// Rollback is a no-op once the transaction has been committed.
	defer tx.Rollback()

	insertOrder := `
		INSERT INTO orders (user_id, order_date, total_price, order_id_string)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var dbOrderID int64
	err = tx.QueryRowContext(ctx, insertOrder,
		userID,
		order.PlacedAt,
		order.Total,
		order.OrderID,
	).Scan(&dbOrderID)
	if err != nil {
		s.logger.Error("order insert failed, rolling back", "order_id", order.OrderID, "error", err)
		return fmt.Errorf("%w: insert order: %v", apperr.ErrStorageUnavailable, err)
	}

	insertLine := `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, price_per_item)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, line := range order.Lines {
		if _, err := tx.ExecContext(ctx, insertLine,
			dbOrderID,
			line.ProductID,
			line.ProductName,
			line.Quantity,
			line.UnitPrice,
		); err != nil {
			s.logger.Error("order line insert failed, rolling back",
				"order_id", order.OrderID,
				"product_id", line.ProductID,
				"error", err,
			)
			return fmt.Errorf("%w: insert order line: %v", apperr.ErrStorageUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit order: %v", apperr.ErrStorageUnavailable, err)
	}

	s.logger.Info("order saved",
		"order_id", order.OrderID,
		"user_id", userID,
		"total", order.Total.String(),
		"lines", len(order.Lines),
	)
	return nil
}

// OrderHistory loads a user's orders, most recent first. Lines carry the
// product-name snapshot captured at purchase time, so a later catalog rename
// cannot alter what an old order shows.
func (s *Store) OrderHistory(ctx context.Context, userID int64) ([]models.Order, error) {
	orderQuery := `
		SELECT id, order_id_string, order_date, total_price
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC
	`

	rows, err := s.db.QueryContext(ctx, orderQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: order history: %v", apperr.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	type orderRow struct {
		dbID  int64
		order models.Order
	}

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var r orderRow
		if err := rows.Scan(&r.dbID, &r.order.OrderID, &r.order.PlacedAt, &r.order.Total); err != nil {
			return nil, fmt.Errorf("%w: scan order: %v", apperr.ErrStorageUnavailable, err)
		}
		orderRows = append(orderRows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: order history: %v", apperr.ErrStorageUnavailable, err)
	}

	lineQuery := `
		SELECT product_id, product_name, quantity, price_per_item
		FROM order_items
		WHERE order_id = $1
	`

	orders := make([]models.Order, 0, len(orderRows))
	for _, r := range orderRows {
		lineRows, err := s.db.QueryContext(ctx, lineQuery, r.dbID)
		if err != nil {
			return nil, fmt.Errorf("%w: order lines: %v", apperr.ErrStorageUnavailable, err)
		}

		for lineRows.Next() {
			var l models.OrderLine
			if err := lineRows.Scan(&l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice); err != nil {
				lineRows.Close()
				return nil, fmt.Errorf("%w: scan order line: %v", apperr.ErrStorageUnavailable, err)
			}
			r.order.Lines = append(r.order.Lines, l)
		}
		if err := lineRows.Err(); err != nil {
			lineRows.Close()
			return nil, fmt.Errorf("%w: order lines: %v", apperr.ErrStorageUnavailable, err)
		}
		lineRows.Close()

		orders = append(orders, r.order)
	}

	return orders, nil
}

// PurgeOrdersOlderThan deletes orders past the retention window and returns
// how many were removed. Lines go with them via the cascading constraint.
// Best-effort maintenance: callers log failures rather than aborting startup.
func (s *Store) PurgeOrdersOlderThan(ctx context.Context, window time.Duration) (int64, error) {
	query := `DELETE FROM orders WHERE order_date < $1`

	res, err := s.db.ExecContext(ctx, query, time.Now().Add(-window))
	if err != nil {
		return 0, fmt.Errorf("%w: purge orders: %v", apperr.ErrStorageUnavailable, err)
	}

	deleted, _ := res.RowsAffected()
	if deleted > 0 {
		s.logger.Info("purged old orders", "deleted", deleted)
	}
	return deleted, nil
}
