package repository

import (
	"context"
	"database/sql"
	"fmt"

	"posterworks/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

func (r *MySQLOrderItemRepository) InsertAll(ctx context.Context, orderID string, items []domain.OrderItem) error {
	query := `INSERT INTO order_items (order_id, name, unit_amount, quantity) VALUES (?, ?, ?, ?)`

	for _, item := range items {
		if _, err := r.db.ExecContext(ctx, query, orderID, item.Name, item.UnitAmount, item.Quantity); err != nil {
			return fmt.Errorf("inserting order item: %w", err)
		}
	}

	return nil
}

func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, name, unit_amount, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Name, &item.UnitAmount, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
