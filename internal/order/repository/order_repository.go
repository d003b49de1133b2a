package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"posterworks/internal/domain"
	"posterworks/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `
	order_id, client_id, job_id, email,
	ship_name, ship_line1, ship_line2, ship_city, ship_state, ship_postal_code, ship_country,
	shipping_method, total_amount, amount_paid, status, shipping_status,
	payment_intent_id, fulfillment_order_id, error_message,
	created_at, updated_at, expires_at`

// statusGuard renders a status list as SQL IN placeholders plus args.
func statusGuard(statuses []domain.OrderStatus) (string, []interface{}) {
	placeholders := make([]string, len(statuses))
	args := make([]interface{}, len(statuses))
	for i, status := range statuses {
		placeholders[i] = "?"
		args[i] = status
	}
	return strings.Join(placeholders, ", "), args
}

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.OrderID, &o.ClientID, &o.JobID, &o.Email,
		&o.Address.Name, &o.Address.Line1, &o.Address.Line2, &o.Address.City,
		&o.Address.State, &o.Address.PostalCode, &o.Address.Country,
		&o.ShippingMethod, &o.TotalAmount, &o.AmountPaid, &o.Status, &o.ShippingStatus,
		&o.PaymentIntentID, &o.FulfillmentOrderID, &o.ErrorMessage,
		&o.CreatedAt, &o.UpdatedAt, &o.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (
			order_id, client_id, job_id, email,
			ship_name, ship_line1, ship_line2, ship_city, ship_state, ship_postal_code, ship_country,
			shipping_method, total_amount, amount_paid, status, shipping_status,
			payment_intent_id, fulfillment_order_id, error_message,
			created_at, updated_at, expires_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		order.OrderID, order.ClientID, order.JobID, order.Email,
		order.Address.Name, order.Address.Line1, order.Address.Line2, order.Address.City,
		order.Address.State, order.Address.PostalCode, order.Address.Country,
		order.ShippingMethod, order.TotalAmount, order.AmountPaid, order.Status, order.ShippingStatus,
		order.PaymentIntentID, order.FulfillmentOrderID, order.ErrorMessage,
		order.CreatedAt, order.UpdatedAt, order.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, orderID))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

// FindLatestByClientID returns the most recently updated order for the
// client whose status is in statuses. Unindexed scan by design; the polling
// endpoint tolerates it.
func (r *MySQLOrderRepository) FindLatestByClientID(ctx context.Context, clientID string, statuses []domain.OrderStatus) (*domain.Order, error) {
	if len(statuses) == 0 {
		return nil, errors.NewNotFoundError("no matching order for client")
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE client_id = ? AND status IN (`
	args := []interface{}{clientID}
	for i, status := range statuses {
		if i > 0 {
			query += ", "
		}
		query += "?"
		args = append(args, status)
	}
	query += `) ORDER BY updated_at DESC LIMIT 1`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("no matching order for client")
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by client id: %w", err)
	}

	return order, nil
}

// MarkPaid records a completed payment. The status guard keeps a replayed
// webhook from clobbering a later state.
func (r *MySQLOrderRepository) MarkPaid(ctx context.Context, orderID string, amountPaid int64, paymentIntentID string) error {
	placeholders, guardArgs := statusGuard(domain.TransitionSources(domain.OrderStatusPaid))
	query := fmt.Sprintf(`
		UPDATE orders
		SET status = ?, amount_paid = ?, payment_intent_id = ?, updated_at = ?
		WHERE order_id = ? AND status IN (%s)
	`, placeholders)

	args := append([]interface{}{
		domain.OrderStatusPaid, amountPaid, paymentIntentID, time.Now().UTC(), orderID,
	}, guardArgs...)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("marking order paid: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewConflictError(fmt.Sprintf("order %s is not pending", orderID))
	}

	return nil
}

// SetFulfillmentOrder moves the order to PROCESSING. The guard keeps a stale
// queue task from resurrecting an order that already left the paid/error
// states, EXPIRED included.
func (r *MySQLOrderRepository) SetFulfillmentOrder(ctx context.Context, orderID, fulfillmentOrderID string) error {
	placeholders, guardArgs := statusGuard(domain.TransitionSources(domain.OrderStatusProcessing))
	query := fmt.Sprintf(`
		UPDATE orders
		SET status = ?, fulfillment_order_id = ?, error_message = '', updated_at = ?
		WHERE order_id = ? AND status IN (%s)
	`, placeholders)

	args := append([]interface{}{
		domain.OrderStatusProcessing, fulfillmentOrderID, time.Now().UTC(), orderID,
	}, guardArgs...)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("setting fulfillment order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewConflictError(fmt.Sprintf("order %s cannot start fulfillment", orderID))
	}

	return nil
}

// SetFulfillmentError is the last durable signal of what happened to the
// order. ERROR is included in its own guard so a repeated failure updates
// the recorded message.
func (r *MySQLOrderRepository) SetFulfillmentError(ctx context.Context, orderID, message string) error {
	sources := append(domain.TransitionSources(domain.OrderStatusError), domain.OrderStatusError)
	placeholders, guardArgs := statusGuard(sources)
	query := fmt.Sprintf(`
		UPDATE orders
		SET status = ?, error_message = ?, updated_at = ?
		WHERE order_id = ? AND status IN (%s)
	`, placeholders)

	args := append([]interface{}{
		domain.OrderStatusError, message, time.Now().UTC(), orderID,
	}, guardArgs...)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("setting fulfillment error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewConflictError(fmt.Sprintf("order %s cannot record a fulfillment error", orderID))
	}

	return nil
}

func (r *MySQLOrderRepository) UpdateShippingStatus(ctx context.Context, orderID, shippingStatus string) error {
	query := `UPDATE orders SET shipping_status = ?, updated_at = ? WHERE order_id = ?`

	result, err := r.db.ExecContext(ctx, query, shippingStatus, time.Now().UTC(), orderID)
	if err != nil {
		return fmt.Errorf("updating shipping status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	return nil
}

// FindExpiredPending scans for abandoned checkouts: still PENDING with an
// expiry before now.
func (r *MySQLOrderRepository) FindExpiredPending(ctx context.Context, now time.Time) ([]string, error) {
	query := `SELECT order_id FROM orders WHERE status = ? AND expires_at < ?`

	rows, err := r.db.QueryContext(ctx, query, domain.OrderStatusPending, now)
	if err != nil {
		return nil, fmt.Errorf("scanning expired orders: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning expired order id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expired order rows: %w", err)
	}

	return ids, nil
}

// MarkExpired transitions one PENDING order to EXPIRED. The status condition
// makes the sweep safe against a payment webhook racing in between the scan
// and the update.
func (r *MySQLOrderRepository) MarkExpired(ctx context.Context, orderID string, now time.Time) (bool, error) {
	placeholders, guardArgs := statusGuard(domain.TransitionSources(domain.OrderStatusExpired))
	query := fmt.Sprintf(`
		UPDATE orders
		SET status = ?, updated_at = ?
		WHERE order_id = ? AND status IN (%s) AND expires_at < ?
	`, placeholders)

	args := append([]interface{}{domain.OrderStatusExpired, now, orderID}, guardArgs...)
	args = append(args, now)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("marking order expired: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
