package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/google/uuid"
)

const orderColumns = `id, customer_id, address_id, subtotal, freight, total,
	status, payment_type, notes, created_at, updated_at`

// InsertOrder writes the order and all its items inside tx. The rows only
// become visible when the caller commits.
func (r *Repository) InsertOrder(ctx context.Context, tx Tx, order *domain.Order) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO orders (`+orderColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		order.ID,
		order.CustomerID,
		order.AddressID,
		order.Subtotal,
		order.Freight,
		order.Total,
		order.Status,
		order.PaymentType,
		order.Notes,
		order.CreatedAt,
		order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, subtotal)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetOrder loads an order with its items, outside any transaction.
func (r *Repository) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	order.Items, err = r.loadItems(ctx, r.db, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrderForUpdate loads an order with its items inside tx and locks the
// order row, serializing concurrent status transitions.
func (r *Repository) GetOrderForUpdate(ctx context.Context, tx Tx, orderID uuid.UUID) (*domain.Order, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	order.Items, err = r.loadItems(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrdersByCustomer returns the customer's orders newest first, items
// included.
func (r *Repository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("query orders by customer: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrderRows(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	for _, order := range orders {
		order.Items, err = r.loadItems(ctx, r.db, order.ID)
		if err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// UpdateOrderStatus writes the new status inside tx. The transition itself
// is validated by the lifecycle service before this is called.
func (r *Repository) UpdateOrderStatus(ctx context.Context, tx Tx, orderID uuid.UUID, status domain.OrderStatus) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`,
		orderID, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order status rows affected: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *Repository) loadItems(ctx context.Context, q Tx, orderID uuid.UUID) ([]domain.OrderItem, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT product_id, product_name, quantity, unit_price, subtotal
		 FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity,
			&item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return items, nil
}

func scanOrder(row *sql.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.AddressID,
		&order.Subtotal,
		&order.Freight,
		&order.Total,
		&order.Status,
		&order.PaymentType,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan order row: %w", err)
	}
	return &order, nil
}

func scanOrderRows(rows *sql.Rows) (*domain.Order, error) {
	var order domain.Order
	err := rows.Scan(
		&order.ID,
		&order.CustomerID,
		&order.AddressID,
		&order.Subtotal,
		&order.Freight,
		&order.Total,
		&order.Status,
		&order.PaymentType,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan order row: %w", err)
	}
	return &order, nil
}
