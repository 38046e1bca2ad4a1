package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fjod/go_storefront/internal/domain"
)

// GetProduct reads a product outside any transaction, for cart validation
// and catalog lookups.
func (r *Repository) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx,
		`SELECT id, name, price, stock, active, COALESCE(category_id, 0)
		 FROM products WHERE id = $1`, productID))
}

// GetProductForUpdate reads a product inside tx and takes a row lock, so no
// other writer can commit a conflicting decrement before tx commits.
func (r *Repository) GetProductForUpdate(ctx context.Context, tx Tx, productID int64) (*domain.Product, error) {
	return scanProduct(tx.QueryRowContext(ctx,
		`SELECT id, name, price, stock, active, COALESCE(category_id, 0)
		 FROM products WHERE id = $1 FOR UPDATE`, productID))
}

func scanProduct(row *sql.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Active, &p.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan product row: %w", err)
	}
	return &p, nil
}

// DecrementStock subtracts amount from the product's stock inside tx. The
// guard in the WHERE clause keeps stock >= 0 even if the caller skipped the
// locking read.
func (r *Repository) DecrementStock(ctx context.Context, tx Tx, productID int64, amount int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		productID, amount)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement stock rows affected: %w", err)
	}
	if affected == 1 {
		return nil
	}

	// Nothing was updated: either the product is gone or stock was short.
	p, err := r.GetProductForUpdate(ctx, tx, productID)
	if err != nil {
		return err
	}
	return &InsufficientStockError{
		ProductID: productID,
		Available: p.Stock,
		Requested: amount,
	}
}

// RestoreStock is the inverse of DecrementStock, used only on the
// cancellation edge of the order status machine.
func (r *Repository) RestoreStock(ctx context.Context, tx Tx, productID int64, amount int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE products SET stock = stock + $2 WHERE id = $1`,
		productID, amount)
	if err != nil {
		return fmt.Errorf("restore stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("restore stock rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
