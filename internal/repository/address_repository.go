package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fjod/go_storefront/internal/domain"
)

// GetAddress resolves the delivery address an order will reference.
func (r *Repository) GetAddress(ctx context.Context, addressID int64) (*domain.Address, error) {
	var a domain.Address
	err := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, street, city, destination_code
		 FROM addresses WHERE id = $1`, addressID).
		Scan(&a.ID, &a.CustomerID, &a.Street, &a.City, &a.DestinationCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan address row: %w", err)
	}
	return &a, nil
}
