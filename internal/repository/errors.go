package repository

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrAddressNotFound = errors.New("address not found")
)

// InsufficientStockError carries what was available versus what the cart
// line asked for. Stock is never clamped; the whole checkout rolls back.
type InsufficientStockError struct {
	ProductID int64
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: available=%d requested=%d",
		e.ProductID, e.Available, e.Requested)
}
