package cartstore

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

// CartRepository defines the interface for cart data operations.
// Consumers define this interface, not the MongoDB implementation.
type CartRepository interface {
	GetCart(ctx context.Context, customerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID string, item domain.CartItem) error
	UpdateItemQuantity(ctx context.Context, customerID string, productID int64, quantity int) error
	RemoveItem(ctx context.Context, customerID string, productID int64) error
	ClearCart(ctx context.Context, customerID string) error
}

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)
