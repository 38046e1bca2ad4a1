package notification

import (
	"context"

	"github.com/fjod/go_storefront/internal/domain"
)

// Notifier dispatches the order confirmation after a committed checkout.
// Delivery is fire-and-forget from the checkout's point of view.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *domain.Order) error
}
