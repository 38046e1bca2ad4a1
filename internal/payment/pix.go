package payment

import (
	"context"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// PixGateway never settles synchronously: the charge is created and the
// outcome stays PENDING until the bank confirms out of band.
type PixGateway struct{}

func NewPixGateway() *PixGateway {
	return &PixGateway{}
}

func (g *PixGateway) Authorize(_ context.Context, _ decimal.Decimal, _ Payload) (domain.PaymentOutcome, error) {
	return domain.PaymentPending, nil
}
