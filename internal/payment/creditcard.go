package payment

import (
	"context"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// riskLimit is a simulated acquirer risk threshold: anything above it is
// declined outright.
var riskLimit = decimal.NewFromFloat(1500.00)

type CreditCardGateway struct {
	limit decimal.Decimal
}

func NewCreditCardGateway() *CreditCardGateway {
	return &CreditCardGateway{limit: riskLimit}
}

func (g *CreditCardGateway) Authorize(_ context.Context, amount decimal.Decimal, payload Payload) (domain.PaymentOutcome, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.PaymentRejected, nil
	}
	if payload.CardNumber == "" {
		return domain.PaymentRejected, nil
	}
	if amount.GreaterThan(g.limit) {
		return domain.PaymentRejected, nil
	}
	return domain.PaymentApproved, nil
}
