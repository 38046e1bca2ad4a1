package payment

import (
	"context"
	"fmt"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Payload carries the instrument details a gateway variant needs. Unused
// fields stay empty; gateways only read what their method requires.
type Payload struct {
	CardNumber string `json:"card_number,omitempty"`
	CardHolder string `json:"card_holder,omitempty"`
	PixKey     string `json:"pix_key,omitempty"`
}

// Gateway authorizes a payment. A declined payment is a PaymentRejected
// outcome, never an error; the error return is reserved for transport-level
// failure (network, timeout), which the checkout treats as fatal.
type Gateway interface {
	Authorize(ctx context.Context, amount decimal.Decimal, payload Payload) (domain.PaymentOutcome, error)
}

// Registry holds the closed set of gateway variants, selected by payment
// type at wiring time rather than by runtime type inspection.
type Registry struct {
	gateways map[domain.PaymentType]Gateway
}

func NewRegistry() *Registry {
	return &Registry{
		gateways: map[domain.PaymentType]Gateway{
			domain.PaymentTypeCreditCard: NewCreditCardGateway(),
			domain.PaymentTypePix:        NewPixGateway(),
		},
	}
}

func (r *Registry) Gateway(t domain.PaymentType) (Gateway, error) {
	gw, ok := r.gateways[t]
	if !ok {
		return nil, fmt.Errorf("no gateway registered for payment type %q", t)
	}
	return gw, nil
}
