package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pendente to processando", OrderStatusPendente, OrderStatusProcessando, true},
		{"pendente to cancelado", OrderStatusPendente, OrderStatusCancelado, true},
		{"pendente to entregue", OrderStatusPendente, OrderStatusEntregue, false},
		{"processando to enviado", OrderStatusProcessando, OrderStatusEnviado, true},
		{"processando to cancelado", OrderStatusProcessando, OrderStatusCancelado, true},
		{"processando to entregue", OrderStatusProcessando, OrderStatusEntregue, false},
		{"enviado to entregue", OrderStatusEnviado, OrderStatusEntregue, true},
		{"enviado to cancelado", OrderStatusEnviado, OrderStatusCancelado, false},
		{"entregue is final", OrderStatusEntregue, OrderStatusProcessando, false},
		{"cancelado is final", OrderStatusCancelado, OrderStatusPendente, false},
		{"cancelado to cancelado", OrderStatusCancelado, OrderStatusCancelado, false},
		{"pagamento pendente to processando", OrderStatusPagamentoPendente, OrderStatusProcessando, true},
		{"pagamento pendente to cancelado", OrderStatusPagamentoPendente, OrderStatusCancelado, false},
		{"unknown status", OrderStatus("BOGUS"), OrderStatusProcessando, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusEntregue.IsTerminal())
	assert.True(t, OrderStatusCancelado.IsTerminal())
	assert.False(t, OrderStatusPendente.IsTerminal())
	assert.False(t, OrderStatusProcessando.IsTerminal())
	assert.False(t, OrderStatusEnviado.IsTerminal())
	assert.False(t, OrderStatusPagamentoPendente.IsTerminal())
}

func TestCartTotal(t *testing.T) {
	cart := &Cart{
		CustomerID: "42",
		Items: []CartItem{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(199.90)},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromFloat(49.50)},
		},
	}

	assert.True(t, cart.Total().Equal(decimal.NewFromFloat(449.30)),
		"expected 449.30, got %s", cart.Total())
}

func TestCartTotal_Empty(t *testing.T) {
	cart := &Cart{CustomerID: "42"}
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}
