package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus values are persisted verbatim, so they keep the storefront's
// canonical (Portuguese) names.
type OrderStatus string

const (
	OrderStatusPendente          OrderStatus = "PENDENTE"
	OrderStatusProcessando       OrderStatus = "PROCESSANDO"
	OrderStatusEnviado           OrderStatus = "ENVIADO"
	OrderStatusEntregue          OrderStatus = "ENTREGUE"
	OrderStatusCancelado         OrderStatus = "CANCELADO"
	OrderStatusPagamentoPendente OrderStatus = "PAGAMENTO_PENDENTE"
)

// transitions is the closed set of allowed status edges.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendente:          {OrderStatusProcessando, OrderStatusCancelado},
	OrderStatusProcessando:       {OrderStatusEnviado, OrderStatusCancelado},
	OrderStatusEnviado:           {OrderStatusEntregue},
	OrderStatusEntregue:          {},
	OrderStatusCancelado:         {},
	OrderStatusPagamentoPendente: {OrderStatusProcessando},
}

// CanTransitionTo reports whether the status machine allows moving from s to
// target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem snapshots product id, name and unit price at the moment of
// purchase. Later catalog price changes never touch it.
type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Order is created only by a committed checkout transaction; either the
// order and all its items exist, or none do.
type Order struct {
	ID          uuid.UUID
	CustomerID  string
	AddressID   int64
	Subtotal    decimal.Decimal
	Freight     decimal.Decimal
	Total       decimal.Decimal
	PaymentType PaymentType
	Status      OrderStatus
	Notes       string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
