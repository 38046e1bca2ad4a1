package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/payment"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/fjod/go_storefront/internal/shipping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Carts is the slice of the cart service the checkout needs.
type Carts interface {
	GetCart(ctx context.Context, customerID string) (*domain.Cart, error)
	Clear(ctx context.Context, customerID string) error
}

// StockLedger reads and decrements product rows inside the checkout's
// transaction.
type StockLedger interface {
	GetProductForUpdate(ctx context.Context, tx repository.Tx, productID int64) (*domain.Product, error)
	DecrementStock(ctx context.Context, tx repository.Tx, productID int64, amount int) error
}

// OrderStore persists the order and its items inside the same transaction.
type OrderStore interface {
	InsertOrder(ctx context.Context, tx repository.Tx, order *domain.Order) error
}

// AddressDirectory resolves the delivery address attached to the order.
type AddressDirectory interface {
	GetAddress(ctx context.Context, addressID int64) (*domain.Address, error)
}

// Notifier dispatches the post-commit confirmation. Failures are logged,
// never propagated: the order is already durable.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *domain.Order) error
}

// Gateways selects the payment variant for a checkout request.
type Gateways interface {
	Gateway(t domain.PaymentType) (payment.Gateway, error)
}

type Service struct {
	db       repository.TxBeginner
	carts    Carts
	stocks   StockLedger
	orders   OrderStore
	address  AddressDirectory
	payments Gateways
	shipping shipping.Strategy
	notifier Notifier
}

func NewService(
	db repository.TxBeginner,
	carts Carts,
	stocks StockLedger,
	orders OrderStore,
	address AddressDirectory,
	payments Gateways,
	ship shipping.Strategy,
	notifier Notifier,
) *Service {
	return &Service{
		db:       db,
		carts:    carts,
		stocks:   stocks,
		orders:   orders,
		address:  address,
		payments: payments,
		shipping: ship,
		notifier: notifier,
	}
}

// Request is the single canonical checkout input shape.
type Request struct {
	CustomerID  string
	AddressID   int64
	PaymentType domain.PaymentType
	Payment     payment.Payload
	Notes       string
}

// Checkout runs the whole pipeline in one database transaction: lock and
// decrement stock for every cart line, authorize the payment, persist the
// order with its items, commit. Any failure rolls everything back together,
// so a half-decremented cart or an order without stock movement is never
// observable. Cart clearing and the confirmation event happen only after the
// commit and are deliberately outside the atomic unit.
func (s *Service) Checkout(ctx context.Context, req *Request) (*domain.Order, error) {
	cart, err := s.carts.GetCart(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	gateway, err := s.payments.Gateway(req.PaymentType)
	if err != nil {
		return nil, err
	}

	addr, err := s.address.GetAddress(ctx, req.AddressID)
	if err != nil {
		return nil, fmt.Errorf("resolve address: %w", err)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}

	order, err := s.checkoutInTx(ctx, tx, cart, addr, gateway, req)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed after checkout error: %v", rbErr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}

	// Post-commit actions must not undo the committed order.
	if err := s.carts.Clear(ctx, req.CustomerID); err != nil {
		log.Printf("failed to clear cart for customer %s after checkout: %v", req.CustomerID, err)
	}
	if err := s.notifier.SendOrderConfirmation(ctx, order); err != nil {
		log.Printf("failed to send confirmation for order %s: %v", order.ID, err)
	}

	return order, nil
}

// checkoutInTx performs every step that belongs to the atomic unit. The
// caller owns commit and rollback.
func (s *Service) checkoutInTx(
	ctx context.Context,
	tx repository.Tx,
	cart *domain.Cart,
	addr *domain.Address,
	gateway payment.Gateway,
	req *Request,
) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(cart.Items))
	subtotal := decimal.Zero

	// Cart lines are processed in insertion order; the first shortage
	// aborts the loop and the whole transaction.
	for _, line := range cart.Items {
		p, err := s.stocks.GetProductForUpdate(ctx, tx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if err := s.stocks.DecrementStock(ctx, tx, line.ProductID, line.Quantity); err != nil {
			return nil, err
		}

		lineSubtotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
			Subtotal:    lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	freight, err := s.shipping.Calculate(addr.DestinationCode, shipping.TotalWeight(cart.Items))
	if err != nil {
		return nil, fmt.Errorf("calculate freight: %w", err)
	}
	total := subtotal.Add(freight)

	outcome, err := gateway.Authorize(ctx, total, req.Payment)
	if err != nil {
		// Transport-level failure: fatal, retryable by resubmission.
		return nil, fmt.Errorf("payment gateway: %w", err)
	}
	if outcome == domain.PaymentRejected {
		return nil, ErrPaymentRejected
	}

	status := domain.OrderStatusProcessando
	if outcome == domain.PaymentPending {
		status = domain.OrderStatusPagamentoPendente
	}

	// The same instant is persisted and published, so the 24h cancellation
	// window and the confirmation event agree on when the order was born.
	now := time.Now()
	order := &domain.Order{
		ID:          uuid.New(),
		CustomerID:  req.CustomerID,
		AddressID:   addr.ID,
		Subtotal:    subtotal,
		Freight:     freight,
		Total:       total,
		PaymentType: req.PaymentType,
		Status:      status,
		Notes:       req.Notes,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.orders.InsertOrder(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}

	return order, nil
}
