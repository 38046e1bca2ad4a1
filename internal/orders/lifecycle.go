package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/google/uuid"
)

// CancellationWindow is how long after creation an order may still be
// cancelled.
const CancellationWindow = 24 * time.Hour

// OrderStore is the slice of the repository the lifecycle needs.
type OrderStore interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	GetOrderForUpdate(ctx context.Context, tx repository.Tx, orderID uuid.UUID) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, tx repository.Tx, orderID uuid.UUID, status domain.OrderStatus) error
}

// StockRestorer returns cancelled quantities to the shelf inside the
// cancellation's transaction.
type StockRestorer interface {
	RestoreStock(ctx context.Context, tx repository.Tx, productID int64, amount int) error
}

// Service manages post-creation order status transitions, including the
// cancellation policy and its stock restitution.
type Service struct {
	db     repository.TxBeginner
	orders OrderStore
	stocks StockRestorer
	now    func() time.Time
}

func NewService(db repository.TxBeginner, orders OrderStore, stocks StockRestorer) *Service {
	return &Service{
		db:     db,
		orders: orders,
		stocks: stocks,
		now:    time.Now,
	}
}

func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, orderID)
}

func (s *Service) ListOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orders.ListOrdersByCustomer(ctx, customerID)
}

// UpdateStatus moves an order along the status machine. The order row is
// locked for the duration of the transition, so two concurrent updates
// serialize and the loser fails the transition check.
//
// Restitution is tied to the edge into CANCELADO and nowhere else, which is
// what makes it fire exactly once: a second cancellation attempt fails the
// transition check before any stock is touched.
func (s *Service) UpdateStatus(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin status transition: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed for order %s status update: %v", orderID, rbErr)
		}
	}()

	order, err := s.orders.GetOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		return err
	}

	if !order.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, target)
	}

	if target == domain.OrderStatusCancelado {
		if s.now().Sub(order.CreatedAt) > CancellationWindow {
			return ErrCancellationNotAllowed
		}
		for _, item := range order.Items {
			if err := s.stocks.RestoreStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("restore stock for product %d: %w", item.ProductID, err)
			}
		}
	}

	if err := s.orders.UpdateOrderStatus(ctx, tx, orderID, target); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit status transition: %w", err)
	}
	committed = true
	return nil
}

// Cancel cancels the order and restores every item's quantity to stock.
func (s *Service) Cancel(ctx context.Context, orderID uuid.UUID) error {
	return s.UpdateStatus(ctx, orderID, domain.OrderStatusCancelado)
}
