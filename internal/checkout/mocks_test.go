package checkout

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/payment"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/shopspring/decimal"
)

// fakeStore models the products and orders tables with transactional
// semantics: decrements and inserts stay pending until Commit applies them,
// and Rollback discards them. That lets the tests assert committed state the
// same way the real database would expose it.
type fakeStore struct {
	products map[int64]*domain.Product

	pendingDecrements map[int64]int
	pendingOrder      *domain.Order

	committedOrders []*domain.Order

	insertErr error
	beginErr  error

	lastTx *fakeTx
}

func newFakeStore(products ...*domain.Product) *fakeStore {
	m := make(map[int64]*domain.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeStore{
		products:          m,
		pendingDecrements: make(map[int64]int),
	}
}

func (f *fakeStore) BeginTx(context.Context) (repository.TxHandle, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.lastTx = &fakeTx{store: f}
	return f.lastTx, nil
}

func (f *fakeStore) GetProductForUpdate(_ context.Context, _ repository.Tx, productID int64) (*domain.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	view := *p
	view.Stock = p.Stock - f.pendingDecrements[productID]
	return &view, nil
}

func (f *fakeStore) DecrementStock(_ context.Context, _ repository.Tx, productID int64, amount int) error {
	p, ok := f.products[productID]
	if !ok {
		return repository.ErrProductNotFound
	}
	available := p.Stock - f.pendingDecrements[productID]
	if amount > available {
		return &repository.InsufficientStockError{
			ProductID: productID,
			Available: available,
			Requested: amount,
		}
	}
	f.pendingDecrements[productID] += amount
	return nil
}

func (f *fakeStore) InsertOrder(_ context.Context, _ repository.Tx, order *domain.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.pendingOrder = order
	return nil
}

type fakeTx struct {
	store      *fakeStore
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit() error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	for id, amount := range t.store.pendingDecrements {
		t.store.products[id].Stock -= amount
	}
	if t.store.pendingOrder != nil {
		t.store.committedOrders = append(t.store.committedOrders, t.store.pendingOrder)
	}
	t.store.pendingDecrements = make(map[int64]int)
	t.store.pendingOrder = nil
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	t.store.pendingDecrements = make(map[int64]int)
	t.store.pendingOrder = nil
	return nil
}

func (t *fakeTx) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errors.New("fake tx does not execute SQL")
}

func (t *fakeTx) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errors.New("fake tx does not execute SQL")
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

// mockCarts serves a fixed cart and records clearing.
type mockCarts struct {
	cart     *domain.Cart
	getErr   error
	clearErr error
	cleared  bool
}

func (m *mockCarts) GetCart(context.Context, string) (*domain.Cart, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.cart, nil
}

func (m *mockCarts) Clear(context.Context, string) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

type mockAddresses struct {
	address *domain.Address
	err     error
}

func (m *mockAddresses) GetAddress(context.Context, int64) (*domain.Address, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.address, nil
}

type mockNotifier struct {
	sent []*domain.Order
	err  error
}

func (m *mockNotifier) SendOrderConfirmation(_ context.Context, order *domain.Order) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, order)
	return nil
}

// mockGateway returns a canned outcome, or fails at the transport level.
type mockGateway struct {
	outcome      domain.PaymentOutcome
	transportErr error
	gotAmount    decimal.Decimal
}

func (m *mockGateway) Authorize(_ context.Context, amount decimal.Decimal, _ payment.Payload) (domain.PaymentOutcome, error) {
	m.gotAmount = amount
	if m.transportErr != nil {
		return "", m.transportErr
	}
	return m.outcome, nil
}

type mockGateways struct {
	gateway payment.Gateway
	err     error
}

func (m *mockGateways) Gateway(domain.PaymentType) (payment.Gateway, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.gateway, nil
}
