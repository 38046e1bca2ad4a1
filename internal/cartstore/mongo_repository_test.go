package cartstore

import (
	"context"
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

func setupTestDB(t *testing.T) (CartRepository, func()) {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := ConnectMongoDB(ctx, uri, "testdb")
	require.NoError(t, err)

	repo := NewMongoRepository(db)

	mongoRepo := repo.(*mongoRepository)
	err = mongoRepo.CreateIndexes(ctx)
	require.NoError(t, err)

	cleanup := func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func newItem(productID int64, quantity int, price float64) domain.CartItem {
	return domain.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: decimal.NewFromFloat(price),
	}
}

func TestGetCart_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	cart, err := repo.GetCart(ctx, "nonexistent")

	assert.ErrorIs(t, err, ErrCartNotFound)
	assert.Nil(t, cart)
}

func TestAddItem_NewCart(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "customer123"

	err := repo.AddItem(ctx, customerID, newItem(1, 3, 199.90))
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, cart.CustomerID)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].UnitPrice.Equal(decimal.NewFromFloat(199.90)))
}

func TestAddItem_ExistingItem_MergesQuantities(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "customer123"

	require.NoError(t, repo.AddItem(ctx, customerID, newItem(1, 2, 199.90)))

	// Re-adding the same product sums quantities and refreshes the price
	require.NoError(t, repo.AddItem(ctx, customerID, newItem(1, 3, 189.90)))

	cart, err := repo.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1, "same product must not duplicate the line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].UnitPrice.Equal(decimal.NewFromFloat(189.90)))
}

func TestAddItem_DifferentProducts(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "customer123"

	require.NoError(t, repo.AddItem(ctx, customerID, newItem(1, 2, 199.90)))
	require.NoError(t, repo.AddItem(ctx, customerID, newItem(2, 1, 49.50)))

	cart, err := repo.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestUpdateItemQuantity(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "customer123"

	require.NoError(t, repo.AddItem(ctx, customerID, newItem(1, 2, 199.90)))

	require.NoError(t, repo.UpdateItemQuantity(ctx, customerID, 1, 10))

	cart, err := repo.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 10, cart.Items[0].Quantity)
}

func TestUpdateItemQuantity_ItemNotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "customer123"

	require.NoError(t, repo.AddItem(ctx, customerID, newItem(1, 2, 199.90)))

	err := repo.UpdateItemQuantity(ctx, customerID, 99, 10)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "customer123"

	require.NoError(t, repo.AddItem(ctx, customerID, newItem(1, 2, 199.90)))
	require.NoError(t, repo.AddItem(ctx, customerID, newItem(2, 1, 49.50)))

	require.NoError(t, repo.RemoveItem(ctx, customerID, 1))

	cart, err := repo.GetCart(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ProductID)
}

func TestClearCart_KeepsDocument(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "customer123"

	require.NoError(t, repo.AddItem(ctx, customerID, newItem(1, 2, 199.90)))

	require.NoError(t, repo.ClearCart(ctx, customerID))

	cart, err := repo.GetCart(ctx, customerID)
	require.NoError(t, err, "cleared cart document must survive")
	assert.Empty(t, cart.Items)
	assert.Equal(t, customerID, cart.CustomerID)
}

func TestClearCart_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.ClearCart(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCartNotFound)
}
