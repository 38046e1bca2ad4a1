package cartstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cartDoc is the persisted shape of a cart. Unit prices travel as strings
// because BSON has no encoding for decimal.Decimal.
type cartDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID string             `bson:"customer_id"`
	Items      []cartItemDoc      `bson:"items"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type cartItemDoc struct {
	ProductID int64     `bson:"product_id"`
	Quantity  int       `bson:"quantity"`
	UnitPrice string    `bson:"unit_price"`
	AddedAt   time.Time `bson:"added_at"`
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) CartRepository {
	return &mongoRepository{
		collection: db.Collection("carts"),
	}
}

func (m *mongoRepository) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	var doc cartDoc

	filter := bson.M{"customer_id": customerID}
	err := m.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return docToCart(&doc)
}

// AddItem merges into an existing line (quantities summed, unit price
// refreshed) or appends a new one. The cart document is created on first
// add.
func (m *mongoRepository) AddItem(ctx context.Context, customerID string, item domain.CartItem) error {
	now := time.Now()
	filter := bson.M{"customer_id": customerID}

	var existing cartDoc
	err := m.collection.FindOne(ctx, filter).Decode(&existing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			doc := cartDoc{
				CustomerID: customerID,
				Items:      []cartItemDoc{itemToDoc(item, now)},
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if _, err := m.collection.InsertOne(ctx, doc); err != nil {
				return fmt.Errorf("failed to create cart with item: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to check existing cart: %w", err)
	}

	itemExists := false
	for _, existingItem := range existing.Items {
		if existingItem.ProductID == item.ProductID {
			itemExists = true
			break
		}
	}

	if itemExists {
		update := bson.M{
			"$inc": bson.M{"items.$[elem].quantity": item.Quantity},
			"$set": bson.M{
				"items.$[elem].unit_price": item.UnitPrice.String(),
				"items.$[elem].added_at":   now,
				"updated_at":               now,
			},
		}
		arrayFilters := options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"elem.product_id": item.ProductID},
			},
		})

		if _, err := m.collection.UpdateOne(ctx, filter, update, arrayFilters); err != nil {
			return fmt.Errorf("failed to merge existing item: %w", err)
		}
		return nil
	}

	update := bson.M{
		"$push": bson.M{"items": itemToDoc(item, now)},
		"$set":  bson.M{"updated_at": now},
	}
	if _, err := m.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to add new item: %w", err)
	}
	return nil
}

func (m *mongoRepository) UpdateItemQuantity(ctx context.Context, customerID string, productID int64, quantity int) error {
	filter := bson.M{
		"customer_id":      customerID,
		"items.product_id": productID,
	}
	update := bson.M{
		"$set": bson.M{
			"items.$[elem].quantity": quantity,
			"updated_at":             time.Now(),
		},
	}
	arrayFilters := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"elem.product_id": productID},
		},
	})

	result, err := m.collection.UpdateOne(ctx, filter, update, arrayFilters)
	if err != nil {
		return fmt.Errorf("failed to update item quantity: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (m *mongoRepository) RemoveItem(ctx context.Context, customerID string, productID int64) error {
	filter := bson.M{"customer_id": customerID}
	update := bson.M{
		"$pull": bson.M{
			"items": bson.M{"product_id": productID},
		},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}

// ClearCart empties the items array. The cart document itself stays, so the
// customer keeps the same cart across checkouts.
func (m *mongoRepository) ClearCart(ctx context.Context, customerID string) error {
	filter := bson.M{"customer_id": customerID}
	update := bson.M{
		"$set": bson.M{
			"items":      []cartItemDoc{},
			"updated_at": time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func itemToDoc(item domain.CartItem, now time.Time) cartItemDoc {
	return cartItemDoc{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice.String(),
		AddedAt:   now,
	}
}

func docToCart(doc *cartDoc) (*domain.Cart, error) {
	cart := &domain.Cart{
		ID:         doc.ID.Hex(),
		CustomerID: doc.CustomerID,
		Items:      make([]domain.CartItem, 0, len(doc.Items)),
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
	for _, item := range doc.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("parse unit price %q: %w", item.UnitPrice, err)
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
			AddedAt:   item.AddedAt,
		})
	}
	return cart, nil
}
