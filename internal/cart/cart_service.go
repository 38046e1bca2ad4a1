package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fjod/go_storefront/internal/cache"
	"github.com/fjod/go_storefront/internal/cartstore"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/repository"
	"golang.org/x/sync/singleflight"
)

// ProductGetter is the catalog read the cart needs to validate an add.
type ProductGetter interface {
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
}

type Service struct {
	repo     cartstore.CartRepository
	cache    cache.CartCache
	products ProductGetter
	sfg      singleflight.Group // Prevents cache stampede
}

func NewService(repo cartstore.CartRepository, cache cache.CartCache, products ProductGetter) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		products: products,
	}
}

// GetCart returns the customer's cart, creating an empty one lazily when the
// customer has never added anything.
func (s *Service) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(customerID, func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, customerID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		cart, errGet := s.repo.GetCart(ctx, customerID)
		if errGet != nil && errors.Is(errGet, cartstore.ErrCartNotFound) {
			return &domain.Cart{
				CustomerID: customerID,
				Items:      nil,
				CreatedAt:  time.Now(),
				UpdatedAt:  time.Now(),
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), customerID, cart)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return cart, nil // cart was not in cache, return it from repo
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

// AddItem validates the product and merges the line into the cart. Stock is
// not enforced here; only checkout reserves stock.
func (s *Service) AddItem(ctx context.Context, customerID string, productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	p, err := s.products.GetProduct(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrProductUnavailable
	}
	if err != nil {
		return err
	}
	if !p.Active {
		return ErrProductUnavailable
	}

	errAdd := s.repo.AddItem(ctx, customerID, domain.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: p.Price,
	})
	if errAdd != nil {
		log.Printf("repo add item error: %v \n", errAdd)
		return errAdd
	}

	s.invalidateCache(customerID)
	return nil
}

func (s *Service) UpdateQuantity(ctx context.Context, customerID string, productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	errUpdate := s.repo.UpdateItemQuantity(ctx, customerID, productID, quantity)
	if errUpdate != nil {
		log.Printf("repo update item quantity error: %v \n", errUpdate)
		return errUpdate
	}

	s.invalidateCache(customerID)
	return nil
}

func (s *Service) RemoveItem(ctx context.Context, customerID string, productID int64) error {
	errRemove := s.repo.RemoveItem(ctx, customerID, productID)
	if errRemove != nil {
		log.Printf("repo remove item error: %v \n", errRemove)
		return errRemove
	}

	s.invalidateCache(customerID)
	return nil
}

// Clear empties the cart after a committed checkout. A cart that was never
// persisted is already empty, so ErrCartNotFound is not a failure.
func (s *Service) Clear(ctx context.Context, customerID string) error {
	errClear := s.repo.ClearCart(ctx, customerID)
	if errClear != nil && !errors.Is(errClear, cartstore.ErrCartNotFound) {
		log.Printf("repo clear cart error: %v \n", errClear)
		return errClear
	}

	s.invalidateCache(customerID)
	return nil
}

func (s *Service) invalidateCache(customerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	errInvalidate := s.cache.Delete(ctx, customerID)
	if errInvalidate != nil {
		log.Printf("cache invalidate error: %v \n", errInvalidate)
	}
}
