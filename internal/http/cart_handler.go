package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CartService is what the handlers need from internal/cart.
type CartService interface {
	GetCart(ctx context.Context, customerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID string, productID int64, quantity int) error
	UpdateQuantity(ctx context.Context, customerID string, productID int64, quantity int) error
	RemoveItem(ctx context.Context, customerID string, productID int64) error
}

type CartHandler struct {
	carts   CartService
	timeout time.Duration
}

func NewCartHandler(carts CartService, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartItemDTO struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type CartResponseDTO struct {
	CustomerID string        `json:"customer_id"`
	Items      []CartItemDTO `json:"items"`
	Total      string        `json:"total"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer authentication")
		return
	}

	c, err := h.carts.GetCart(ctx, customerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, convertCart(c))
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer authentication")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	if err := h.carts.AddItem(ctx, customerID, req.ProductID, req.Quantity); err != nil {
		handleServiceError(w, err)
		return
	}

	c, err := h.carts.GetCart(ctx, customerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, convertCart(c))
}

// PUT /api/v1/cart/items/{product_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer authentication")
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.carts.UpdateQuantity(ctx, customerID, productID, req.Quantity); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DELETE /api/v1/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer authentication")
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	if err := h.carts.RemoveItem(ctx, customerID, productID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func convertCart(c *domain.Cart) CartResponseDTO {
	items := make([]CartItemDTO, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
		})
	}
	return CartResponseDTO{
		CustomerID: c.CustomerID,
		Items:      items,
		Total:      c.Total().StringFixed(2),
	}
}

var _ CartService = (*cart.Service)(nil)
