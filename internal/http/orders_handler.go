package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/orders"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OrderService is the lifecycle surface the handlers expose.
type OrderService interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus) error
	Cancel(ctx context.Context, orderID uuid.UUID) error
}

type OrdersHandler struct {
	orders  OrderService
	timeout time.Duration
}

func NewOrdersHandler(orders OrderService, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:  orders,
		timeout: timeout,
	}
}

type OrderItemDTO struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

type OrderResponseDTO struct {
	ID          string         `json:"id"`
	CustomerID  string         `json:"customer_id"`
	AddressID   int64          `json:"address_id"`
	Subtotal    string         `json:"subtotal"`
	Freight     string         `json:"freight"`
	Total       string         `json:"total"`
	Status      string         `json:"status"`
	PaymentType string         `json:"payment_type"`
	Notes       string         `json:"notes,omitempty"`
	Items       []OrderItemDTO `json:"items"`
	CreatedAt   string         `json:"created_at"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// GET /api/v1/orders
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer authentication")
		return
	}

	list, err := h.orders.ListOrders(ctx, customerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	dtos := make([]OrderResponseDTO, 0, len(list))
	for _, o := range list {
		dtos = append(dtos, convertOrder(o))
	}

	respondJSON(w, http.StatusOK, dtos)
}

// GET /api/v1/orders/{order_id}
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a UUID")
		return
	}

	order, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, convertOrder(order))
}

// POST /api/v1/orders/{order_id}/status
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a UUID")
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Status == "" {
		respondError(w, http.StatusBadRequest, "missing_status", "status is required")
		return
	}

	if err := h.orders.UpdateStatus(ctx, orderID, domain.OrderStatus(req.Status)); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// POST /api/v1/orders/{order_id}/cancel
func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a UUID")
		return
	}

	if err := h.orders.Cancel(ctx, orderID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.OrderStatusCancelado)})
}

func convertOrder(o *domain.Order) OrderResponseDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Subtotal:    item.Subtotal.StringFixed(2),
		})
	}
	return OrderResponseDTO{
		ID:          o.ID.String(),
		CustomerID:  o.CustomerID,
		AddressID:   o.AddressID,
		Subtotal:    o.Subtotal.StringFixed(2),
		Freight:     o.Freight.StringFixed(2),
		Total:       o.Total.StringFixed(2),
		Status:      string(o.Status),
		PaymentType: string(o.PaymentType),
		Notes:       o.Notes,
		Items:       items,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

var _ OrderService = (*orders.Service)(nil)
