package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/payment"
)

// CheckoutService runs the checkout pipeline for one customer.
type CheckoutService interface {
	Checkout(ctx context.Context, req *checkout.Request) (*domain.Order, error)
}

type CheckoutHandler struct {
	checkouts CheckoutService
	timeout   time.Duration
}

func NewCheckoutHandler(checkouts CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkouts: checkouts,
		timeout:   timeout,
	}
}

type CheckoutRequestDTO struct {
	AddressID   int64           `json:"address_id"`
	PaymentType string          `json:"payment_type"`
	Payment     payment.Payload `json:"payment"`
	Notes       string          `json:"notes"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer authentication")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.AddressID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_address_id", "address_id must be positive")
		return
	}
	if req.PaymentType == "" {
		respondError(w, http.StatusBadRequest, "missing_payment_type", "payment_type is required")
		return
	}

	order, err := h.checkouts.Checkout(ctx, &checkout.Request{
		CustomerID:  customerID,
		AddressID:   req.AddressID,
		PaymentType: domain.PaymentType(req.PaymentType),
		Payment:     req.Payment,
		Notes:       req.Notes,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, convertOrder(order))
}

var _ CheckoutService = (*checkout.Service)(nil)
