package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/cartstore"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/orders"
	"github.com/fjod/go_storefront/internal/repository"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, details string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    code,
		Details: details,
	})
}

// handleServiceError maps the storefront error taxonomy onto HTTP statuses.
// Anything unmapped is a 500 with no internals leaked.
func handleServiceError(w http.ResponseWriter, err error) {
	var stockErr *repository.InsufficientStockError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", "cart has no items to check out")
	case errors.Is(err, cart.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
	case errors.Is(err, cart.ErrProductUnavailable):
		respondError(w, http.StatusUnprocessableEntity, "product_unavailable", "product is inactive or does not exist")
	case errors.As(err, &stockErr):
		respondError(w, http.StatusConflict, "insufficient_stock", stockErr.Error())
	case errors.Is(err, checkout.ErrPaymentRejected):
		respondError(w, http.StatusPaymentRequired, "payment_rejected", "payment was rejected by the gateway")
	case errors.Is(err, orders.ErrInvalidStatusTransition):
		respondError(w, http.StatusConflict, "invalid_status_transition", err.Error())
	case errors.Is(err, orders.ErrCancellationNotAllowed):
		respondError(w, http.StatusConflict, "cancellation_not_allowed", "order is outside the cancellation window")
	case errors.Is(err, repository.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product_not_found", "product does not exist")
	case errors.Is(err, repository.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order_not_found", "order does not exist")
	case errors.Is(err, repository.ErrAddressNotFound):
		respondError(w, http.StatusNotFound, "address_not_found", "address does not exist")
	case errors.Is(err, cartstore.ErrCartNotFound), errors.Is(err, cartstore.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
