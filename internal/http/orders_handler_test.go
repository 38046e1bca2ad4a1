package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/orders"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/google/uuid"
)

type orderServiceMock struct {
	order      *domain.Order
	list       []*domain.Order
	err        error
	cancelled  []uuid.UUID
	lastTarget domain.OrderStatus
}

func (o *orderServiceMock) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.order, nil
}

func (o *orderServiceMock) ListOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.list, nil
}

func (o *orderServiceMock) UpdateStatus(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus) error {
	o.lastTarget = target
	return o.err
}

func (o *orderServiceMock) Cancel(ctx context.Context, orderID uuid.UUID) error {
	if o.err != nil {
		return o.err
	}
	o.cancelled = append(o.cancelled, orderID)
	return nil
}

func TestOrdersHandler_GetOrder_Success(t *testing.T) {
	order := sampleOrder()
	handler := NewOrdersHandler(&orderServiceMock{order: order}, 5*time.Second)
	recorder := httptest.NewRecorder()
	request := withURLParam(authedRequest("GET", "/orders/"+order.ID.String(), nil), "order_id", order.ID.String())

	handler.GetOrder(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response OrderResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.ID != order.ID.String() {
		t.Errorf("Expected order id %s, got %s", order.ID, response.ID)
	}
}

func TestOrdersHandler_GetOrder_InvalidID(t *testing.T) {
	handler := NewOrdersHandler(&orderServiceMock{}, 5*time.Second)
	recorder := httptest.NewRecorder()
	request := withURLParam(authedRequest("GET", "/orders/abc", nil), "order_id", "abc")

	handler.GetOrder(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestOrdersHandler_GetOrder_NotFound(t *testing.T) {
	handler := NewOrdersHandler(&orderServiceMock{err: repository.ErrOrderNotFound}, 5*time.Second)
	orderID := uuid.New().String()
	recorder := httptest.NewRecorder()
	request := withURLParam(authedRequest("GET", "/orders/"+orderID, nil), "order_id", orderID)

	handler.GetOrder(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "order_not_found" {
		t.Errorf("Expected error code 'order_not_found', got '%s'", response.Code)
	}
}

func TestOrdersHandler_ListOrders(t *testing.T) {
	handler := NewOrdersHandler(&orderServiceMock{list: []*domain.Order{sampleOrder(), sampleOrder()}}, 5*time.Second)
	recorder := httptest.NewRecorder()

	handler.ListOrders(recorder, authedRequest("GET", "/orders", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response []OrderResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response) != 2 {
		t.Errorf("Expected 2 orders, got %d", len(response))
	}
}

func TestOrdersHandler_UpdateStatus_Success(t *testing.T) {
	mock := &orderServiceMock{}
	handler := NewOrdersHandler(mock, 5*time.Second)
	orderID := uuid.New().String()
	body, _ := json.Marshal(UpdateStatusRequestDTO{Status: "ENVIADO"})
	recorder := httptest.NewRecorder()
	request := withURLParam(authedRequest("POST", "/orders/"+orderID+"/status", body), "order_id", orderID)

	handler.UpdateStatus(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.lastTarget != domain.OrderStatusEnviado {
		t.Errorf("Expected target status ENVIADO, got %s", mock.lastTarget)
	}
}

func TestOrdersHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	handler := NewOrdersHandler(&orderServiceMock{err: orders.ErrInvalidStatusTransition}, 5*time.Second)
	orderID := uuid.New().String()
	body, _ := json.Marshal(UpdateStatusRequestDTO{Status: "ENTREGUE"})
	recorder := httptest.NewRecorder()
	request := withURLParam(authedRequest("POST", "/orders/"+orderID+"/status", body), "order_id", orderID)

	handler.UpdateStatus(recorder, request)

	if recorder.Code != http.StatusConflict {
		t.Errorf("Expected status code %d, got %d", http.StatusConflict, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "invalid_status_transition" {
		t.Errorf("Expected error code 'invalid_status_transition', got '%s'", response.Code)
	}
}

func TestOrdersHandler_UpdateStatus_MissingStatus(t *testing.T) {
	handler := NewOrdersHandler(&orderServiceMock{}, 5*time.Second)
	orderID := uuid.New().String()
	body, _ := json.Marshal(UpdateStatusRequestDTO{})
	recorder := httptest.NewRecorder()
	request := withURLParam(authedRequest("POST", "/orders/"+orderID+"/status", body), "order_id", orderID)

	handler.UpdateStatus(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestOrdersHandler_CancelOrder_Success(t *testing.T) {
	mock := &orderServiceMock{}
	handler := NewOrdersHandler(mock, 5*time.Second)
	orderID := uuid.New()
	recorder := httptest.NewRecorder()
	request := withURLParam(authedRequest("POST", "/orders/"+orderID.String()+"/cancel", nil), "order_id", orderID.String())

	handler.CancelOrder(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if len(mock.cancelled) != 1 || mock.cancelled[0] != orderID {
		t.Errorf("Expected cancel to be forwarded for %s", orderID)
	}

	var response map[string]string
	json.NewDecoder(recorder.Body).Decode(&response)
	if response["status"] != "CANCELADO" {
		t.Errorf("Expected status CANCELADO, got %s", response["status"])
	}
}

func TestOrdersHandler_CancelOrder_OutsideWindow(t *testing.T) {
	handler := NewOrdersHandler(&orderServiceMock{err: orders.ErrCancellationNotAllowed}, 5*time.Second)
	orderID := uuid.New().String()
	recorder := httptest.NewRecorder()
	request := withURLParam(authedRequest("POST", "/orders/"+orderID+"/cancel", nil), "order_id", orderID)

	handler.CancelOrder(recorder, request)

	if recorder.Code != http.StatusConflict {
		t.Errorf("Expected status code %d, got %d", http.StatusConflict, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "cancellation_not_allowed" {
		t.Errorf("Expected error code 'cancellation_not_allowed', got '%s'", response.Code)
	}
}
