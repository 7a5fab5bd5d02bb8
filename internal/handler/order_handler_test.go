package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"museum-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of order.Service.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Submit(ctx context.Context, req *model.OrderRequest) (*model.OrderReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderReceipt), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]model.OrderSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderSummary), args.Error(1)
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	validBody := `{
		"customer": {"name":"A","email":"a@b.com","address":"X","city":"Y","zip":"1"},
		"items": [{"objectID":1,"title":"T","price":10,"quantity":2}],
		"total": 20
	}`

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("Submit", mock.Anything, mock.Anything).Return(&model.OrderReceipt{
			Success: true,
			OrderID: "ORD-1700000000000-abc123def",
			Message: "Order placed successfully",
		}, nil)
		h := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validBody))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var receipt model.OrderReceipt
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
		assert.True(t, receipt.Success)
		assert.True(t, strings.HasPrefix(receipt.OrderID, "ORD-"))
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed JSON body", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"customer": `))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to process order", resp.Error)
		mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Service rejection collapses to generic error", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("Submit", mock.Anything, mock.Anything).Return(nil, model.ErrMissingItems)
		h := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"customer":{},"total":0}`))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to process order", resp.Error)
	})
}

func TestOrderHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		summaries := []model.OrderSummary{
			{ID: "ORD-1", Total: 20, Timestamp: time.Now().UTC(), Status: "confirmed", ItemCount: 2},
		}

		mockService := new(MockOrderService)
		mockService.On("List", mock.Anything).Return(summaries, nil)
		h := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		h.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp model.OrderListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Orders, 1)
		assert.Equal(t, "ORD-1", resp.Orders[0].ID)
		assert.Equal(t, 2, resp.Orders[0].ItemCount)
	})

	t.Run("Empty log", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("List", mock.Anything).Return([]model.OrderSummary{}, nil)
		h := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		h.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"orders": []}`, w.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("List", mock.Anything).Return(nil, assert.AnError)
		h := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		h.List(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
