package handler

import (
	"encoding/json"
	"net/http"

	"museum-shop/internal/model"
	"museum-shop/internal/order"

	"github.com/rs/zerolog"
)

// OrderHandler handles order intake HTTP requests.
type OrderHandler struct {
	service order.Service
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service order.Service, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests. Malformed and invalid
// submissions both collapse to a generic processing error with no
// field-level diagnostics; no partial order is recorded.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process order", h.logger)
		return
	}

	receipt, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.OrderListResponse{Orders: summaries})
}
