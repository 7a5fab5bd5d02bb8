package handler

import (
	"net/http"

	"museum-shop/internal/catalog"

	"github.com/rs/zerolog"
)

// CatalogHandler handles catalog listing HTTP requests.
type CatalogHandler struct {
	service catalog.Service
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service catalog.Service, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// Artworks handles GET /api/artworks requests. Listings silently show fewer
// items than configured when individual fetches fail; only an aggregate
// failure produces an error response.
func (h *CatalogHandler) Artworks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	artworks, err := h.service.Artworks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch artworks", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, artworks)
}

// Merchandise handles GET /api/merchandise requests.
func (h *CatalogHandler) Merchandise(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	merchandise, err := h.service.Merchandise(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch merchandise", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, merchandise)
}
