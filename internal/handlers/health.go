package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
)

// NewHealthHandler returns the liveness probe handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	}
}

// RegisterHealthHandler registers the liveness route
func RegisterHealthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/health", h)
}
