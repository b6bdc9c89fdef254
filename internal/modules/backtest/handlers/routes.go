package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the request/response backtest routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/backtest/natural", h.HandleNatural)
	r.Post("/backtest/analyze", h.HandleAnalyze)
}

// RegisterStreamRoutes registers the long-lived WebSocket route.
// It is kept apart so request timeouts do not apply to it.
func (h *Handler) RegisterStreamRoutes(r chi.Router) {
	r.Get("/backtest/stream", h.HandleStream)
}
