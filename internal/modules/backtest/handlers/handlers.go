// Package handlers provides HTTP handlers for backtest analysis.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/aristath/backtest/internal/modules/backtest"
)

// ContentTypeMsgpack is negotiated through the Accept header
const ContentTypeMsgpack = "application/msgpack"

// maxBodyBytes bounds request bodies; a year of daily data is far below it
const maxBodyBytes = 8 << 20

// Handler handles backtest HTTP requests
type Handler struct {
	service *backtest.Service
	log     zerolog.Logger
}

// NewHandler creates a new backtest handler
func NewHandler(service *backtest.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "backtest").Logger(),
	}
}

// HandleNatural handles POST /api/backtest/natural
func (h *Handler) HandleNatural(w http.ResponseWriter, r *http.Request) {
	var req backtest.NaturalRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RunNatural(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeData(w, r, result)
}

// HandleAnalyze handles POST /api/backtest/analyze
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req backtest.AnalyzeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Analyze(req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeData(w, r, result)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, backtest.ErrValidation) {
		h.writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.log.Error().Err(err).Str("path", r.URL.Path).Msg("Backtest failed")
	h.writeError(w, r, http.StatusBadGateway, err.Error())
}

func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, data interface{}) {
	h.writeResponse(w, r, http.StatusOK, map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeResponse(w, r, status, map[string]string{"error": message})
}

// writeResponse encodes data as msgpack when the client accepts it, JSON otherwise
func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if wantsMsgpack(r) {
		body, err := msgpack.Marshal(data)
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to encode msgpack response")
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", ContentTypeMsgpack)
		w.WriteHeader(status)
		if _, err := w.Write(body); err != nil {
			h.log.Error().Err(err).Msg("Failed to write msgpack response")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func wantsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), ContentTypeMsgpack)
}
