package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketdesk/paper-trading-backend/internal/api/request"
	"github.com/marketdesk/paper-trading-backend/internal/service"
	"github.com/marketdesk/paper-trading-backend/internal/validation"
)

// WatchlistHandler handles watchlist HTTP requests.
type WatchlistHandler struct {
	watchlistService *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(watchlistService *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// Watchlist returns every tracked symbol with its latest quote attached.
//
// Endpoint: GET /api/watchlist
func (h *WatchlistHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.watchlistService.GetWatchlist(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// AddItem starts tracking a new symbol.
//
// Endpoint: POST /api/watchlist
// Errors: 400 on validation failure, 409 when the symbol is already tracked
func (h *WatchlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req request.AddWatchlistItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateAddWatchlistItem(req); err != nil {
		respondServiceError(w, err)
		return
	}

	item, err := h.watchlistService.AddSymbol(req.Symbol, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// RemoveItem stops tracking a symbol.
//
// Endpoint: DELETE /api/watchlist/{id}
// Error: 404 when the entry does not exist
func (h *WatchlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validation.ValidateUUID(id); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.watchlistService.RemoveItem(id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
