package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/marketdesk/paper-trading-backend/internal/market"
)

// MarketHandler handles market data HTTP requests.
type MarketHandler struct {
	marketService *market.Service
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService *market.Service) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// Indices returns the tracked market indices.
//
// Endpoint: GET /api/market/indices
func (h *MarketHandler) Indices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.marketService.Indices(r.Context()))
}

// CryptoAssets returns the top crypto assets by market cap.
//
// Endpoint: GET /api/market/crypto
func (h *MarketHandler) CryptoAssets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.marketService.CryptoAssets(r.Context()))
}

// StockQuote returns the latest quote for a stock symbol.
//
// Endpoint: GET /api/market/stocks/{symbol}
// Error: 502 Bad Gateway when no quote could be resolved
func (h *MarketHandler) StockQuote(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	quote, err := h.marketService.StockQuote(r.Context(), symbol)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// StockHistory returns recent candles for a stock symbol. The intraday
// query parameter switches from daily to 5-minute bars.
//
// Endpoint: GET /api/market/stocks/{symbol}/history?intraday=true
func (h *MarketHandler) StockHistory(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	intraday := r.URL.Query().Get("intraday") == "true"

	candles, err := h.marketService.StockHistory(r.Context(), symbol, intraday)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, candles)
}

// CryptoHistory returns recent price points for a crypto symbol over the
// requested number of days (default 1, max 365).
//
// Endpoint: GET /api/market/crypto/{symbol}/history?days=7
func (h *MarketHandler) CryptoHistory(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	days := 1
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			respondJSON(w, http.StatusBadRequest, map[string]string{
				"error": "days must be an integer between 1 and 365",
			})
			return
		}
		days = parsed
	}

	candles, err := h.marketService.CryptoHistory(r.Context(), symbol, days)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, candles)
}

// Status reports whether the stock and crypto markets are open.
//
// Endpoint: GET /api/market/status
func (h *MarketHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.marketService.Status())
}
