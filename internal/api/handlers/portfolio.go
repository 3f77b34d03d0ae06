package handlers

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
	"github.com/marketdesk/paper-trading-backend/internal/api/request"
	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/marketdesk/paper-trading-backend/internal/service"
	"github.com/marketdesk/paper-trading-backend/internal/validation"
)

// PortfolioHandler handles paper-trading account HTTP requests.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// PortfolioResponse is the full account snapshot: the raw state plus the
// derived balances the dashboard shows.
type PortfolioResponse struct {
	Capital      decimal.Decimal     `json:"capital"`
	CashBalance  decimal.Decimal     `json:"cashBalance"`
	Holdings     []model.Holding     `json:"holdings"`
	Transactions []model.Transaction `json:"transactions"`
}

// Portfolio returns the current account state.
//
// Endpoint: GET /api/portfolio
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	state := h.portfolioService.GetState()

	respondJSON(w, http.StatusOK, PortfolioResponse{
		Capital:      state.Capital,
		CashBalance:  state.CashBalance(),
		Holdings:     state.Holdings,
		Transactions: state.Transactions,
	})
}

// Summary returns the derived account metrics.
//
// Endpoint: GET /api/portfolio/summary
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Summary())
}

// PlaceOrderResponse is the executed trade. Warning is set when the
// trade applied but could not be persisted; the session state stands.
type PlaceOrderResponse struct {
	Transaction model.Transaction `json:"transaction"`
	Warning     string            `json:"warning,omitempty"`
}

// PlaceOrder executes a paper trade against the account.
//
// Endpoint: POST /api/portfolio/orders
// Response: 201 Created with the executed transaction
// Errors: 400 on validation failure, 422 on insufficient funds or
// holdings, 502 when no quote could be resolved
func (h *PortfolioHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidatePlaceOrder(req); err != nil {
		respondServiceError(w, err)
		return
	}

	order := model.Order{
		Symbol:   req.Symbol,
		Quantity: req.Quantity,
		Side:     model.OrderSide(req.Side),
		Type:     model.OrderType(req.Type),
	}
	if req.LimitPrice != nil {
		price := decimal.NewFromFloat(*req.LimitPrice)
		order.LimitPrice = &price
	}

	transaction, err := h.portfolioService.PlaceOrder(r.Context(), order)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersistence) {
			respondJSON(w, http.StatusCreated, PlaceOrderResponse{
				Transaction: transaction,
				Warning:     err.Error(),
			})
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, PlaceOrderResponse{Transaction: transaction})
}

// ResetResponse confirms the account was wiped. Warning carries a
// persistence failure, if any.
type ResetResponse struct {
	Capital decimal.Decimal `json:"capital"`
	Warning string          `json:"warning,omitempty"`
}

// Reset wipes the account and starts over with fresh capital.
//
// Endpoint: POST /api/portfolio/reset
func (h *PortfolioHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateResetPortfolio(req); err != nil {
		respondServiceError(w, err)
		return
	}

	capital := decimal.NewFromFloat(req.Capital)
	resp := ResetResponse{Capital: capital}
	if err := h.portfolioService.ResetPortfolio(capital); err != nil {
		if !errors.Is(err, apperrors.ErrPersistence) {
			respondServiceError(w, err)
			return
		}
		resp.Warning = err.Error()
	}

	respondJSON(w, http.StatusOK, resp)
}

// Refresh revalues all holdings against current market prices.
//
// Endpoint: POST /api/portfolio/refresh
func (h *PortfolioHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.portfolioService.RefreshFromMarket(r.Context()); err != nil {
		if errors.Is(err, apperrors.ErrPersistence) {
			respondJSON(w, http.StatusOK, map[string]string{"warning": err.Error()})
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.portfolioService.Summary())
}
