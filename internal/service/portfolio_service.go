package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
	"github.com/marketdesk/paper-trading-backend/internal/market"
	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/marketdesk/paper-trading-backend/internal/repository"
)

// PortfolioService is the sole owner of the paper-trading account state.
// Every mutation goes through it: order placement, valuation refresh,
// and resets. All operations are serialized behind one mutex, so no
// caller can ever observe a partially applied order.
//
// Trading never changes the capital line; it only moves value between
// cash and holdings. Capital changes only on reset.
//
// Persistence is write-through and best-effort: the in-memory state is
// authoritative for the session, and a failed save surfaces as an
// ErrPersistence warning without rolling the mutation back. Failed
// preconditions never trigger a write.
type PortfolioService struct {
	mu     sync.Mutex
	state  model.PortfolioState
	repo   *repository.AccountRepository
	quotes market.Provider
	now    func() time.Time // injectable clock for testing
}

// NewPortfolioService creates the service and loads the persisted
// account. A missing or unreadable record falls back to a fresh account
// with the given default capital; startup never fails on bad state.
func NewPortfolioService(repo *repository.AccountRepository, quotes market.Provider, defaultCapital decimal.Decimal) *PortfolioService {
	s := &PortfolioService{
		repo:   repo,
		quotes: quotes,
		now:    time.Now,
	}

	state, found, err := repo.Load()
	switch {
	case err != nil:
		log.Printf("failed to load portfolio state, starting fresh: %v", err)
		s.state = defaultState(defaultCapital)
	case !found:
		s.state = defaultState(defaultCapital)
	default:
		s.state = state
	}

	return s
}

func defaultState(capital decimal.Decimal) model.PortfolioState {
	return model.PortfolioState{
		Capital:      capital,
		Holdings:     []model.Holding{},
		Transactions: []model.Transaction{},
	}
}

// GetState returns a deep copy of the current portfolio state.
func (s *PortfolioService) GetState() model.PortfolioState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Summary returns the account's derived metrics.
func (s *PortfolioService) Summary() model.PortfolioSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Summarize()
}

// PlaceOrder validates and executes a paper trade, returning the ledger
// entry it produced. Market orders resolve their execution price through
// the quote provider; limit and stop-loss orders execute at the supplied
// price (no real order book exists to work them against).
//
// All failure modes reject the order before any state changes. On
// success the returned error is either nil or wraps ErrPersistence,
// meaning the trade applied in memory but could not be saved.
func (s *PortfolioService) PlaceOrder(ctx context.Context, order model.Order) (model.Transaction, error) {
	symbol := strings.ToUpper(strings.TrimSpace(order.Symbol))
	if symbol == "" {
		return model.Transaction{}, apperrors.ErrInvalidSymbol
	}
	if order.Quantity <= 0 {
		return model.Transaction{}, apperrors.ErrInvalidQuantity
	}
	if order.Side != model.OrderSideBuy && order.Side != model.OrderSideSell {
		return model.Transaction{}, fmt.Errorf("invalid order side %q", order.Side)
	}

	price, err := s.executionPrice(ctx, symbol, order)
	if err != nil {
		return model.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quantity := decimal.NewFromInt(order.Quantity)
	cost := price.Mul(quantity)

	var realized decimal.Decimal
	switch order.Side {
	case model.OrderSideBuy:
		if cost.GreaterThan(s.state.CashBalance()) {
			return model.Transaction{}, fmt.Errorf("%w: need %s, have %s",
				apperrors.ErrInsufficientFunds, cost, s.state.CashBalance())
		}
		s.applyBuy(symbol, order.Quantity, price)

	case model.OrderSideSell:
		idx := s.state.FindHolding(symbol)
		if idx < 0 {
			return model.Transaction{}, fmt.Errorf("%w: no position in %s",
				apperrors.ErrInsufficientHoldings, symbol)
		}
		if s.state.Holdings[idx].Quantity < order.Quantity {
			return model.Transaction{}, fmt.Errorf("%w: have %d, requested %d",
				apperrors.ErrInsufficientHoldings, s.state.Holdings[idx].Quantity, order.Quantity)
		}
		realized = s.applySell(idx, order.Quantity, price)
	}

	transaction := model.Transaction{
		ID:               uuid.NewString(),
		Timestamp:        s.now().UTC(),
		Symbol:           symbol,
		Type:             order.Side,
		Quantity:         order.Quantity,
		Price:            price,
		Value:            cost,
		RealizedGainLoss: realized,
	}
	s.state.Transactions = append(s.state.Transactions, transaction)

	return transaction, s.save()
}

// executionPrice resolves the price the order executes at. The quote
// lookup happens before the state lock is taken: the store itself holds
// no external blocking call.
func (s *PortfolioService) executionPrice(ctx context.Context, symbol string, order model.Order) (decimal.Decimal, error) {
	switch order.Type {
	case model.OrderTypeMarket, "":
		price, err := s.quotes.GetPrice(ctx, symbol)
		if err != nil {
			return decimal.Zero, err
		}
		return price, nil
	case model.OrderTypeLimit, model.OrderTypeStopLoss:
		if order.LimitPrice == nil || !order.LimitPrice.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: %s order requires a price", apperrors.ErrInvalidPrice, order.Type)
		}
		return *order.LimitPrice, nil
	default:
		return decimal.Zero, fmt.Errorf("invalid order type %q", order.Type)
	}
}

// applyBuy merges a purchase into the holdings. Repeat buys average into
// the existing position: the new cost basis is the quantity-weighted
// mean of the old basis and the new purchase.
func (s *PortfolioService) applyBuy(symbol string, quantity int64, price decimal.Decimal) {
	idx := s.state.FindHolding(symbol)
	if idx < 0 {
		h := model.Holding{
			ID:           uuid.NewString(),
			Symbol:       symbol,
			Name:         symbol,
			Quantity:     quantity,
			BuyPrice:     price,
			CurrentPrice: price,
		}
		recomputeHoldingPL(&h)
		s.state.Holdings = append(s.state.Holdings, h)
		return
	}

	h := &s.state.Holdings[idx]
	oldQty := decimal.NewFromInt(h.Quantity)
	newQty := decimal.NewFromInt(quantity)
	totalQty := oldQty.Add(newQty)
	h.BuyPrice = h.BuyPrice.Mul(oldQty).Add(price.Mul(newQty)).Div(totalQty)
	h.Quantity += quantity
	h.CurrentPrice = price
	recomputeHoldingPL(h)
}

// applySell removes sold shares from the holding at index idx and
// returns the gain or loss realized against the average cost basis. A
// holding sold down to zero is removed entirely.
func (s *PortfolioService) applySell(idx int, quantity int64, price decimal.Decimal) decimal.Decimal {
	h := &s.state.Holdings[idx]
	sold := decimal.NewFromInt(quantity)
	realized := price.Sub(h.BuyPrice).Mul(sold)

	h.Quantity -= quantity
	if h.Quantity == 0 {
		s.state.Holdings = append(s.state.Holdings[:idx], s.state.Holdings[idx+1:]...)
		return realized
	}

	h.CurrentPrice = price
	recomputeHoldingPL(h)
	return realized
}

// RefreshValuation marks holdings to market using the supplied quotes.
// Holdings without a quote keep their last known price; non-positive
// quotes are ignored per symbol rather than failing the refresh. The
// operation is idempotent and records no transaction.
func (s *PortfolioService) RefreshValuation(quotes map[string]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.state.Holdings {
		h := &s.state.Holdings[i]
		price, ok := quotes[h.Symbol]
		if !ok || !price.IsPositive() {
			continue
		}
		if !h.CurrentPrice.Equal(price) {
			h.CurrentPrice = price
			recomputeHoldingPL(h)
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return s.save()
}

// RefreshFromMarket fetches quotes for every held symbol and refreshes
// the valuation. Symbols the provider cannot price keep their last
// known value.
func (s *PortfolioService) RefreshFromMarket(ctx context.Context) error {
	s.mu.Lock()
	symbols := make([]string, len(s.state.Holdings))
	for i, h := range s.state.Holdings {
		symbols[i] = h.Symbol
	}
	s.mu.Unlock()

	if len(symbols) == 0 {
		return nil
	}

	quotes, err := s.quotes.GetPrices(ctx, symbols)
	if err != nil {
		return fmt.Errorf("failed to fetch quotes: %w", err)
	}
	return s.RefreshValuation(quotes)
}

// ResetPortfolio wipes the account and starts over with the given
// capital: no holdings, an empty ledger, current value equal to capital.
// Irreversible; confirmation is the presentation layer's concern.
func (s *PortfolioService) ResetPortfolio(newCapital decimal.Decimal) error {
	if !newCapital.IsPositive() {
		return apperrors.ErrInvalidCapital
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = defaultState(newCapital)
	return s.save()
}

// save persists the full current state. Must be called with the lock
// held, after the mutation it records. Failures are logged and wrapped
// in ErrPersistence; the in-memory state stands.
func (s *PortfolioService) save() error {
	if err := s.repo.Save(s.state); err != nil {
		log.Printf("portfolio save failed: %v", err)
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

func recomputeHoldingPL(h *model.Holding) {
	qty := decimal.NewFromInt(h.Quantity)
	h.ProfitLoss = h.CurrentPrice.Sub(h.BuyPrice).Mul(qty)
	basis := h.BuyPrice.Mul(qty)
	if basis.IsZero() {
		h.ProfitLossPercent = decimal.Zero
		return
	}
	h.ProfitLossPercent = h.ProfitLoss.Div(basis).Mul(decimal.NewFromInt(100))
}
