package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide is the direction of an order: buy or sell.
type OrderSide string

// Valid order sides.
const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

// OrderType determines how an order's execution price is resolved.
// Market orders resolve through the quote provider at placement time;
// limit and stop-loss orders execute at the caller-supplied price.
type OrderType string

// Valid order types.
const (
	OrderTypeMarket   OrderType = "market"
	OrderTypeLimit    OrderType = "limit"
	OrderTypeStopLoss OrderType = "stop_loss"
)

// Order is a request to trade a symbol in the paper account.
// LimitPrice is required for limit and stop-loss orders and ignored
// for market orders.
type Order struct {
	Symbol     string           `json:"symbol"`
	Quantity   int64            `json:"quantity"`
	Side       OrderSide        `json:"side"`
	Type       OrderType        `json:"type"`
	LimitPrice *decimal.Decimal `json:"limitPrice,omitempty"`
}

// Holding is an open position in one symbol. Positions are consolidated:
// repeat buys average into the existing holding rather than opening a new
// lot, so there is at most one Holding per symbol and Quantity is always
// positive (a fully sold holding is removed, never kept at zero).
type Holding struct {
	ID                string          `json:"id"`
	Symbol            string          `json:"symbol"`
	Name              string          `json:"name"`
	Quantity          int64           `json:"quantity"`
	BuyPrice          decimal.Decimal `json:"buyPrice"` // quantity-weighted average cost
	CurrentPrice      decimal.Decimal `json:"currentPrice"`
	ProfitLoss        decimal.Decimal `json:"profitLoss"`
	ProfitLossPercent decimal.Decimal `json:"profitLossPercent"`
}

// Transaction is one entry in the append-only trade ledger. Entries are
// never mutated or deleted except by a full portfolio reset. Sell entries
// carry the gain or loss realized against the holding's average cost.
type Transaction struct {
	ID               string          `json:"id"`
	Timestamp        time.Time       `json:"timestamp"`
	Symbol           string          `json:"symbol"`
	Type             OrderSide       `json:"type"`
	Quantity         int64           `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Value            decimal.Decimal `json:"value"` // price * quantity
	RealizedGainLoss decimal.Decimal `json:"realizedGainLoss"`
}

// Date returns the ledger entry's date part in YYYY-MM-DD form.
func (t Transaction) Date() string { return t.Timestamp.Format("2006-01-02") }

// Clock returns the ledger entry's time part in HH:MM form.
func (t Transaction) Clock() string { return t.Timestamp.Format("15:04") }

// PortfolioState is the root aggregate of the paper-trading account.
// Capital is the equity basis set at the last reset; trading moves value
// between cash and holdings but never changes it. Holdings keep
// acquisition order; Transactions are chronological.
type PortfolioState struct {
	Capital      decimal.Decimal `json:"capital"`
	Holdings     []Holding       `json:"holdings"`
	Transactions []Transaction   `json:"transactions"`
}

// InvestedAmount is the cost basis currently tied up in holdings.
func (p PortfolioState) InvestedAmount() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		total = total.Add(h.BuyPrice.Mul(decimal.NewFromInt(h.Quantity)))
	}
	return total
}

// CashBalance is the capital not currently invested. Buys are only
// permitted while this stays non-negative.
func (p PortfolioState) CashBalance() decimal.Decimal {
	return p.Capital.Sub(p.InvestedAmount())
}

// CurrentValue is cash plus holdings marked at their last known price.
func (p PortfolioState) CurrentValue() decimal.Decimal {
	total := p.CashBalance()
	for _, h := range p.Holdings {
		total = total.Add(h.CurrentPrice.Mul(decimal.NewFromInt(h.Quantity)))
	}
	return total
}

// FindHolding returns the index of the holding for symbol, or -1.
func (p PortfolioState) FindHolding(symbol string) int {
	for i, h := range p.Holdings {
		if h.Symbol == symbol {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the state. Callers receive clones so the
// service's copy can only change through its own operations.
func (p PortfolioState) Clone() PortfolioState {
	out := PortfolioState{Capital: p.Capital}
	out.Holdings = make([]Holding, len(p.Holdings))
	copy(out.Holdings, p.Holdings)
	out.Transactions = make([]Transaction, len(p.Transactions))
	copy(out.Transactions, p.Transactions)
	return out
}

// PortfolioSummary reports the account's derived metrics. All fields are
// recomputed from holdings and the capital line; none are stored.
type PortfolioSummary struct {
	Capital           decimal.Decimal `json:"capital"`
	InvestedAmount    decimal.Decimal `json:"investedAmount"`
	CashBalance       decimal.Decimal `json:"cashBalance"`
	CurrentValue      decimal.Decimal `json:"currentValue"`
	ProfitLoss        decimal.Decimal `json:"profitLoss"`
	ProfitLossPercent decimal.Decimal `json:"profitLossPercent"`
	HoldingCount      int             `json:"holdingCount"`
}

// Summarize computes the derived metrics for the current state.
func (p PortfolioState) Summarize() PortfolioSummary {
	current := p.CurrentValue()
	pl := current.Sub(p.Capital)
	plPct := decimal.Zero
	if !p.Capital.IsZero() {
		plPct = pl.Div(p.Capital).Mul(decimal.NewFromInt(100))
	}
	return PortfolioSummary{
		Capital:           p.Capital,
		InvestedAmount:    p.InvestedAmount(),
		CashBalance:       p.CashBalance(),
		CurrentValue:      current,
		ProfitLoss:        pl,
		ProfitLossPercent: plPct,
		HoldingCount:      len(p.Holdings),
	}
}
