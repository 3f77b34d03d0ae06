package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketdesk/paper-trading-backend/internal/model"
)

// MakeID returns a fresh UUID string for test entities.
func MakeID() string {
	return uuid.NewString()
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	holding := testutil.NewHolding("RELIANCE").
//	    WithQuantity(10).
//	    WithBuyPrice(2840).
//	    Build()
type HoldingBuilder struct {
	holding model.Holding
}

// NewHolding creates a HoldingBuilder with sensible defaults: 1 share
// bought and currently priced at 100.
func NewHolding(symbol string) *HoldingBuilder {
	return &HoldingBuilder{
		holding: model.Holding{
			ID:           MakeID(),
			Symbol:       symbol,
			Name:         symbol,
			Quantity:     1,
			BuyPrice:     decimal.NewFromInt(100),
			CurrentPrice: decimal.NewFromInt(100),
		},
	}
}

// WithName sets a display name.
func (b *HoldingBuilder) WithName(name string) *HoldingBuilder {
	b.holding.Name = name
	return b
}

// WithQuantity sets the share count.
func (b *HoldingBuilder) WithQuantity(quantity int64) *HoldingBuilder {
	b.holding.Quantity = quantity
	return b
}

// WithBuyPrice sets the average cost per share.
func (b *HoldingBuilder) WithBuyPrice(price float64) *HoldingBuilder {
	b.holding.BuyPrice = decimal.NewFromFloat(price)
	return b
}

// WithCurrentPrice sets the latest market price per share.
func (b *HoldingBuilder) WithCurrentPrice(price float64) *HoldingBuilder {
	b.holding.CurrentPrice = decimal.NewFromFloat(price)
	return b
}

// Build returns the holding with its unrealized P&L computed from the
// buy and current prices.
func (b *HoldingBuilder) Build() model.Holding {
	h := b.holding
	qty := decimal.NewFromInt(h.Quantity)
	cost := h.BuyPrice.Mul(qty)
	h.ProfitLoss = h.CurrentPrice.Mul(qty).Sub(cost)
	if cost.IsPositive() {
		h.ProfitLossPercent = h.ProfitLoss.Div(cost).Mul(decimal.NewFromInt(100))
	}
	return h
}

// TransactionBuilder provides a fluent interface for creating test
// ledger entries.
type TransactionBuilder struct {
	transaction model.Transaction
}

// NewTransaction creates a TransactionBuilder for a buy of 1 share at 100.
func NewTransaction(symbol string) *TransactionBuilder {
	return &TransactionBuilder{
		transaction: model.Transaction{
			ID:        MakeID(),
			Timestamp: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			Symbol:    symbol,
			Type:      model.OrderSideBuy,
			Quantity:  1,
			Price:     decimal.NewFromInt(100),
		},
	}
}

// Sell marks the entry as a sale with the given realized gain or loss.
func (b *TransactionBuilder) Sell(realized float64) *TransactionBuilder {
	b.transaction.Type = model.OrderSideSell
	b.transaction.RealizedGainLoss = decimal.NewFromFloat(realized)
	return b
}

// WithQuantity sets the share count.
func (b *TransactionBuilder) WithQuantity(quantity int64) *TransactionBuilder {
	b.transaction.Quantity = quantity
	return b
}

// WithPrice sets the execution price per share.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.transaction.Price = decimal.NewFromFloat(price)
	return b
}

// WithTimestamp sets the execution time.
func (b *TransactionBuilder) WithTimestamp(ts time.Time) *TransactionBuilder {
	b.transaction.Timestamp = ts
	return b
}

// Build returns the transaction with Value derived from price and
// quantity.
func (b *TransactionBuilder) Build() model.Transaction {
	tx := b.transaction
	tx.Value = tx.Price.Mul(decimal.NewFromInt(tx.Quantity))
	return tx
}

// StateBuilder provides a fluent interface for creating full account
// states.
//
// Example usage:
//
//	state := testutil.NewState(100000).
//	    WithHolding(testutil.NewHolding("RELIANCE").WithQuantity(10).WithBuyPrice(2840).Build()).
//	    Build()
type StateBuilder struct {
	state model.PortfolioState
}

// NewState creates a StateBuilder with the given starting capital and
// no positions.
func NewState(capital float64) *StateBuilder {
	return &StateBuilder{
		state: model.PortfolioState{
			Capital:      decimal.NewFromFloat(capital),
			Holdings:     []model.Holding{},
			Transactions: []model.Transaction{},
		},
	}
}

// WithHolding appends an open position.
func (b *StateBuilder) WithHolding(h model.Holding) *StateBuilder {
	b.state.Holdings = append(b.state.Holdings, h)
	return b
}

// WithTransaction appends a ledger entry.
func (b *StateBuilder) WithTransaction(tx model.Transaction) *StateBuilder {
	b.state.Transactions = append(b.state.Transactions, tx)
	return b
}

// Build returns the assembled state.
func (b *StateBuilder) Build() model.PortfolioState {
	return b.state
}
