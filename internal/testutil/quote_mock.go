package testutil

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
)

// MockQuoteProvider is a mock implementation of market.Provider for
// testing. It serves prices from a fixed table instead of calling the
// real market data APIs.
type MockQuoteProvider struct {
	// Prices maps symbol to the price the mock returns.
	Prices map[string]decimal.Decimal
	// Err, when set, is returned from every lookup.
	Err error
	// QueryCount tracks how many symbol lookups were made.
	QueryCount int
}

// NewMockQuoteProvider creates a mock with an empty price table.
func NewMockQuoteProvider() *MockQuoteProvider {
	return &MockQuoteProvider{
		Prices: map[string]decimal.Decimal{},
	}
}

// WithPrice adds a symbol to the price table.
func (m *MockQuoteProvider) WithPrice(symbol string, price float64) *MockQuoteProvider {
	m.Prices[symbol] = decimal.NewFromFloat(price)
	return m
}

// WithError configures the mock to fail every lookup with err.
func (m *MockQuoteProvider) WithError(err error) *MockQuoteProvider {
	m.Err = err
	return m
}

// GetPrice returns the configured price for symbol, or
// apperrors.ErrQuoteUnavailable when the symbol is not in the table.
func (m *MockQuoteProvider) GetPrice(_ context.Context, symbol string) (decimal.Decimal, error) {
	m.QueryCount++
	if m.Err != nil {
		return decimal.Zero, m.Err
	}
	price, ok := m.Prices[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrQuoteUnavailable, symbol)
	}
	return price, nil
}

// GetPrices returns every requested symbol that has a configured price.
// Missing symbols are silently skipped, matching the partial-result
// behavior of the real provider.
func (m *MockQuoteProvider) GetPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	quotes := make(map[string]decimal.Decimal, len(symbols))
	for _, symbol := range symbols {
		price, err := m.GetPrice(ctx, symbol)
		if err != nil {
			continue
		}
		quotes[symbol] = price
	}
	return quotes, nil
}
