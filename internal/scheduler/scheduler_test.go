package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/marketdesk/paper-trading-backend/internal/testutil"
)

// TestScheduler_shouldRefresh tests the refresh gating.
//
// WHY: The refresh job must not burn API quota when nothing it fetches
// can have moved: an empty book, or a stocks-only book outside NSE
// hours.
func TestScheduler_shouldRefresh(t *testing.T) {
	ist := time.FixedZone("IST", int(5.5*60*60))
	tradingHours := time.Date(2025, 6, 2, 11, 0, 0, 0, ist) // Monday 11:00
	afterHours := time.Date(2025, 6, 2, 20, 0, 0, 0, ist)   // Monday 20:00

	buy := func(t *testing.T, s *Scheduler, quotes *testutil.MockQuoteProvider, symbol string) {
		t.Helper()
		quotes.WithPrice(symbol, 100)
		if _, err := s.portfolio.PlaceOrder(context.Background(), model.Order{
			Symbol: symbol, Quantity: 1, Side: model.OrderSideBuy,
		}); err != nil {
			t.Fatalf("Buy %s failed: %v", symbol, err)
		}
	}

	newScheduler := func(t *testing.T, at time.Time) (*Scheduler, *testutil.MockQuoteProvider) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		quotes := testutil.NewMockQuoteProvider()
		s, err := New(testutil.NewTestPortfolioService(t, db, quotes), "@every 1m")
		if err != nil {
			t.Fatalf("New() returned unexpected error: %v", err)
		}
		s.now = func() time.Time { return at }
		return s, quotes
	}

	t.Run("skips when nothing is held", func(t *testing.T) {
		s, _ := newScheduler(t, tradingHours)
		if s.shouldRefresh() {
			t.Error("Expected no refresh for an empty book")
		}
	})

	t.Run("refreshes stocks during market hours", func(t *testing.T) {
		s, quotes := newScheduler(t, tradingHours)
		buy(t, s, quotes, "RELIANCE")
		if !s.shouldRefresh() {
			t.Error("Expected refresh for held stocks during NSE hours")
		}
	})

	t.Run("skips stocks-only book after hours", func(t *testing.T) {
		s, quotes := newScheduler(t, afterHours)
		buy(t, s, quotes, "RELIANCE")
		if s.shouldRefresh() {
			t.Error("Expected no refresh for stocks outside NSE hours")
		}
	})

	t.Run("crypto holdings refresh around the clock", func(t *testing.T) {
		s, quotes := newScheduler(t, afterHours)
		buy(t, s, quotes, "BTC")
		if !s.shouldRefresh() {
			t.Error("Expected refresh for held crypto at any hour")
		}
	})
}
