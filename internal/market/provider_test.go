package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
)

func newTestService(t *testing.T, stockHandler, cryptoHandler http.HandlerFunc) *Service {
	t.Helper()

	stockServer := httptest.NewServer(stockHandler)
	cryptoServer := httptest.NewServer(cryptoHandler)
	t.Cleanup(func() {
		stockServer.Close()
		cryptoServer.Close()
	})

	return NewService(
		NewAlphaVantageClient(stockServer.URL, "demo"),
		NewCoinGeckoClient(cryptoServer.URL),
	)
}

func unreachable(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
}

// TestService_StockQuote tests the cache and fallback ladder.
//
// WHY: The free tiers run dry constantly. Requests must be served from
// cache when fresh, from the upstream when not, and from demo data when
// the upstream fails for a known symbol.
func TestService_StockQuote(t *testing.T) {
	t.Run("caches upstream quotes", func(t *testing.T) {
		var calls int32
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Write([]byte(globalQuotePayload))
		}, unreachable)

		for i := 0; i < 3; i++ {
			if _, err := svc.StockQuote(context.Background(), "RELIANCE"); err != nil {
				t.Fatalf("StockQuote() returned unexpected error: %v", err)
			}
		}

		if got := atomic.LoadInt32(&calls); got != 1 {
			t.Errorf("Upstream called %d times, want 1 (cache must absorb repeats)", got)
		}
	})

	t.Run("falls back to demo data for known symbols", func(t *testing.T) {
		svc := newTestService(t, unreachable, unreachable)

		quote, err := svc.StockQuote(context.Background(), "RELIANCE")
		if err != nil {
			t.Fatalf("Expected fallback quote, got error: %v", err)
		}
		if quote.Symbol != "RELIANCE" || !quote.Price.IsPositive() {
			t.Errorf("Fallback quote = %+v, want positive demo price", quote)
		}
	})

	t.Run("unknown symbol with upstream down is unavailable", func(t *testing.T) {
		svc := newTestService(t, unreachable, unreachable)

		_, err := svc.StockQuote(context.Background(), "NOSUCH")
		if !errors.Is(err, apperrors.ErrQuoteUnavailable) {
			t.Fatalf("Expected ErrQuoteUnavailable, got %v", err)
		}
	})
}

// TestService_CryptoAssets tests retry and fallback behavior.
//
// WHY: CoinGecko throttles with 429s; a throttled fetch must retry and
// then degrade to the static list rather than return an empty screen.
func TestService_CryptoAssets(t *testing.T) {
	t.Run("serves upstream data and caches it", func(t *testing.T) {
		var calls int32
		svc := newTestService(t, unreachable, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Write([]byte(`[{"symbol": "btc", "name": "Bitcoin", "current_price": 63254.32}]`))
		})

		for i := 0; i < 2; i++ {
			assets := svc.CryptoAssets(context.Background())
			if len(assets) != 1 || assets[0].Symbol != "BTC" {
				t.Fatalf("CryptoAssets() = %+v, want 1 BTC entry", assets)
			}
		}

		if got := atomic.LoadInt32(&calls); got != 1 {
			t.Errorf("Upstream called %d times, want 1", got)
		}
	})

	t.Run("persistent rate limiting degrades to fallback list", func(t *testing.T) {
		svc := newTestService(t, unreachable, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		assets := svc.CryptoAssets(context.Background())
		if len(assets) == 0 {
			t.Fatal("Expected fallback crypto assets, got none")
		}
		if assets[0].Symbol != "BTC" {
			t.Errorf("Fallback list starts with %s, want BTC", assets[0].Symbol)
		}
	})
}

// TestService_GetPrices tests concurrent batch resolution.
//
// WHY: The valuation refresh depends on partial results: one dead
// symbol must not block repricing the rest of the book.
func TestService_GetPrices(t *testing.T) {
	t.Run("resolves stocks and crypto, skipping failures", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("symbol") == "NSE:RELIANCE" {
				w.Write([]byte(globalQuotePayload))
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"symbol": "btc", "name": "Bitcoin", "current_price": 63254.32}]`))
		})

		prices, err := svc.GetPrices(context.Background(), []string{"RELIANCE", "BTC", "NOSUCH"})
		if err != nil {
			t.Fatalf("GetPrices() returned unexpected error: %v", err)
		}

		if len(prices) != 2 {
			t.Fatalf("Expected 2 resolved prices, got %d: %v", len(prices), prices)
		}
		if !prices["RELIANCE"].Equal(decimal.NewFromFloat(2885.20)) {
			t.Errorf("RELIANCE = %s, want 2885.20", prices["RELIANCE"])
		}
		if !prices["BTC"].Equal(decimal.NewFromFloat(63254.32)) {
			t.Errorf("BTC = %s, want 63254.32", prices["BTC"])
		}
		if _, ok := prices["NOSUCH"]; ok {
			t.Error("Unresolvable symbol must be absent from the result")
		}
	})
}

// TestService_Indices tests the simulated index feed.
func TestService_Indices(t *testing.T) {
	svc := newTestService(t, unreachable, unreachable)

	indices := svc.Indices(context.Background())
	if len(indices) != 4 {
		t.Fatalf("Expected 4 indices, got %d", len(indices))
	}
	if indices[0].Name != "NIFTY 50" {
		t.Errorf("First index = %s, want NIFTY 50", indices[0].Name)
	}

	// Cached: a second call returns identical values despite the jitter.
	again := svc.Indices(context.Background())
	for i := range indices {
		if !indices[i].Price.Equal(again[i].Price) {
			t.Errorf("Index %s re-jittered within the cache TTL", indices[i].Symbol)
		}
	}
}
