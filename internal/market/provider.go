// Package market supplies price data for the dashboard: stock quotes via
// Alpha Vantage, cryptocurrency data via CoinGecko, an in-memory TTL
// cache in front of both, and demo fallbacks so the app degrades to
// stale-but-plausible data instead of failing when the free-tier APIs
// run dry.
package market

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
	"github.com/marketdesk/paper-trading-backend/internal/model"
)

// Provider is the quote capability the portfolio service consumes.
// GetPrices returns partial results: a symbol missing from the map means
// its price was unavailable, never that it is zero.
type Provider interface {
	GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	GetPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

// Service implements Provider plus the wider market-data surface used by
// the dashboard endpoints.
type Service struct {
	stocks *AlphaVantageClient
	crypto *CoinGeckoClient
	cache  *ttlCache
	now    func() time.Time // injectable clock for testing
}

// NewService creates a market data service backed by the given clients.
func NewService(stocks *AlphaVantageClient, crypto *CoinGeckoClient) *Service {
	return &Service{
		stocks: stocks,
		crypto: crypto,
		cache:  newTTLCache(),
		now:    time.Now,
	}
}

// StockQuote returns the current quote for a stock symbol, served from
// cache when fresh. On upstream failure a demo fallback quote is
// returned for known symbols.
func (s *Service) StockQuote(ctx context.Context, symbol string) (model.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	cacheKey := "stock_" + symbol
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.(model.Quote), nil
	}

	quote, err := s.stocks.GetGlobalQuote(ctx, symbol)
	if err != nil {
		if fallback, ok := fallbackStocks[symbol]; ok {
			log.Printf("stock quote for %s unavailable (%v), using fallback data", symbol, err)
			return fallback, nil
		}
		return model.Quote{}, fmt.Errorf("%w: %s", apperrors.ErrQuoteUnavailable, symbol)
	}

	s.cache.set(cacheKey, quote, stockTTL)
	return quote, nil
}

// Indices returns the major market index summaries. Index data on the
// free tier is simulated, matching the dashboard's behavior.
func (s *Service) Indices(_ context.Context) []model.MarketIndex {
	if cached, ok := s.cache.get("indices"); ok {
		return cached.([]model.MarketIndex)
	}
	indices := fallbackIndices()
	s.cache.set("indices", indices, indicesTTL)
	return indices
}

// CryptoAssets returns the top cryptocurrencies by market cap. Rate
// limited responses are retried with exponential backoff before the
// static fallback list is used.
func (s *Service) CryptoAssets(ctx context.Context) []model.CryptoAsset {
	if cached, ok := s.cache.get("crypto_list"); ok {
		return cached.([]model.CryptoAsset)
	}

	var assets []model.CryptoAsset
	backoff := retry.WithMaxRetries(3, retry.NewExponential(time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var fetchErr error
		assets, fetchErr = s.crypto.GetMarkets(ctx)
		if errors.Is(fetchErr, ErrRateLimited) {
			return retry.RetryableError(fetchErr)
		}
		return fetchErr
	})
	if err != nil {
		log.Printf("crypto market data unavailable (%v), using fallback data", err)
		return fallbackCryptoAssets()
	}

	s.cache.set("crypto_list", assets, cryptoTTL)
	return assets
}

// StockHistory returns recent bars for a stock symbol.
func (s *Service) StockHistory(ctx context.Context, symbol string, intraday bool) ([]model.Candle, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	cacheKey := fmt.Sprintf("history_%s_%t", symbol, intraday)
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.([]model.Candle), nil
	}

	candles, err := s.stocks.GetHistory(ctx, symbol, intraday)
	if err != nil {
		return nil, err
	}

	s.cache.set(cacheKey, candles, historicalTTL)
	return candles, nil
}

// CryptoHistory returns price history for a coin over the given number
// of days.
func (s *Service) CryptoHistory(ctx context.Context, symbol string, days int) ([]model.Candle, error) {
	coinID := GeckoID(symbol)
	cacheKey := fmt.Sprintf("crypto_history_%s_%d", coinID, days)
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.([]model.Candle), nil
	}

	var candles []model.Candle
	backoff := retry.WithMaxRetries(3, retry.NewExponential(time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var fetchErr error
		candles, fetchErr = s.crypto.GetMarketChart(ctx, coinID, days)
		if errors.Is(fetchErr, ErrRateLimited) {
			return retry.RetryableError(fetchErr)
		}
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	s.cache.set(cacheKey, candles, historicalTTL)
	return candles, nil
}

// Status reports which markets are currently open.
func (s *Service) Status() model.MarketStatus {
	return model.MarketStatus{
		StockMarketOpen:  IsStockMarketOpen(s.now()),
		CryptoMarketOpen: IsCryptoMarketOpen(s.now()),
	}
}

// IsCryptoSymbol reports whether a symbol belongs to a known coin.
func IsCryptoSymbol(symbol string) bool {
	base := symbol
	if i := strings.Index(base, "-"); i >= 0 {
		base = base[:i]
	}
	_, ok := geckoIDs[strings.ToUpper(base)]
	return ok
}

// GetPrice resolves the current price for a symbol, crypto or stock.
func (s *Service) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if IsCryptoSymbol(symbol) {
		base := symbol
		if i := strings.Index(base, "-"); i >= 0 {
			base = base[:i]
		}
		for _, asset := range s.CryptoAssets(ctx) {
			if asset.Symbol == base {
				return asset.Price, nil
			}
		}
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrQuoteUnavailable, symbol)
	}

	quote, err := s.StockQuote(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	return quote.Price, nil
}

// GetPrices resolves prices for a batch of symbols concurrently.
// Symbols that cannot be resolved are left out of the result; a partial
// map is not an error.
func (s *Service) GetPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(symbols))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, symbol := range symbols {
		symbol := symbol // per-iteration copy; required while go.mod targets go < 1.22
		g.Go(func() error {
			price, err := s.GetPrice(ctx, symbol)
			if err != nil {
				log.Printf("price lookup failed for %s: %v", symbol, err)
				return nil // missing entry, not a batch failure
			}
			mu.Lock()
			prices[strings.ToUpper(strings.TrimSpace(symbol))] = price
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prices, nil
}
