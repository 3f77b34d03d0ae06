package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/shopspring/decimal"
)

// geckoIDs maps ticker symbols to CoinGecko coin identifiers.
var geckoIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"BNB":   "binancecoin",
	"SOL":   "solana",
	"XRP":   "ripple",
	"DOGE":  "dogecoin",
	"ADA":   "cardano",
	"DOT":   "polkadot",
	"LTC":   "litecoin",
	"MATIC": "matic-network",
}

// GeckoID resolves a ticker like "BTC" or "BTC-USD" to a CoinGecko coin
// id, falling back to the lowercased symbol for unmapped coins.
func GeckoID(symbol string) string {
	base := symbol
	if i := strings.Index(base, "-"); i >= 0 {
		base = base[:i]
	}
	base = strings.ToUpper(base)
	if id, ok := geckoIDs[base]; ok {
		return id
	}
	return strings.ToLower(base)
}

// CoinGeckoClient fetches cryptocurrency market data from the CoinGecko
// REST API.
type CoinGeckoClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCoinGeckoClient creates a client for the given endpoint.
func NewCoinGeckoClient(baseURL string) *CoinGeckoClient {
	return &CoinGeckoClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

type geckoMarketEntry struct {
	Symbol                   string          `json:"symbol"`
	Name                     string          `json:"name"`
	CurrentPrice             decimal.Decimal `json:"current_price"`
	PriceChange24h           decimal.Decimal `json:"price_change_24h"`
	PriceChangePercentage24h decimal.Decimal `json:"price_change_percentage_24h"`
	MarketCap                int64           `json:"market_cap"`
	TotalVolume              int64           `json:"total_volume"`
	Image                    string          `json:"image"`
}

// GetMarkets fetches the top cryptocurrencies by market cap with 24h
// change data.
func (c *CoinGeckoClient) GetMarkets(ctx context.Context) ([]model.CryptoAsset, error) {
	url := c.baseURL + "/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=10&page=1&sparkline=false&price_change_percentage=24h"

	var entries []geckoMarketEntry
	if err := c.getJSON(ctx, url, &entries); err != nil {
		return nil, err
	}

	assets := make([]model.CryptoAsset, len(entries))
	for i, e := range entries {
		assets[i] = model.CryptoAsset{
			Symbol:        strings.ToUpper(e.Symbol),
			Name:          e.Name,
			Price:         e.CurrentPrice,
			Change:        e.PriceChange24h,
			PercentChange: e.PriceChangePercentage24h,
			MarketCap:     e.MarketCap,
			Volume24h:     e.TotalVolume,
			Image:         e.Image,
		}
	}
	return assets, nil
}

type geckoMarketChart struct {
	// Prices is a list of [unix-millis, price] pairs.
	Prices [][2]decimal.Decimal `json:"prices"`
}

// GetMarketChart fetches price history for a coin over the given number
// of days. CoinGecko provides no OHLC on this endpoint, so each bar
// carries the same price for open/high/low/close and no volume.
func (c *CoinGeckoClient) GetMarketChart(ctx context.Context, coinID string, days int) ([]model.Candle, error) {
	url := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d", c.baseURL, coinID, days)

	var chart geckoMarketChart
	if err := c.getJSON(ctx, url, &chart); err != nil {
		return nil, err
	}

	candles := make([]model.Candle, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		at := time.UnixMilli(pair[0].IntPart()).UTC()
		price := pair[1]
		candles = append(candles, model.Candle{
			Date:  at.Format("2006-01-02"),
			Time:  at.Format("15:04"),
			Open:  price,
			High:  price,
			Low:   price,
			Close: price,
		})
	}
	return candles, nil
}

func (c *CoinGeckoClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("coin not found: %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from coingecko", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
