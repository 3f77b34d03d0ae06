package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/shopspring/decimal"
)

// ErrRateLimited indicates the upstream provider refused the request
// because the API quota is exhausted. Callers may retry with backoff or
// fall back to cached/mock data.
var ErrRateLimited = errors.New("market data provider rate limit reached")

// AlphaVantageClient fetches stock quotes and historical series from the
// Alpha Vantage REST API. The free tier is heavily rate limited; the
// provider layer caches aggressively and falls back to demo data.
type AlphaVantageClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewAlphaVantageClient creates a client for the given endpoint and API key.
func NewAlphaVantageClient(baseURL, apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// globalQuoteResponse is the raw GLOBAL_QUOTE payload. Alpha Vantage
// returns all numeric fields as strings under positional keys, and
// signals quota exhaustion via a "Note" field on an otherwise-200 reply.
type globalQuoteResponse struct {
	GlobalQuote  map[string]string `json:"Global Quote"`
	Note         string            `json:"Note"`
	ErrorMessage string            `json:"Error Message"`
}

// timeSeriesResponse is the raw TIME_SERIES_* payload. The series key
// varies with the interval, so it is captured as raw JSON and picked
// apart by the caller.
type timeSeriesResponse struct {
	Note         string                     `json:"Note"`
	ErrorMessage string                     `json:"Error Message"`
	Daily        map[string]timeSeriesEntry `json:"Time Series (Daily)"`
	Intraday     map[string]timeSeriesEntry `json:"Time Series (5min)"`
}

type timeSeriesEntry struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// GetGlobalQuote fetches the current quote for a stock symbol. Symbols
// are resolved on the NSE exchange, matching the dashboard's market.
func (c *AlphaVantageClient) GetGlobalQuote(ctx context.Context, symbol string) (model.Quote, error) {
	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", "NSE:"+symbol)
	query.Set("apikey", c.apiKey)

	var payload globalQuoteResponse
	if err := c.getJSON(ctx, query, &payload); err != nil {
		return model.Quote{}, err
	}
	if payload.Note != "" {
		return model.Quote{}, ErrRateLimited
	}
	if payload.ErrorMessage != "" {
		return model.Quote{}, fmt.Errorf("alpha vantage error: %s", payload.ErrorMessage)
	}
	if len(payload.GlobalQuote) == 0 {
		return model.Quote{}, fmt.Errorf("no quote data returned for %s", symbol)
	}

	q := model.Quote{Symbol: symbol, CompanyName: symbol}
	var err error
	if q.Price, err = parseDecimalField(payload.GlobalQuote, "05. price"); err != nil {
		return model.Quote{}, err
	}
	if q.Change, err = parseDecimalField(payload.GlobalQuote, "09. change"); err != nil {
		return model.Quote{}, err
	}
	if pct, ok := payload.GlobalQuote["10. change percent"]; ok {
		trimmed := pct
		if n := len(trimmed); n > 0 && trimmed[n-1] == '%' {
			trimmed = trimmed[:n-1]
		}
		if q.PercentChange, err = decimal.NewFromString(trimmed); err != nil {
			return model.Quote{}, fmt.Errorf("malformed change percent %q: %w", pct, err)
		}
	}
	if q.Open, err = parseDecimalField(payload.GlobalQuote, "02. open"); err != nil {
		return model.Quote{}, err
	}
	if q.High, err = parseDecimalField(payload.GlobalQuote, "03. high"); err != nil {
		return model.Quote{}, err
	}
	if q.Low, err = parseDecimalField(payload.GlobalQuote, "04. low"); err != nil {
		return model.Quote{}, err
	}
	if q.PreviousClose, err = parseDecimalField(payload.GlobalQuote, "08. previous close"); err != nil {
		return model.Quote{}, err
	}
	if vol, ok := payload.GlobalQuote["06. volume"]; ok {
		q.Volume, _ = strconv.ParseInt(vol, 10, 64)
	}

	return q, nil
}

// GetHistory fetches historical bars for a symbol. Intraday requests use
// 5-minute bars; daily requests use daily bars. At most the 30 most
// recent bars are returned, newest first.
func (c *AlphaVantageClient) GetHistory(ctx context.Context, symbol string, intraday bool) ([]model.Candle, error) {
	query := url.Values{}
	if intraday {
		query.Set("function", "TIME_SERIES_INTRADAY")
		query.Set("interval", "5min")
	} else {
		query.Set("function", "TIME_SERIES_DAILY")
	}
	query.Set("symbol", "NSE:"+symbol)
	query.Set("apikey", c.apiKey)

	var payload timeSeriesResponse
	if err := c.getJSON(ctx, query, &payload); err != nil {
		return nil, err
	}
	if payload.Note != "" {
		return nil, ErrRateLimited
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("alpha vantage error: %s", payload.ErrorMessage)
	}

	series := payload.Daily
	if intraday {
		series = payload.Intraday
	}
	if len(series) == 0 {
		return []model.Candle{}, nil
	}

	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	// Timestamps are lexically sortable in Alpha Vantage's format.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > 30 {
		keys = keys[:30]
	}

	candles := make([]model.Candle, 0, len(keys))
	for _, k := range keys {
		entry := series[k]
		candle := model.Candle{Date: k}
		if intraday {
			// Intraday keys look like "2024-04-11 10:15:00".
			if len(k) > 10 {
				candle.Date = k[:10]
				candle.Time = k[11:]
			}
		}
		var err error
		if candle.Open, err = decimal.NewFromString(entry.Open); err != nil {
			return nil, fmt.Errorf("malformed open price %q: %w", entry.Open, err)
		}
		if candle.High, err = decimal.NewFromString(entry.High); err != nil {
			return nil, fmt.Errorf("malformed high price %q: %w", entry.High, err)
		}
		if candle.Low, err = decimal.NewFromString(entry.Low); err != nil {
			return nil, fmt.Errorf("malformed low price %q: %w", entry.Low, err)
		}
		if candle.Close, err = decimal.NewFromString(entry.Close); err != nil {
			return nil, fmt.Errorf("malformed close price %q: %w", entry.Close, err)
		}
		candle.Volume, _ = strconv.ParseInt(entry.Volume, 10, 64)
		candles = append(candles, candle)
	}

	return candles, nil
}

func (c *AlphaVantageClient) getJSON(ctx context.Context, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from alpha vantage", resp.StatusCode)
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

func parseDecimalField(fields map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := fields[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("missing quote field %q", key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed quote field %q=%q: %w", key, raw, err)
	}
	return value, nil
}
