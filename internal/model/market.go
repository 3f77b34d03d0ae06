package model

import "github.com/shopspring/decimal"

// Quote is a point-in-time price for a stock symbol.
type Quote struct {
	Symbol        string          `json:"symbol"`
	CompanyName   string          `json:"companyName"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	PercentChange decimal.Decimal `json:"percentChange"`
	Volume        int64           `json:"volume"`
	High          decimal.Decimal `json:"high"`
	Low           decimal.Decimal `json:"low"`
	Open          decimal.Decimal `json:"open"`
	PreviousClose decimal.Decimal `json:"previousClose"`
}

// MarketIndex is a summary row for a market index or currency pair.
type MarketIndex struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	PercentChange decimal.Decimal `json:"percentChange"`
}

// CryptoAsset is a market summary row for one cryptocurrency.
type CryptoAsset struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	PercentChange decimal.Decimal `json:"percentChange"`
	MarketCap     int64           `json:"marketCap,omitempty"`
	Volume24h     int64           `json:"volume24h,omitempty"`
	Image         string          `json:"image,omitempty"`
}

// Candle is one bar of historical price data. Time is empty for daily bars.
type Candle struct {
	Date   string          `json:"date"`
	Time   string          `json:"time,omitempty"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}
