package market

import (
	"math/rand"

	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/shopspring/decimal"
)

// Fallback data for when the upstream APIs are unreachable or rate
// limited. The dashboard keeps working on demo prices rather than
// showing an empty screen.

func fallbackIndices() []model.MarketIndex {
	base := []model.MarketIndex{
		{Symbol: "^NSEI", Name: "NIFTY 50", Price: decimal.NewFromFloat(22523.65), Change: decimal.NewFromFloat(152.35), PercentChange: decimal.NewFromFloat(0.68)},
		{Symbol: "^BSESN", Name: "SENSEX", Price: decimal.NewFromFloat(73954.83), Change: decimal.NewFromFloat(529.9), PercentChange: decimal.NewFromFloat(0.72)},
		{Symbol: "^NSEBANK", Name: "NIFTY BANK", Price: decimal.NewFromFloat(48235.10), Change: decimal.NewFromFloat(-112.35), PercentChange: decimal.NewFromFloat(-0.23)},
		{Symbol: "INR=X", Name: "USD/INR", Price: decimal.NewFromFloat(83.20), Change: decimal.NewFromFloat(-0.12), PercentChange: decimal.NewFromFloat(-0.15)},
	}

	// Jitter each index a little so repeated polls look alive.
	hundred := decimal.NewFromInt(100)
	for i := range base {
		jitter := decimal.NewFromFloat((rand.Float64() - 0.5) * 20).Round(2)
		price := base[i].Price.Add(jitter)
		change := base[i].Change.Add(jitter)
		prev := price.Sub(change)
		base[i].Price = price.Round(2)
		base[i].Change = change.Round(2)
		if !prev.IsZero() {
			base[i].PercentChange = change.Div(prev).Mul(hundred).Round(2)
		}
	}
	return base
}

func fallbackCryptoAssets() []model.CryptoAsset {
	return []model.CryptoAsset{
		{Symbol: "BTC", Name: "Bitcoin", Price: decimal.NewFromFloat(63254.32), Change: decimal.NewFromFloat(1254.21), PercentChange: decimal.NewFromFloat(2.03), MarketCap: 1243000000000, Volume24h: 32546000000},
		{Symbol: "ETH", Name: "Ethereum", Price: decimal.NewFromFloat(3126.45), Change: decimal.NewFromFloat(-42.65), PercentChange: decimal.NewFromFloat(-1.34), MarketCap: 375200000000, Volume24h: 14325000000},
		{Symbol: "BNB", Name: "Binance Coin", Price: decimal.NewFromFloat(563.21), Change: decimal.NewFromFloat(12.43), PercentChange: decimal.NewFromFloat(2.26), MarketCap: 85600000000, Volume24h: 3421000000},
		{Symbol: "SOL", Name: "Solana", Price: decimal.NewFromFloat(143.56), Change: decimal.NewFromFloat(5.21), PercentChange: decimal.NewFromFloat(3.76), MarketCap: 62400000000, Volume24h: 2765000000},
		{Symbol: "XRP", Name: "XRP", Price: decimal.NewFromFloat(0.532), Change: decimal.NewFromFloat(-0.021), PercentChange: decimal.NewFromFloat(-3.79), MarketCap: 29300000000, Volume24h: 1254000000},
	}
}

// fallbackStocks are last-known demo prices for the symbols the
// dashboard ships with.
var fallbackStocks = map[string]model.Quote{
	"RELIANCE":   {Symbol: "RELIANCE", CompanyName: "Reliance Industries", Price: decimal.NewFromFloat(2885.20), Change: decimal.NewFromFloat(48.75), PercentChange: decimal.NewFromFloat(1.72)},
	"HDFCBANK":   {Symbol: "HDFCBANK", CompanyName: "HDFC Bank", Price: decimal.NewFromFloat(1642.75), Change: decimal.NewFromFloat(34.55), PercentChange: decimal.NewFromFloat(2.15)},
	"INFY":       {Symbol: "INFY", CompanyName: "Infosys Ltd", Price: decimal.NewFromFloat(1520.45), Change: decimal.NewFromFloat(31.85), PercentChange: decimal.NewFromFloat(2.14)},
	"TCS":        {Symbol: "TCS", CompanyName: "Tata Consultancy", Price: decimal.NewFromFloat(3945.30), Change: decimal.NewFromFloat(-19.05), PercentChange: decimal.NewFromFloat(-0.48)},
	"TATAMOTORS": {Symbol: "TATAMOTORS", CompanyName: "Tata Motors", Price: decimal.NewFromFloat(952.50), Change: decimal.NewFromFloat(-12.75), PercentChange: decimal.NewFromFloat(-1.32)},
}
