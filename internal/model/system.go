package model

// VersionInfo contains version information for the application.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	DbVersion  int64  `json:"db_version"`
}

// MarketStatus reports whether each market is currently open for trading.
type MarketStatus struct {
	StockMarketOpen  bool `json:"stockMarketOpen"`
	CryptoMarketOpen bool `json:"cryptoMarketOpen"`
}
