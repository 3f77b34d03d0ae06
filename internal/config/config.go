package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Market   MarketConfig
	Trading  TradingConfig
	Broker   BrokerConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// MarketConfig holds market data provider configuration.
// The Alpha Vantage free tier key "demo" works for a handful of symbols;
// set ALPHAVANTAGE_API_KEY for real use.
type MarketConfig struct {
	AlphaVantageKey     string
	AlphaVantageBaseURL string
	CoinGeckoBaseURL    string
}

// TradingConfig holds paper-trading configuration.
type TradingConfig struct {
	// DefaultCapital seeds a brand-new account when no persisted state exists.
	DefaultCapital float64
	// RefreshSpec is the cron schedule for the periodic valuation refresh.
	RefreshSpec string
}

// BrokerConfig holds broker credential storage configuration.
type BrokerConfig struct {
	// EncryptionKey is a base64 fernet key used to encrypt stored access
	// tokens. Empty disables broker credential storage.
	EncryptionKey string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	defaultCapital, err := strconv.ParseFloat(getEnv("DEFAULT_CAPITAL", "100000"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_CAPITAL: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/paper_trading.db"),
		},
		Market: MarketConfig{
			AlphaVantageKey:     getEnv("ALPHAVANTAGE_API_KEY", "demo"),
			AlphaVantageBaseURL: getEnv("ALPHAVANTAGE_BASE_URL", "https://www.alphavantage.co/query"),
			CoinGeckoBaseURL:    getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		},
		Trading: TradingConfig{
			DefaultCapital: defaultCapital,
			RefreshSpec:    getEnv("REFRESH_SCHEDULE", "@every 1m"),
		},
		Broker: BrokerConfig{
			EncryptionKey: getEnv("BROKER_ENCRYPTION_KEY", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
