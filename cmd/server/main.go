package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marketdesk/paper-trading-backend/internal/api"
	"github.com/marketdesk/paper-trading-backend/internal/config"
	"github.com/marketdesk/paper-trading-backend/internal/database"
	"github.com/marketdesk/paper-trading-backend/internal/market"
	"github.com/marketdesk/paper-trading-backend/internal/repository"
	"github.com/marketdesk/paper-trading-backend/internal/scheduler"
	"github.com/marketdesk/paper-trading-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	accountRepo := repository.NewAccountRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)

	// Market data clients
	stockClient := market.NewAlphaVantageClient(cfg.Market.AlphaVantageBaseURL, cfg.Market.AlphaVantageKey)
	cryptoClient := market.NewCoinGeckoClient(cfg.Market.CoinGeckoBaseURL)
	marketService := market.NewService(stockClient, cryptoClient)

	// Create services
	systemService := service.NewSystemService(db)
	portfolioService := service.NewPortfolioService(
		accountRepo,
		marketService,
		decimal.NewFromFloat(cfg.Trading.DefaultCapital),
	)
	watchlistService := service.NewWatchlistService(watchlistRepo, marketService)

	var brokerService *service.BrokerService
	if cfg.Broker.EncryptionKey != "" {
		brokerService, err = service.NewBrokerService(repository.NewBrokerRepository(db), cfg.Broker.EncryptionKey)
		if err != nil {
			log.Fatalf("Failed to create broker service: %v", err)
		}
	} else {
		log.Println("BROKER_ENCRYPTION_KEY not set, broker credential storage disabled")
	}

	// Periodic valuation refresh
	refresher, err := scheduler.New(portfolioService, cfg.Trading.RefreshSpec)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	refresher.Start()
	defer refresher.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Portfolio: portfolioService,
		Market:    marketService,
		Watchlist: watchlistService,
		Broker:    brokerService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
