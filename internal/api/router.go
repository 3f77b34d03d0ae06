package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/marketdesk/paper-trading-backend/internal/api/handlers"
	custommiddleware "github.com/marketdesk/paper-trading-backend/internal/api/middleware"
	"github.com/marketdesk/paper-trading-backend/internal/config"
	"github.com/marketdesk/paper-trading-backend/internal/market"
	"github.com/marketdesk/paper-trading-backend/internal/service"
)

// Services bundles the application services the router exposes.
// Broker may be nil when no encryption key is configured; the broker
// routes are then not mounted.
type Services struct {
	System    *service.SystemService
	Portfolio *service.PortfolioService
	Market    *market.Service
	Watchlist *service.WatchlistService
	Broker    *service.BrokerService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(services.Portfolio)
			r.Get("/", portfolioHandler.Portfolio)
			r.Get("/summary", portfolioHandler.Summary)
			r.Post("/orders", portfolioHandler.PlaceOrder)
			r.Post("/reset", portfolioHandler.Reset)
			r.Post("/refresh", portfolioHandler.Refresh)
		})

		r.Route("/market", func(r chi.Router) {
			marketHandler := handlers.NewMarketHandler(services.Market)
			r.Get("/indices", marketHandler.Indices)
			r.Get("/crypto", marketHandler.CryptoAssets)
			r.Get("/crypto/{symbol}/history", marketHandler.CryptoHistory)
			r.Get("/stocks/{symbol}", marketHandler.StockQuote)
			r.Get("/stocks/{symbol}/history", marketHandler.StockHistory)
			r.Get("/status", marketHandler.Status)
		})

		r.Route("/watchlist", func(r chi.Router) {
			watchlistHandler := handlers.NewWatchlistHandler(services.Watchlist)
			r.Get("/", watchlistHandler.Watchlist)
			r.Post("/", watchlistHandler.AddItem)
			r.Delete("/{id}", watchlistHandler.RemoveItem)
		})

		r.Route("/assistant", func(r chi.Router) {
			assistantHandler := handlers.NewAssistantHandler()
			r.Get("/greeting", assistantHandler.Greeting)
			r.Post("/message", assistantHandler.Message)
		})

		if services.Broker != nil {
			r.Route("/broker", func(r chi.Router) {
				brokerHandler := handlers.NewBrokerHandler(services.Broker)
				r.Get("/", brokerHandler.Config)
				r.Put("/", brokerHandler.SaveConfig)
				r.Delete("/", brokerHandler.ClearConfig)
			})
		}
	})

	return r
}
