package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marketdesk/paper-trading-backend/internal/market"
	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/marketdesk/paper-trading-backend/internal/repository"
)

// WatchlistService manages the user's tracked symbols and decorates
// them with current quotes for display.
type WatchlistService struct {
	repo   *repository.WatchlistRepository
	market *market.Service
	now    func() time.Time
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(repo *repository.WatchlistRepository, marketService *market.Service) *WatchlistService {
	return &WatchlistService{
		repo:   repo,
		market: marketService,
		now:    time.Now,
	}
}

// GetWatchlist returns all tracked symbols with their latest quotes
// attached. A symbol whose quote cannot be resolved is returned without
// one rather than dropped.
func (s *WatchlistService) GetWatchlist(ctx context.Context) ([]model.WatchlistEntry, error) {
	items, err := s.repo.GetItems()
	if err != nil {
		return nil, err
	}

	entries := make([]model.WatchlistEntry, len(items))
	for i, item := range items {
		entries[i] = model.WatchlistEntry{WatchlistItem: item}
		if s.market == nil {
			continue
		}
		quote, err := s.market.StockQuote(ctx, item.Symbol)
		if err == nil {
			entries[i].Quote = &quote
		}
	}
	return entries, nil
}

// AddSymbol starts tracking a symbol. The symbol is uppercased; adding
// an already-tracked symbol returns ErrDuplicateEntry.
func (s *WatchlistService) AddSymbol(symbol, name string) (model.WatchlistItem, error) {
	item := model.WatchlistItem{
		ID:      uuid.NewString(),
		Symbol:  strings.ToUpper(strings.TrimSpace(symbol)),
		Name:    strings.TrimSpace(name),
		AddedAt: s.now().UTC(),
	}
	if item.Name == "" {
		item.Name = item.Symbol
	}

	if err := s.repo.AddItem(item); err != nil {
		return model.WatchlistItem{}, err
	}
	return item, nil
}

// RemoveItem stops tracking the watchlist entry with the given ID.
func (s *WatchlistService) RemoveItem(id string) error {
	return s.repo.DeleteItem(id)
}
