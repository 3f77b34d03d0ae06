package model

import "time"

// WatchlistItem is one tracked symbol on the user's watchlist.
type WatchlistItem struct {
	ID      string    `json:"id"`
	Symbol  string    `json:"symbol"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"addedAt"`
}

// WatchlistEntry is a watchlist item joined with its latest quote for
// display. Quote is nil when no price could be resolved.
type WatchlistEntry struct {
	WatchlistItem
	Quote *Quote `json:"quote,omitempty"`
}
