package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
	"github.com/marketdesk/paper-trading-backend/internal/model"
)

// WatchlistRepository provides data access methods for the watchlist_item table.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository with the provided database connection.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// GetItems retrieves all watchlist items in the order they were added.
// Returns an empty slice when the watchlist is empty.
func (r *WatchlistRepository) GetItems() ([]model.WatchlistItem, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, name, added_at
		FROM watchlist_item
		ORDER BY added_at, symbol
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist_item table: %w", err)
	}
	defer rows.Close()

	items := []model.WatchlistItem{}
	for rows.Next() {
		var item model.WatchlistItem
		if err := rows.Scan(&item.ID, &item.Symbol, &item.Name, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist_item table results: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist_item table: %w", err)
	}

	return items, nil
}

// AddItem inserts a new watchlist entry. Adding a symbol that is already
// tracked returns ErrDuplicateEntry.
func (r *WatchlistRepository) AddItem(item model.WatchlistItem) error {
	_, err := r.db.Exec(`
		INSERT INTO watchlist_item (id, symbol, name, added_at)
		VALUES (?, ?, ?, ?)
	`, item.ID, item.Symbol, item.Name, item.AddedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to insert watchlist item: %w", err)
	}
	return nil
}

// DeleteItem removes a watchlist entry by ID.
// Returns ErrWatchlistItemNotFound when no row matches.
func (r *WatchlistRepository) DeleteItem(id string) error {
	result, err := r.db.Exec(`DELETE FROM watchlist_item WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWatchlistItemNotFound
	}

	return nil
}
