package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/marketdesk/paper-trading-backend/internal/repository"
	"github.com/marketdesk/paper-trading-backend/internal/testutil"
)

func watchlistItem(symbol string) model.WatchlistItem {
	return model.WatchlistItem{
		ID:      testutil.MakeID(),
		Symbol:  symbol,
		Name:    symbol,
		AddedAt: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestWatchlistRepository(t *testing.T) {
	t.Run("returns empty slice when nothing is tracked", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewWatchlistRepository(db)

		items, err := repo.GetItems()
		if err != nil {
			t.Fatalf("GetItems() returned unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Expected empty watchlist, got %d items", len(items))
		}
	})

	t.Run("add and list round trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewWatchlistRepository(db)

		item := watchlistItem("RELIANCE")
		if err := repo.AddItem(item); err != nil {
			t.Fatalf("AddItem() returned unexpected error: %v", err)
		}

		items, err := repo.GetItems()
		if err != nil {
			t.Fatalf("GetItems() returned unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(items))
		}
		got := items[0]
		if got.ID != item.ID || got.Symbol != "RELIANCE" {
			t.Errorf("Item = %+v, want %+v", got, item)
		}
		if !got.AddedAt.Equal(item.AddedAt) {
			t.Errorf("AddedAt = %v, want %v", got.AddedAt, item.AddedAt)
		}
	})

	t.Run("duplicate symbol is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewWatchlistRepository(db)

		if err := repo.AddItem(watchlistItem("RELIANCE")); err != nil {
			t.Fatalf("First AddItem() failed: %v", err)
		}

		err := repo.AddItem(watchlistItem("RELIANCE"))
		if !errors.Is(err, apperrors.ErrDuplicateEntry) {
			t.Fatalf("Expected ErrDuplicateEntry, got %v", err)
		}
		testutil.AssertRowCount(t, db, "watchlist_item", 1)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewWatchlistRepository(db)

		item := watchlistItem("INFY")
		if err := repo.AddItem(item); err != nil {
			t.Fatalf("AddItem() failed: %v", err)
		}

		if err := repo.DeleteItem(item.ID); err != nil {
			t.Fatalf("DeleteItem() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "watchlist_item", 0)
	})

	t.Run("delete of a missing entry reports not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewWatchlistRepository(db)

		err := repo.DeleteItem(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrWatchlistItemNotFound) {
			t.Fatalf("Expected ErrWatchlistItemNotFound, got %v", err)
		}
	})
}
