package database_test

import (
	"path/filepath"
	"testing"

	"github.com/marketdesk/paper-trading-backend/internal/database"
)

func TestOpen(t *testing.T) {
	t.Run("creates and migrates a fresh database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.db")

		db, err := database.Open(path)
		if err != nil {
			t.Fatalf("Open() returned unexpected error: %v", err)
		}
		defer db.Close()

		version, err := database.SchemaVersion(db)
		if err != nil {
			t.Fatalf("SchemaVersion() returned unexpected error: %v", err)
		}
		if version < 1 {
			t.Errorf("Schema version = %d, want >= 1", version)
		}

		// All application tables exist after migration.
		for _, table := range []string{"account", "holding", "trade", "watchlist_item", "broker_config"} {
			var name string
			err := db.QueryRow(
				`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
			).Scan(&name)
			if err != nil {
				t.Errorf("Table %s missing after migration: %v", table, err)
			}
		}
	})

	t.Run("opening an already-migrated database is a no-op", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.db")

		db, err := database.Open(path)
		if err != nil {
			t.Fatalf("First Open() failed: %v", err)
		}
		db.Close()

		db, err = database.Open(path)
		if err != nil {
			t.Fatalf("Second Open() failed: %v", err)
		}
		defer db.Close()

		if err := database.HealthCheck(db); err != nil {
			t.Errorf("HealthCheck() returned unexpected error: %v", err)
		}
	})
}
