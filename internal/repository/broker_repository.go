package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
)

// BrokerConfigRow is the stored shape of broker credentials: the access
// token column holds ciphertext, never the plaintext token.
type BrokerConfigRow struct {
	ID             string
	ClientID       string
	EncryptedToken string
	UpdatedAt      time.Time
}

// BrokerRepository provides data access methods for the broker_config table.
type BrokerRepository struct {
	db *sql.DB
}

// NewBrokerRepository creates a new BrokerRepository with the provided database connection.
func NewBrokerRepository(db *sql.DB) *BrokerRepository {
	return &BrokerRepository{db: db}
}

// Get retrieves the stored broker configuration.
// Returns ErrBrokerConfigNotFound when none has been saved.
func (r *BrokerRepository) Get() (BrokerConfigRow, error) {
	var row BrokerConfigRow
	err := r.db.QueryRow(`
		SELECT id, client_id, access_token, updated_at
		FROM broker_config
		LIMIT 1
	`).Scan(&row.ID, &row.ClientID, &row.EncryptedToken, &row.UpdatedAt)
	if err == sql.ErrNoRows {
		return BrokerConfigRow{}, apperrors.ErrBrokerConfigNotFound
	}
	if err != nil {
		return BrokerConfigRow{}, fmt.Errorf("failed to query broker_config table: %w", err)
	}
	return row, nil
}

// Save replaces the stored broker configuration. The table holds at most
// one row; saving clears any previous credentials first.
func (r *BrokerRepository) Save(row BrokerConfigRow) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin broker config save: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err = tx.Exec(`DELETE FROM broker_config`); err != nil {
		return fmt.Errorf("failed to clear broker_config table: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO broker_config (id, client_id, access_token, updated_at)
		VALUES (?, ?, ?, ?)
	`, row.ID, row.ClientID, row.EncryptedToken, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert broker config: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit broker config save: %w", err)
	}
	return nil
}

// Delete removes the stored broker configuration.
// Returns ErrBrokerConfigNotFound when none exists.
func (r *BrokerRepository) Delete() error {
	result, err := r.db.Exec(`DELETE FROM broker_config`)
	if err != nil {
		return fmt.Errorf("failed to delete broker config: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBrokerConfigNotFound
	}

	return nil
}
