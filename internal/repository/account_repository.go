package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultAccountID identifies the single paper-trading account. The
// simulator is single-user; one row in the account table is all there is.
const DefaultAccountID = "default"

// AccountRepository persists the full portfolio aggregate: the account's
// capital line, its holdings, and its trade ledger. Saves always write
// the complete state in one transaction so a crash can never leave the
// tables describing two different portfolios.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Load reads the persisted portfolio state. The second return value is
// false when no account row exists yet (fresh database).
func (r *AccountRepository) Load() (model.PortfolioState, bool, error) {
	var state model.PortfolioState

	err := r.db.QueryRow(
		`SELECT capital FROM account WHERE id = ?`, DefaultAccountID,
	).Scan(&state.Capital)
	if err == sql.ErrNoRows {
		return model.PortfolioState{}, false, nil
	}
	if err != nil {
		return model.PortfolioState{}, false, fmt.Errorf("failed to query account: %w", err)
	}

	holdings, err := r.loadHoldings()
	if err != nil {
		return model.PortfolioState{}, false, err
	}
	state.Holdings = holdings

	transactions, err := r.loadTransactions()
	if err != nil {
		return model.PortfolioState{}, false, err
	}
	state.Transactions = transactions

	return state, true, nil
}

func (r *AccountRepository) loadHoldings() ([]model.Holding, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, name, quantity, buy_price, current_price
		FROM holding
		WHERE account_id = ?
		ORDER BY position
	`, DefaultAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		var h model.Holding
		err := rows.Scan(
			&h.ID,
			&h.Symbol,
			&h.Name,
			&h.Quantity,
			&h.BuyPrice,
			&h.CurrentPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		// P&L fields are derived, not stored.
		qty := decimal.NewFromInt(h.Quantity)
		h.ProfitLoss = h.CurrentPrice.Sub(h.BuyPrice).Mul(qty)
		basis := h.BuyPrice.Mul(qty)
		if !basis.IsZero() {
			h.ProfitLossPercent = h.ProfitLoss.Div(basis).Mul(decimal.NewFromInt(100))
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

func (r *AccountRepository) loadTransactions() ([]model.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT id, timestamp, symbol, type, quantity, price, value, realized_gain_loss
		FROM trade
		WHERE account_id = ?
		ORDER BY position
	`, DefaultAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		err := rows.Scan(
			&t.ID,
			&t.Timestamp,
			&t.Symbol,
			&t.Type,
			&t.Quantity,
			&t.Price,
			&t.Value,
			&t.RealizedGainLoss,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return transactions, nil
}

// Save writes the complete portfolio state, replacing whatever was
// persisted before. Runs in a single transaction.
func (r *AccountRepository) Save(state model.PortfolioState) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	now := time.Now().UTC()
	_, err = tx.Exec(`
		INSERT INTO account (id, capital, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET capital = excluded.capital, updated_at = excluded.updated_at
	`, DefaultAccountID, state.Capital, now)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM holding WHERE account_id = ?`, DefaultAccountID); err != nil {
		return fmt.Errorf("failed to clear holding table: %w", err)
	}
	for i, h := range state.Holdings {
		_, err = tx.Exec(`
			INSERT INTO holding (id, account_id, symbol, name, quantity, buy_price, current_price, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, h.ID, DefaultAccountID, h.Symbol, h.Name, h.Quantity, h.BuyPrice, h.CurrentPrice, i)
		if err != nil {
			return fmt.Errorf("failed to insert holding %s: %w", h.Symbol, err)
		}
	}

	if _, err = tx.Exec(`DELETE FROM trade WHERE account_id = ?`, DefaultAccountID); err != nil {
		return fmt.Errorf("failed to clear trade table: %w", err)
	}
	for i, t := range state.Transactions {
		_, err = tx.Exec(`
			INSERT INTO trade (id, account_id, timestamp, symbol, type, quantity, price, value, realized_gain_loss, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID, DefaultAccountID, t.Timestamp.UTC(), t.Symbol, string(t.Type), t.Quantity, t.Price, t.Value, t.RealizedGainLoss, i)
		if err != nil {
			return fmt.Errorf("failed to insert trade %s: %w", t.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save transaction: %w", err)
	}

	return nil
}
