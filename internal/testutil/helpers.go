package testutil

import (
	"database/sql"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/shopspring/decimal"

	"github.com/marketdesk/paper-trading-backend/internal/market"
	"github.com/marketdesk/paper-trading-backend/internal/repository"
	"github.com/marketdesk/paper-trading-backend/internal/service"
)

// DefaultTestCapital seeds test accounts that don't care about the
// exact starting amount.
const DefaultTestCapital = 100000

// NewTestPortfolioService builds a PortfolioService on the given
// database and quote provider, seeded with the default test capital.
func NewTestPortfolioService(t *testing.T, db *sql.DB, quotes market.Provider) *service.PortfolioService {
	t.Helper()

	accountRepo := repository.NewAccountRepository(db)

	return service.NewPortfolioService(
		accountRepo,
		quotes,
		decimal.NewFromInt(DefaultTestCapital),
	)
}

// NewTestSystemService builds a SystemService on the given database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db)
}

// NewTestBrokerService builds a BrokerService with a freshly generated
// encryption key.
func NewTestBrokerService(t *testing.T, db *sql.DB) *service.BrokerService {
	t.Helper()

	brokerRepo := repository.NewBrokerRepository(db)
	svc, err := service.NewBrokerService(brokerRepo, TestEncryptionKey(t))
	if err != nil {
		t.Fatalf("Failed to create broker service: %v", err)
	}
	return svc
}

// TestEncryptionKey generates a throwaway fernet key for tests.
func TestEncryptionKey(t *testing.T) string {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}
	return key.Encode()
}
