package service

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/marketdesk/paper-trading-backend/internal/model"
	"github.com/marketdesk/paper-trading-backend/internal/repository"
)

// BrokerService stores the connected broker's API credentials. Access
// tokens are fernet-encrypted before they touch the database and only
// decrypted on read.
type BrokerService struct {
	repo *repository.BrokerRepository
	key  *fernet.Key
	now  func() time.Time
}

// NewBrokerService creates a BrokerService. encryptionKey must be a
// base64 fernet key.
func NewBrokerService(repo *repository.BrokerRepository, encryptionKey string) (*BrokerService, error) {
	key, err := fernet.DecodeKey(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("invalid broker encryption key: %w", err)
	}
	return &BrokerService{
		repo: repo,
		key:  key,
		now:  time.Now,
	}, nil
}

// SaveConfig encrypts and stores broker credentials, replacing any
// previous ones.
func (s *BrokerService) SaveConfig(clientID, accessToken string) (model.BrokerConfig, error) {
	ciphertext, err := fernet.EncryptAndSign([]byte(accessToken), s.key)
	if err != nil {
		return model.BrokerConfig{}, fmt.Errorf("failed to encrypt access token: %w", err)
	}

	row := repository.BrokerConfigRow{
		ID:             uuid.NewString(),
		ClientID:       clientID,
		EncryptedToken: string(ciphertext),
		UpdatedAt:      s.now().UTC(),
	}
	if err := s.repo.Save(row); err != nil {
		return model.BrokerConfig{}, err
	}

	return model.BrokerConfig{
		ID:          row.ID,
		ClientID:    row.ClientID,
		AccessToken: accessToken,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// GetConfig retrieves and decrypts the stored broker credentials.
func (s *BrokerService) GetConfig() (model.BrokerConfig, error) {
	row, err := s.repo.Get()
	if err != nil {
		return model.BrokerConfig{}, err
	}

	// TTL 0: stored tokens do not expire on our side.
	plaintext := fernet.VerifyAndDecrypt([]byte(row.EncryptedToken), 0, []*fernet.Key{s.key})
	if plaintext == nil {
		return model.BrokerConfig{}, fmt.Errorf("failed to decrypt stored access token")
	}

	return model.BrokerConfig{
		ID:          row.ID,
		ClientID:    row.ClientID,
		AccessToken: string(plaintext),
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// ClearConfig removes the stored broker credentials.
func (s *BrokerService) ClearConfig() error {
	return s.repo.Delete()
}
