package model

import "time"

// BrokerConfig holds the connected broker's API credentials. The access
// token is encrypted at rest; this struct always carries the plaintext.
type BrokerConfig struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	AccessToken string    `json:"accessToken"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
