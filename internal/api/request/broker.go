package request

// SaveBrokerConfigRequest is the payload for storing broker API credentials.
type SaveBrokerConfigRequest struct {
	ClientID    string `json:"clientId"`
	AccessToken string `json:"accessToken"`
}
