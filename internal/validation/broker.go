package validation

import (
	"strings"

	"github.com/marketdesk/paper-trading-backend/internal/api/request"
)

// ValidateSaveBrokerConfig validates a broker credential save request.
// Both the client ID and the access token are required.
func ValidateSaveBrokerConfig(req request.SaveBrokerConfigRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.ClientID) == "" {
		errors["clientId"] = "clientId is required"
	}

	if strings.TrimSpace(req.AccessToken) == "" {
		errors["accessToken"] = "accessToken is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
