package validation

import (
	"strings"

	"github.com/marketdesk/paper-trading-backend/internal/api/request"
)

// ValidateAddWatchlistItem validates a watchlist add request.
//
// Required fields:
//   - symbol: Non-blank, at most 20 characters
//
// Optional but constrained:
//   - name: At most 100 characters
func ValidateAddWatchlistItem(req request.AddWatchlistItemRequest) error {
	errors := make(map[string]string)

	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		errors["symbol"] = "symbol is required"
	} else if len(symbol) > 20 {
		errors["symbol"] = "symbol must be 20 characters or less"
	}

	if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
