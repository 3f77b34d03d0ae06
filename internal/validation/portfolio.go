package validation

import (
	"github.com/marketdesk/paper-trading-backend/internal/api/request"
)

// ValidateResetPortfolio validates a portfolio reset request.
// The new capital amount must be positive.
func ValidateResetPortfolio(req request.ResetPortfolioRequest) error {
	errors := make(map[string]string)

	if req.Capital <= 0 {
		errors["capital"] = "capital must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
