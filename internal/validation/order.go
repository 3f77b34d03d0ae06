package validation

import (
	"fmt"
	"strings"

	"github.com/marketdesk/paper-trading-backend/internal/api/request"
	"github.com/marketdesk/paper-trading-backend/internal/model"
)

// ValidOrderSide contains the allowed order side values.
var ValidOrderSide = map[string]bool{
	string(model.OrderSideBuy): true, string(model.OrderSideSell): true,
}

// ValidOrderType contains the allowed order type values.
var ValidOrderType = map[string]bool{
	string(model.OrderTypeMarket):   true,
	string(model.OrderTypeLimit):    true,
	string(model.OrderTypeStopLoss): true,
}

// ValidatePlaceOrder validates an order placement request.
//
// Required fields:
//   - symbol: Non-blank, at most 20 characters
//   - quantity: Must be a positive integer
//   - side: Must be one of: buy, sell
//   - type: Must be one of: market, limit, stop_loss
//   - limitPrice: Required and positive for limit and stop_loss orders
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidatePlaceOrder(req request.PlaceOrderRequest) error {
	errors := make(map[string]string)

	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		errors["symbol"] = "symbol is required"
	} else if len(symbol) > 20 {
		errors["symbol"] = "symbol must be 20 characters or less"
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be a positive integer"
	}

	if strings.TrimSpace(req.Side) == "" {
		errors["side"] = "side is required"
	} else if !ValidOrderSide[req.Side] {
		errors["side"] = fmt.Sprintf("invalid side: %s", req.Side)
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidOrderType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Type == string(model.OrderTypeLimit) || req.Type == string(model.OrderTypeStopLoss) {
		if req.LimitPrice == nil {
			errors["limitPrice"] = "limitPrice is required for limit and stop_loss orders"
		} else if *req.LimitPrice <= 0 {
			errors["limitPrice"] = "limitPrice must be positive"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
