package request

// PlaceOrderRequest is the payload for placing a paper trade.
// LimitPrice is required for limit and stop_loss orders.
type PlaceOrderRequest struct {
	Symbol     string   `json:"symbol"`
	Quantity   int64    `json:"quantity"`
	Side       string   `json:"side"`
	Type       string   `json:"type"`
	LimitPrice *float64 `json:"limitPrice,omitempty"`
}
