package request

// AddWatchlistItemRequest is the payload for tracking a new symbol.
type AddWatchlistItemRequest struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
