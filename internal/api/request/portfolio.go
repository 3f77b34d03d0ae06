package request

// ResetPortfolioRequest is the payload for wiping the paper account and
// starting over with a fresh capital amount.
type ResetPortfolioRequest struct {
	Capital float64 `json:"capital"`
}
