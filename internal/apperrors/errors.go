package apperrors

import "errors"

// Business rule errors represent orders the paper account must refuse.
// They are returned before any state is mutated: a rejected order leaves
// the portfolio untouched.
var (
	// ErrInsufficientFunds indicates a buy whose cost exceeds the
	// account's free cash. The simulator allows no margin or leverage.
	ErrInsufficientFunds = errors.New("insufficient funds for purchase")

	// ErrInsufficientHoldings indicates a sell for more shares than the
	// account holds in that symbol (including holding nothing at all).
	ErrInsufficientHoldings = errors.New("insufficient holdings for sale")

	// ErrQuoteUnavailable indicates the quote provider could not resolve
	// a price for the requested symbol.
	ErrQuoteUnavailable = errors.New("quote unavailable for symbol")
)

// Domain entity errors represent missing resources.
var (
	// ErrHoldingNotFound indicates no open position exists for the symbol.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrWatchlistItemNotFound indicates the watchlist entry does not exist.
	ErrWatchlistItemNotFound = errors.New("watchlist item not found")

	// ErrBrokerConfigNotFound indicates broker credentials have not been set up.
	ErrBrokerConfigNotFound = errors.New("broker configuration not found")

	// ErrSymbolNotFound indicates a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Validation errors for malformed input values.
var (
	// ErrInvalidSymbol indicates a blank or malformed symbol.
	ErrInvalidSymbol = errors.New("symbol is required")

	// ErrInvalidQuantity indicates a zero, negative, or non-integer quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidCapital indicates a non-positive starting capital amount.
	ErrInvalidCapital = errors.New("capital must be positive")

	// ErrInvalidPrice indicates a missing or non-positive limit price.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrDuplicateEntry indicates an entity with the same unique constraint
	// already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Persistence errors are reported but never roll back an applied
// in-memory mutation: the session state stays authoritative and
// durability is best-effort.
var (
	// ErrPersistence wraps storage failures surfaced to the caller as a
	// warning alongside an otherwise successful mutation.
	ErrPersistence = errors.New("failed to persist portfolio state")
)
