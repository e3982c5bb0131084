package domain

import "errors"

// Business-rule violations are sentinel errors so callers can map each to a
// distinct user-facing message instead of inspecting opaque store errors.
var (
	ErrInvalidInput       = errors.New("quantity and price must be positive")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrHoldingNotFound    = errors.New("no holding for symbol")
	ErrInsufficientShares = errors.New("not enough shares held")
	ErrNotFound           = errors.New("not found")

	// ErrStoreUnavailable means the transaction could not commit after an
	// internal retry. The operation left no partial effects and is safe to
	// resubmit.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrQuoteUnavailable = errors.New("quote provider unavailable")
	ErrSymbolNotFound   = errors.New("symbol not found")
)
