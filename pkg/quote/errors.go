package quote

import "errors"

var (
	// ErrInvalidSize rejects non-positive notional sizes.
	ErrInvalidSize = errors.New("quote: size must be positive")
	// ErrInvalidLeverage rejects leverage outside [1, 100].
	ErrInvalidLeverage = errors.New("quote: leverage must be between 1 and 100")
	// ErrInvalidAddress rejects a malformed signer address.
	ErrInvalidAddress = errors.New("quote: invalid signer address")
)
