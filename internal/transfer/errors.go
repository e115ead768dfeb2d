package transfer

import "errors"

var (
	// ErrInvalidRequest occurs for a missing or non-positive amount, or a
	// transfer where both sides are the same account.
	ErrInvalidRequest = errors.New("invalid transfer request")

	// ErrAccountNotFound occurs when either account id does not resolve.
	// The wrapped message names the missing id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCurrencyMismatch occurs when the two accounts differ in currency,
	// or the requested currency differs from the account currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInsufficientBalance occurs when the source balance is below the
	// requested amount at lock time.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
