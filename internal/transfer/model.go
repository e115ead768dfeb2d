package transfer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/corebank/internal/account"
)

// Status tracks the single-step lifecycle of a transfer attempt:
// PENDING -> {COMPLETED, FAILED}. There is no transition out of a terminal
// state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Log is the audit record of one transfer attempt. It is created in PENDING
// before any validation runs, so malformed requests are still auditable, and
// receives exactly one terminal update.
type Log struct {
	ID                int64           `json:"id"`
	FromAccountID     int64           `json:"from_account_id"`
	ToAccountID       int64           `json:"to_account_id"`
	Amount            decimal.Decimal `json:"amount"`
	RequestedCurrency string          `json:"requested_currency"`
	Status            Status          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Request captures one transfer invocation. It is an input value, never
// persisted as-is.
type Request struct {
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
	Currency      account.Currency
}
