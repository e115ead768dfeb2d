package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the fixed set of currencies an account can be denominated in.
// It is immutable after the account is created.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencySGD Currency = "SGD"
)

// ParseCurrency maps a wire-level currency code onto the enumeration.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(code))) {
	case CurrencyUSD:
		return CurrencyUSD, nil
	case CurrencyEUR:
		return CurrencyEUR, nil
	case CurrencySGD:
		return CurrencySGD, nil
	default:
		return "", fmt.Errorf("unknown currency %q", code)
	}
}

// Account is a balance-holding entity owned by a customer. The balance is an
// arbitrary-precision decimal and is never persisted negative; only the
// transfer engine mutates it, while holding the account's registry lock.
type Account struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Balance    decimal.Decimal `json:"balance"`
	Currency   Currency        `json:"currency"`
	CreatedAt  time.Time       `json:"created_at"`
}
