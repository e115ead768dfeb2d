package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/corebank/corebank/internal/account"
	"github.com/corebank/corebank/internal/customer"
)

type fixture struct {
	firstName string
	lastName  string
	accounts  []customer.OpeningAccount
}

func opening(balance int64, currency account.Currency) customer.OpeningAccount {
	return customer.OpeningAccount{Balance: decimal.NewFromInt(balance), Currency: currency}
}

var fixtures = []fixture{
	{"Christopher", "Williams", []customer.OpeningAccount{opening(10000, account.CurrencySGD)}},
	{"Joseph", "Taylor", []customer.OpeningAccount{opening(20000, account.CurrencyUSD)}},
	{"Daniel", "Brown", []customer.OpeningAccount{opening(30000, account.CurrencyEUR)}},
	// two accounts for the same customer with different currencies
	{"Joshua", "Johnson", []customer.OpeningAccount{
		opening(40000, account.CurrencyUSD),
		opening(22000, account.CurrencySGD),
	}},
	// two accounts for the same customer with the same currency
	{"Matthew", "Miller", []customer.OpeningAccount{
		opening(50000, account.CurrencySGD),
		opening(67000, account.CurrencySGD),
	}},
}

// Load onboards the fixture customers. It is run at startup when the service
// uses in-memory stores, so the API is usable without a database.
func Load(ctx context.Context, customers *customer.Service, logger *slog.Logger) error {
	for _, f := range fixtures {
		created, err := customers.Onboard(ctx, customer.OnboardInput{
			FirstName: f.firstName,
			LastName:  f.lastName,
			Accounts:  f.accounts,
		})
		if err != nil {
			return fmt.Errorf("seed customer %s %s: %w", f.firstName, f.lastName, err)
		}
		logger.Info("seeded customer", "customer_id", created.ID, "accounts", len(f.accounts))
	}
	return nil
}
