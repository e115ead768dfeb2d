package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corebank/corebank/internal/account"
	"github.com/corebank/corebank/internal/customer"
	"github.com/corebank/corebank/internal/logging"
)

func TestLoadFixtures(t *testing.T) {
	accounts := account.NewMemoryRepository()
	customers := customer.NewService(customer.NewMemoryRepository(accounts), accounts)

	if err := Load(context.Background(), customers, logging.Discard()); err != nil {
		t.Fatalf("load seed: %v", err)
	}

	// Five customers with seven accounts in total; the last customer owns
	// the same-currency pair used for transfer smoke testing.
	last, err := customers.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("fetch seeded customer: %v", err)
	}
	if last.FirstName != "Matthew" || last.LastName != "Miller" {
		t.Fatalf("unexpected seeded customer: %+v", last)
	}

	accs, err := customers.Accounts(context.Background(), last.ID)
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(accs) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accs))
	}
	for _, acc := range accs {
		if acc.Currency != account.CurrencySGD {
			t.Fatalf("expected SGD account, got %s", acc.Currency)
		}
	}
	if !accs[0].Balance.Equal(decimal.NewFromInt(50000)) || !accs[1].Balance.Equal(decimal.NewFromInt(67000)) {
		t.Fatalf("unexpected seeded balances: %s and %s", accs[0].Balance, accs[1].Balance)
	}
}
