package customer

import (
	"context"
	"fmt"
	"sync"

	"github.com/corebank/corebank/internal/account"
)

type memoryRepository struct {
	mu        sync.RWMutex
	customers map[int64]Customer
	accounts  account.Repository
	lastID    int64
}

// NewMemoryRepository builds an in-memory customer store for tests and for
// running without a database. Opening accounts are created through the
// provided account repository.
func NewMemoryRepository(accounts account.Repository) Repository {
	return &memoryRepository{customers: make(map[int64]Customer), accounts: accounts}
}

func (r *memoryRepository) Create(ctx context.Context, c Customer, accounts []account.Account) (Customer, error) {
	r.mu.Lock()
	r.lastID++
	c.ID = r.lastID
	r.customers[c.ID] = c
	r.mu.Unlock()

	for _, acc := range accounts {
		acc.CustomerID = c.ID
		if _, err := r.accounts.Create(ctx, acc); err != nil {
			return Customer{}, err
		}
	}
	return c, nil
}

func (r *memoryRepository) FetchByID(_ context.Context, id int64) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return Customer{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
	}
	return c, nil
}
