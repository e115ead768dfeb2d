package account

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Memory stores hand out ids from 1001 upwards, mirroring the sequence used
// by the database schema.
const firstMemoryID = 1000

type memoryRepository struct {
	mu       sync.RWMutex
	accounts map[int64]Account
	lastID   int64
}

// NewMemoryRepository constructs an in-memory account store for tests and
// for running the service without a database.
func NewMemoryRepository() Repository {
	return &memoryRepository{accounts: make(map[int64]Account), lastID: firstMemoryID}
}

func (r *memoryRepository) Create(_ context.Context, acc Account) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if acc.ID == 0 {
		r.lastID++
		acc.ID = r.lastID
	} else {
		if _, exists := r.accounts[acc.ID]; exists {
			return Account{}, fmt.Errorf("account %d exists", acc.ID)
		}
		if acc.ID > r.lastID {
			r.lastID = acc.ID
		}
	}
	r.accounts[acc.ID] = acc
	return acc, nil
}

func (r *memoryRepository) FetchByID(_ context.Context, id int64) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[id]
	if !ok {
		return Account{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
	}
	return acc, nil
}

func (r *memoryRepository) ListByCustomer(_ context.Context, customerID int64) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var accounts []Account
	for _, acc := range r.accounts {
		if acc.CustomerID == customerID {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *memoryRepository) UpdateBalances(_ context.Context, from, to Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range []Account{from, to} {
		if _, ok := r.accounts[acc.ID]; !ok {
			return fmt.Errorf("%w: id=%d", ErrNotFound, acc.ID)
		}
	}
	r.accounts[from.ID] = from
	r.accounts[to.ID] = to
	return nil
}
