package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/corebank/internal/account"
)

// ErrInvalidOnboardRequest occurs when an onboarding request fails
// validation.
var ErrInvalidOnboardRequest = errors.New("invalid onboard request")

// Service manages customer onboarding and lookups.
type Service struct {
	repo     Repository
	accounts account.Repository
}

// NewService creates a customer service.
func NewService(repo Repository, accounts account.Repository) *Service {
	return &Service{repo: repo, accounts: accounts}
}

// OpeningAccount describes one account to create during onboarding.
type OpeningAccount struct {
	Balance  decimal.Decimal
	Currency account.Currency
}

// OnboardInput captures the data required to onboard a customer.
type OnboardInput struct {
	FirstName string
	LastName  string
	Accounts  []OpeningAccount
}

// Onboard validates the request and creates the customer with its opening
// accounts in one unit of work.
func (s *Service) Onboard(ctx context.Context, input OnboardInput) (Customer, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return Customer{}, fmt.Errorf("%w: first name or last name cannot be empty", ErrInvalidOnboardRequest)
	}
	if len(input.Accounts) == 0 {
		return Customer{}, fmt.Errorf("%w: no accounts found to onboard customer", ErrInvalidOnboardRequest)
	}

	now := time.Now().UTC()
	accounts := make([]account.Account, 0, len(input.Accounts))
	for _, opening := range input.Accounts {
		if opening.Balance.Sign() < 0 {
			return Customer{}, fmt.Errorf("%w: account with negative balance cannot be onboarded", ErrInvalidOnboardRequest)
		}
		accounts = append(accounts, account.Account{
			Balance:   opening.Balance,
			Currency:  opening.Currency,
			CreatedAt: now,
		})
	}

	return s.repo.Create(ctx, Customer{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		CreatedAt: now,
	}, accounts)
}

// Get retrieves a customer by id.
func (s *Service) Get(ctx context.Context, id int64) (Customer, error) {
	return s.repo.FetchByID(ctx, id)
}

// Accounts returns the customer's accounts, verifying the customer exists.
func (s *Service) Accounts(ctx context.Context, id int64) ([]account.Account, error) {
	if _, err := s.repo.FetchByID(ctx, id); err != nil {
		return nil, err
	}
	return s.accounts.ListByCustomer(ctx, id)
}
