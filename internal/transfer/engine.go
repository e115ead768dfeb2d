package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/corebank/corebank/internal/account"
	"github.com/corebank/corebank/internal/notification"
)

// Engine moves funds between two accounts. It validates the request,
// acquires both account locks in ascending-id order with non-blocking tries,
// mutates the balances as one persisted transaction and records an audit log
// for every attempt.
//
// Transfer returns (false, nil) when the locks could not be acquired. That
// is a contention outcome, not an error; the caller may retry.
type Engine struct {
	accounts account.Repository
	logs     LogStore
	locks    *lockRegistry
	notifier notification.Notifier
	logger   *slog.Logger

	// lookupMu serializes the account pair fetch so both accounts are
	// resolved consistently before validation. It is never held across
	// balance mutation.
	lookupMu sync.Mutex
}

// NewEngine builds a transfer engine. The notifier may be nil.
func NewEngine(accounts account.Repository, logs LogStore, notifier notification.Notifier, logger *slog.Logger) *Engine {
	return &Engine{
		accounts: accounts,
		logs:     logs,
		locks:    newLockRegistry(),
		notifier: notifier,
		logger:   logger,
	}
}

// Transfer executes one transfer attempt. Every invocation writes exactly
// one log record with a terminal status, except when creating the record
// itself fails, in which case that failure propagates with nothing to
// update.
func (e *Engine) Transfer(ctx context.Context, req Request) (bool, error) {
	lg, err := e.logs.Create(ctx, Log{
		FromAccountID:     req.FromAccountID,
		ToAccountID:       req.ToAccountID,
		Amount:            req.Amount,
		RequestedCurrency: string(req.Currency),
		Status:            StatusPending,
	})
	if err != nil {
		return false, fmt.Errorf("create transfer log: %w", err)
	}

	ok, err := e.execute(ctx, req)

	status := StatusFailed
	if ok && err == nil {
		status = StatusCompleted
	}
	// Best effort: a failed status update must never mask the transfer
	// outcome.
	if uerr := e.logs.UpdateStatus(ctx, lg.ID, status); uerr != nil {
		e.logger.Error("update transfer log", "log_id", lg.ID, "status", string(status), "error", uerr)
	}

	return ok, err
}

func (e *Engine) execute(ctx context.Context, req Request) (bool, error) {
	if req.Amount.Sign() <= 0 {
		return false, fmt.Errorf("%w: invalid amount to transfer", ErrInvalidRequest)
	}

	from, to, err := e.fetchPair(ctx, req.FromAccountID, req.ToAccountID)
	if err != nil {
		return false, err
	}

	if err := validatePair(from, to, req.Currency); err != nil {
		return false, err
	}

	return e.guardedTransfer(ctx, from.ID, to.ID, req.Amount)
}

// fetchPair resolves both accounts inside one critical section.
func (e *Engine) fetchPair(ctx context.Context, fromID, toID int64) (account.Account, account.Account, error) {
	e.lookupMu.Lock()
	defer e.lookupMu.Unlock()

	from, err := e.accounts.FetchByID(ctx, fromID)
	if err != nil {
		return account.Account{}, account.Account{}, notFound(err, fromID)
	}
	to, err := e.accounts.FetchByID(ctx, toID)
	if err != nil {
		return account.Account{}, account.Account{}, notFound(err, toID)
	}
	return from, to, nil
}

func notFound(err error, id int64) error {
	if errors.Is(err, account.ErrNotFound) {
		return fmt.Errorf("%w: account number not found = %d", ErrAccountNotFound, id)
	}
	return err
}

func validatePair(from, to account.Account, requested account.Currency) error {
	if from.ID == to.ID {
		return fmt.Errorf("%w: cannot transfer funds within the same account = %d", ErrInvalidRequest, from.ID)
	}
	if from.Currency != to.Currency {
		return fmt.Errorf("%w: given accounts have different currencies of %s and %s",
			ErrCurrencyMismatch, from.Currency, to.Currency)
	}
	if from.Currency != requested {
		return fmt.Errorf("%w: transfer currency %s and account currency %s are different",
			ErrCurrencyMismatch, requested, from.Currency)
	}
	return nil
}

// guardedTransfer performs the balance mutation under both account locks.
//
// Locks are always attempted in ascending account-id order, which totally
// orders acquisition across all transfers and rules out circular waits. The
// tries are non-blocking: losing either try aborts with (false, nil) and no
// mutation. Deferred unlocks run last-in first-out, so release is the
// reverse of acquisition on every exit path.
func (e *Engine) guardedTransfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (bool, error) {
	firstID, secondID := fromID, toID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	lock1 := e.locks.get(firstID)
	if !lock1.TryLock() {
		return false, nil
	}
	defer lock1.Unlock()

	lock2 := e.locks.get(secondID)
	if !lock2.TryLock() {
		return false, nil
	}
	defer lock2.Unlock()

	// Re-read under both locks: any concurrent transfer touching either
	// account has already committed and released.
	from, err := e.accounts.FetchByID(ctx, fromID)
	if err != nil {
		return false, notFound(err, fromID)
	}
	to, err := e.accounts.FetchByID(ctx, toID)
	if err != nil {
		return false, notFound(err, toID)
	}

	if amount.GreaterThan(from.Balance) {
		return false, fmt.Errorf("%w: the balance in the account is not sufficient for this transfer", ErrInsufficientBalance)
	}

	e.logger.Info("transferring funds",
		"amount", amount.String(), "from_account", from.ID, "to_account", to.ID)

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)

	if err := e.accounts.UpdateBalances(ctx, from, to); err != nil {
		return false, fmt.Errorf("persist balances: %w", err)
	}

	e.notifyCredit(ctx, to, amount)

	return true, nil
}

func (e *Engine) notifyCredit(ctx context.Context, to account.Account, amount decimal.Decimal) {
	if e.notifier == nil {
		return
	}
	_ = e.notifier.Send(ctx, notification.Message{
		Kind:        notification.KindTransferCredit,
		Destination: strconv.FormatInt(to.CustomerID, 10),
		Body:        fmt.Sprintf("Account %d received %s %s", to.ID, amount, to.Currency),
	})
}
