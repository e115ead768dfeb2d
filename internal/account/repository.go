package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the requested account id does not resolve.
var ErrNotFound = errors.New("account not found")

// Repository persists accounts.
//
// UpdateBalances is the transaction boundary for the transfer engine: both
// rows commit together or neither does. Callers are expected to hold the
// per-account locks for both rows while calling it.
type Repository interface {
	Create(ctx context.Context, acc Account) (Account, error)
	FetchByID(ctx context.Context, id int64) (Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Account, error)
	UpdateBalances(ctx context.Context, from, to Account) error
}

// PostgresRepository stores accounts in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an account row and returns it with the assigned id.
func (r *PostgresRepository) Create(ctx context.Context, acc Account) (Account, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO accounts (customer_id, balance, currency, created_at)
        VALUES ($1, $2, $3, $4) RETURNING id`,
		acc.CustomerID, acc.Balance, string(acc.Currency), acc.CreatedAt.UTC())
	if err := row.Scan(&acc.ID); err != nil {
		return Account{}, err
	}
	return acc, nil
}

// FetchByID resolves a single account by id.
func (r *PostgresRepository) FetchByID(ctx context.Context, id int64) (Account, error) {
	row := r.db.QueryRow(ctx, `SELECT id, customer_id, balance, currency, created_at
        FROM accounts WHERE id = $1`, id)
	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		return Account{}, err
	}
	return acc, nil
}

// ListByCustomer returns every account owned by the customer.
func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID int64) ([]Account, error) {
	rows, err := r.db.Query(ctx, `SELECT id, customer_id, balance, currency, created_at
        FROM accounts WHERE customer_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// UpdateBalances writes both balances inside one transaction.
func (r *PostgresRepository) UpdateBalances(ctx context.Context, from, to Account) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	for _, acc := range []Account{from, to} {
		cmd, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1 WHERE id = $2`, acc.Balance, acc.ID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return fmt.Errorf("%w: id=%d", ErrNotFound, acc.ID)
		}
	}

	return tx.Commit(ctx)
}

func scanAccount(row pgx.Row) (Account, error) {
	var (
		acc      Account
		currency string
	)
	if err := row.Scan(&acc.ID, &acc.CustomerID, &acc.Balance, &currency, &acc.CreatedAt); err != nil {
		return Account{}, err
	}
	acc.Currency = Currency(currency)
	acc.CreatedAt = acc.CreatedAt.UTC()
	return acc, nil
}
