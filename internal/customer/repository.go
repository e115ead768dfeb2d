package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corebank/corebank/internal/account"
)

// ErrNotFound indicates the customer id does not resolve.
var ErrNotFound = errors.New("customer not found")

// Repository persists customers. Create inserts the customer and all opening
// accounts atomically.
type Repository interface {
	Create(ctx context.Context, c Customer, accounts []account.Account) (Customer, error)
	FetchByID(ctx context.Context, id int64) (Customer, error)
}

// PostgresRepository stores customers in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed customer repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the customer row and its account rows in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, c Customer, accounts []account.Account) (Customer, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Customer{}, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	row := tx.QueryRow(ctx, `INSERT INTO customers (first_name, last_name, created_at)
        VALUES ($1, $2, $3) RETURNING id`, c.FirstName, c.LastName, c.CreatedAt.UTC())
	if err := row.Scan(&c.ID); err != nil {
		return Customer{}, err
	}

	for _, acc := range accounts {
		if _, err := tx.Exec(ctx, `INSERT INTO accounts (customer_id, balance, currency, created_at)
            VALUES ($1, $2, $3, $4)`, c.ID, acc.Balance, string(acc.Currency), acc.CreatedAt.UTC()); err != nil {
			return Customer{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// FetchByID resolves a customer by id.
func (r *PostgresRepository) FetchByID(ctx context.Context, id int64) (Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, created_at
        FROM customers WHERE id = $1`, id)
	var c Customer
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		return Customer{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}
