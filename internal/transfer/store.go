package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrLogNotFound indicates the transfer log id does not resolve, or the row
// already reached a terminal status.
var ErrLogNotFound = errors.New("transfer log not found")

// LogStore persists transfer audit records.
type LogStore interface {
	Create(ctx context.Context, lg Log) (Log, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	ListByAccount(ctx context.Context, accountID int64) ([]Log, error)
}

// PostgresLogStore stores transfer logs in PostgreSQL.
type PostgresLogStore struct {
	db *pgxpool.Pool
}

// NewPostgresLogStore builds a log store backed by PostgreSQL.
func NewPostgresLogStore(db *pgxpool.Pool) *PostgresLogStore {
	return &PostgresLogStore{db: db}
}

// Create inserts a log row and returns it with the assigned id.
func (s *PostgresLogStore) Create(ctx context.Context, lg Log) (Log, error) {
	now := time.Now().UTC()
	lg.CreatedAt = now
	lg.UpdatedAt = now
	row := s.db.QueryRow(ctx, `INSERT INTO transfer_logs
        (from_account_id, to_account_id, amount, requested_currency, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		lg.FromAccountID, lg.ToAccountID, lg.Amount, lg.RequestedCurrency, string(lg.Status), lg.CreatedAt, lg.UpdatedAt)
	if err := row.Scan(&lg.ID); err != nil {
		return Log{}, err
	}
	return lg, nil
}

// UpdateStatus moves a PENDING row to a terminal status. Updating a row that
// is already terminal is rejected.
func (s *PostgresLogStore) UpdateStatus(ctx context.Context, id int64, status Status) error {
	cmd, err := s.db.Exec(ctx, `UPDATE transfer_logs SET status = $1, updated_at = $2
        WHERE id = $3 AND status = $4`,
		string(status), time.Now().UTC(), id, string(StatusPending))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: id=%d", ErrLogNotFound, id)
	}
	return nil
}

// ListByAccount returns every log touching the account on either side.
func (s *PostgresLogStore) ListByAccount(ctx context.Context, accountID int64) ([]Log, error) {
	rows, err := s.db.Query(ctx, `SELECT id, from_account_id, to_account_id, amount, requested_currency, status, created_at, updated_at
        FROM transfer_logs WHERE from_account_id = $1 OR to_account_id = $1 ORDER BY id`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []Log
	for rows.Next() {
		lg, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, lg)
	}
	return logs, rows.Err()
}

func scanLog(row pgx.Row) (Log, error) {
	var (
		lg     Log
		status string
	)
	if err := row.Scan(&lg.ID, &lg.FromAccountID, &lg.ToAccountID, &lg.Amount,
		&lg.RequestedCurrency, &status, &lg.CreatedAt, &lg.UpdatedAt); err != nil {
		return Log{}, err
	}
	lg.Status = Status(status)
	lg.CreatedAt = lg.CreatedAt.UTC()
	lg.UpdatedAt = lg.UpdatedAt.UTC()
	return lg, nil
}
