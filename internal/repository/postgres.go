package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"travelmap-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountsSchema = `
	CREATE TABLE IF NOT EXISTS accounts (
		position INTEGER PRIMARY KEY,
		data JSONB NOT NULL,
		saved_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// PostgresAccountStore keeps accounts as ordered JSONB rows.
type PostgresAccountStore struct {
	db *pgxpool.Pool
}

// NewPostgresAccountStore creates a new PostgreSQL account store
func NewPostgresAccountStore(db *pgxpool.Pool) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

// EnsureSchema creates the accounts table if it does not exist
func (r *PostgresAccountStore) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, accountsSchema); err != nil {
		return fmt.Errorf("repository: failed to create accounts table: %w", err)
	}
	return nil
}

// SaveAccounts replaces every stored account in a single transaction
func (r *PostgresAccountStore) SaveAccounts(ctx context.Context, accounts []models.Account) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "DELETE FROM accounts"); err != nil {
		return 0, fmt.Errorf("repository: failed to clear accounts: %w", err)
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"accounts"},
		[]string{"position", "data"},
		pgx.CopyFromSlice(len(accounts), func(i int) ([]any, error) {
			return []any{i, json.RawMessage(accounts[i])}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert accounts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit accounts: %w", err)
	}

	return int(copied), nil
}

// LoadAccounts returns the stored accounts in the order they were saved
func (r *PostgresAccountStore) LoadAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := r.db.Query(ctx, "SELECT data FROM accounts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("repository: failed to scan account: %w", err)
		}
		accounts = append(accounts, json.RawMessage(data))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return accounts, nil
}
