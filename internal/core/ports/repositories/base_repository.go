package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines the interface for repositories that can manage
// database transactions. Import and generation runs execute as one
// transaction so a mid-run crash never leaves a half-committed ledger.
type TransactionManager interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits the given transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback aborts the given transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}
