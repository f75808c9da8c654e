package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager brackets multi-statement ledger writes such as journal posting,
// where the entry, its details and the account balance deltas commit together.
// Rollback after a successful Commit is a no-op, so callers defer it unconditionally.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
