package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
)

// ReportingRepository returns account-tagged amount rows, already aggregated by the database.
type ReportingRepository interface {
	// GetTrialBalanceRows sums debits and credits per account over all posted entries.
	GetTrialBalanceRows(ctx context.Context) ([]domain.TrialBalanceRow, error)

	// GetIncomeStatementLines returns revenue and expense amounts for entries dated within [start, end].
	GetIncomeStatementLines(ctx context.Context, start, end time.Time) ([]domain.IncomeStatementLine, error)

	// GetBalanceSheetLines returns asset, liability and equity balances for entries dated on or before asOf.
	GetBalanceSheetLines(ctx context.Context, asOf time.Time) ([]domain.BalanceSheetLine, error)
}
