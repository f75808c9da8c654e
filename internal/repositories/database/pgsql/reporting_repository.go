package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// currentEarningsName labels the synthetic equity line that carries revenue minus
// expense up to the balance sheet date, so that the sheet can balance before closing.
const currentEarningsName = "Current Period Earnings"

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) *reportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTrialBalanceRows sums debits and credits per account over all posted entries.
func (r *reportingRepository) GetTrialBalanceRows(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.id,
			a.account_code,
			a.account_name,
			COALESCE(SUM(d.debit_amount), 0) AS total_debit,
			COALESCE(SUM(d.credit_amount), 0) AS total_credit
		FROM journal_entry_details d
		JOIN chart_of_accounts a ON a.id = d.account_id
		GROUP BY a.id, a.account_code, a.account_name
		ORDER BY a.account_code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}

// GetIncomeStatementLines returns the net revenue and expense per account for entries
// dated within [start, end]. Revenue is credit minus debit; expense is debit minus credit.
func (r *reportingRepository) GetIncomeStatementLines(ctx context.Context, start, end time.Time) ([]domain.IncomeStatementLine, error) {
	query := `
		SELECT
			a.account_type,
			a.account_name,
			SUM(CASE WHEN a.account_type = 'revenue'
			         THEN d.credit_amount - d.debit_amount
			         ELSE d.debit_amount - d.credit_amount END) AS amount
		FROM journal_entry_details d
		JOIN journal_entries e ON e.id = d.journal_entry_id
		JOIN chart_of_accounts a ON a.id = d.account_id
		WHERE a.account_type IN ('revenue', 'expense')
			AND e.entry_date BETWEEN $1 AND $2
		GROUP BY a.id, a.account_type, a.account_name, a.account_code
		ORDER BY a.account_code;
	`

	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying income statement data: %w", err)
	}
	defer rows.Close()

	result := []domain.IncomeStatementLine{}
	for rows.Next() {
		var line domain.IncomeStatementLine
		var accountType string
		if err := rows.Scan(&accountType, &line.AccountName, &line.Amount); err != nil {
			return nil, fmt.Errorf("error scanning income statement row: %w", err)
		}
		line.Category = domain.StatementCategory(accountType)
		result = append(result, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income statement rows: %w", err)
	}
	return result, nil
}

// GetBalanceSheetLines returns asset, liability and equity balances for entries dated on or
// before asOf. The sub-category is the parent account name, or the account's own name for
// a root. Unclosed revenue and expense are reported as one equity line.
func (r *reportingRepository) GetBalanceSheetLines(ctx context.Context, asOf time.Time) ([]domain.BalanceSheetLine, error) {
	query := `
		SELECT category, sub_category, account_name, balance
		FROM (
			SELECT
				a.account_type AS category,
				COALESCE(p.account_name, a.account_name) AS sub_category,
				a.account_name,
				SUM(CASE WHEN a.account_type = 'asset'
				         THEN d.debit_amount - d.credit_amount
				         ELSE d.credit_amount - d.debit_amount END) AS balance,
				a.account_code AS sort_key
			FROM journal_entry_details d
			JOIN journal_entries e ON e.id = d.journal_entry_id
			JOIN chart_of_accounts a ON a.id = d.account_id
			LEFT JOIN chart_of_accounts p ON p.id = a.parent_account_id
			WHERE a.account_type IN ('asset', 'liability', 'equity')
				AND e.entry_date <= $1
			GROUP BY a.id, a.account_type, p.account_name, a.account_name, a.account_code

			UNION ALL

			SELECT
				'equity',
				$2::text,
				$2::text,
				SUM(d.credit_amount - d.debit_amount),
				'~'
			FROM journal_entry_details d
			JOIN journal_entries e ON e.id = d.journal_entry_id
			JOIN chart_of_accounts a ON a.id = d.account_id
			WHERE a.account_type IN ('revenue', 'expense')
				AND e.entry_date <= $1
			HAVING COUNT(*) > 0
		) lines
		ORDER BY sort_key;
	`

	rows, err := r.Pool.Query(ctx, query, asOf, currentEarningsName)
	if err != nil {
		return nil, fmt.Errorf("error querying balance sheet data: %w", err)
	}
	defer rows.Close()

	result := []domain.BalanceSheetLine{}
	for rows.Next() {
		var line domain.BalanceSheetLine
		var category string
		if err := rows.Scan(&category, &line.SubCategory, &line.AccountName, &line.Balance); err != nil {
			return nil, fmt.Errorf("error scanning balance sheet row: %w", err)
		}
		line.Category = domain.StatementCategory(category)
		result = append(result, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance sheet rows: %w", err)
	}
	return result, nil
}
