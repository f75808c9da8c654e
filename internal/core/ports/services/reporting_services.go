package services

import (
	"context"
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// A failed fetch is returned as an error, never as an empty report.
type ReportingService interface {
	// TrialBalance generates the trial balance over all posted entries
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)

	// IncomeStatement generates an income statement for [start, end]
	IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet generates a balance sheet as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)
}
