package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	tolerance     decimal.Decimal
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithBalanceTolerance overrides the tolerance of the balance checks.
func WithBalanceTolerance(tolerance decimal.Decimal) ReportingServiceOption {
	return func(s *reportingService) {
		if tolerance.IsPositive() {
			s.tolerance = tolerance
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		tolerance:     accounting.Epsilon,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates the trial balance over all posted entries
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	rows, err := s.reportingRepo.GetTrialBalanceRows(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data")
		return nil, fmt.Errorf("failed to load trial balance: %w", err)
	}

	tb := accounting.BuildTrialBalance(rows, s.tolerance)
	if !tb.IsBalanced {
		s.LogWarn(ctx, "Trial balance is out of balance",
			slog.String("total_debit", tb.TotalDebit.String()),
			slog.String("total_credit", tb.TotalCredit.String()))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully", slog.Int("row_count", len(tb.Rows)))
	return &tb, nil
}

// IncomeStatement generates an income statement for [start, end]
func (s *reportingService) IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start date must be on or before end date", apperrors.ErrValidation)
	}

	lines, err := s.reportingRepo.GetIncomeStatementLines(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement data",
			slog.String("start", start.Format(time.DateOnly)),
			slog.String("end", end.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to load income statement: %w", err)
	}

	is := accounting.BuildIncomeStatement(start, end, lines)

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("start", start.Format(time.DateOnly)),
		slog.String("end", end.Format(time.DateOnly)),
		slog.Int("revenue_accounts", len(is.Revenues)),
		slog.Int("expense_accounts", len(is.Expenses)))
	return &is, nil
}

// BalanceSheet generates a balance sheet as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	if asOf.IsZero() {
		return nil, fmt.Errorf("%w: as-of date is required", apperrors.ErrValidation)
	}

	lines, err := s.reportingRepo.GetBalanceSheetLines(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data", slog.String("asOf", asOf.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to load balance sheet: %w", err)
	}

	bs := accounting.BuildBalanceSheet(asOf, lines, s.tolerance)
	if !bs.IsBalanced {
		s.LogWarn(ctx, "Balance sheet is out of balance",
			slog.String("total_assets", bs.TotalAssets.String()),
			slog.String("total_liabilities_and_equity", bs.TotalLiabilitiesAndEquity.String()))
	}

	s.LogInfo(ctx, "Balance sheet generated successfully",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("asset_accounts", len(bs.Assets)),
		slog.Int("liability_accounts", len(bs.Liabilities)),
		slog.Int("equity_accounts", len(bs.Equity)))
	return &bs, nil
}
