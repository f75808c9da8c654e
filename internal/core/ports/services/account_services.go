package services

import (
	"context"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListPostableAccounts retrieves active leaf accounts, the only ones journal lines may reference.
	ListPostableAccounts(ctx context.Context) ([]domain.Account, error)

	// GetChartTree renders the chart of accounts. A nil expandedIDs uses the default
	// expansion (every level-1 account); expandAll opens every parent.
	GetChartTree(ctx context.Context, expandedIDs []string, expandAll bool) ([]accounting.TreeRow, accounting.ExpandedSet, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount adds an account to the chart.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
