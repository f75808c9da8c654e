package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount adds an account to the chart. A child inherits its level from the
// parent and must share the parent's account type.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		AccountType: req.AccountType,
		Level:       1,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if account.Code == "" || account.Name == "" {
		return nil, fmt.Errorf("%w: account code and name are required", apperrors.ErrValidation)
	}

	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrValidation, *req.ParentAccountID)
			}
			s.LogError(ctx, err, "Failed to load parent account", slog.String("parent_account_id", *req.ParentAccountID))
			return nil, fmt.Errorf("failed to load parent account: %w", err)
		}
		if parent.AccountType != account.AccountType {
			return nil, fmt.Errorf("%w: a %s account cannot be placed under the %s account %s", apperrors.ErrValidation, account.AccountType, parent.AccountType, parent.Code)
		}
		account.ParentAccountID = parent.AccountID
		account.Level = parent.Level + 1
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account", slog.String("code", account.Code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("created_by", userID))
	return &account, nil
}

// GetAccountByID retrieves an account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves the chart of accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

// ListPostableAccounts retrieves active leaf accounts.
func (s *accountService) ListPostableAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	idx := accounting.NewChartIndex(accounts)
	postable := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.IsActive && idx.IsLeaf(a.AccountID) {
			postable = append(postable, a)
		}
	}
	return postable, nil
}

// GetChartTree renders the chart of accounts with the requested expansion.
func (s *accountService) GetChartTree(ctx context.Context, expandedIDs []string, expandAll bool) ([]accounting.TreeRow, accounting.ExpandedSet, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, accounting.ExpandedSet{}, err
	}

	idx := accounting.NewChartIndex(accounts)
	var expanded accounting.ExpandedSet
	switch {
	case expandAll:
		expanded = idx.AllExpanded()
	case expandedIDs == nil:
		expanded = idx.DefaultExpanded()
	default:
		expanded = accounting.NewExpandedSet(expandedIDs...)
	}

	return idx.Render(expanded), expanded, nil
}
