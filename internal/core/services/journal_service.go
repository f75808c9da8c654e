package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
	"github.com/SscSPs/freight_management_app/internal/utils/pagination"
)

var (
	ErrAccountNotFound    = fmt.Errorf("%w: account not found", apperrors.ErrValidation)
	ErrAccountInactive    = fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
	ErrAccountNotPostable = fmt.Errorf("%w: entries can only be posted to accounts without sub-accounts", apperrors.ErrValidation)
	ErrDescriptionMissing = fmt.Errorf("%w: journal entry description is required", apperrors.ErrValidation)
	ErrInvalidEntryDate   = fmt.Errorf("%w: entry date must use the YYYY-MM-DD format", apperrors.ErrValidation)
)

// journalService provides journal entry posting and lookup.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournalEntry validates the entry locally, checks the referenced accounts and
// hands the entry to the repository, which posts it atomically.
func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.CreatedJournalEntry, error) {
	entryDate, err := time.Parse(dto.DateFormat, req.EntryDate)
	if err != nil {
		return nil, ErrInvalidEntryDate
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionMissing
	}

	draft := accounting.DraftFromLines(entryDate, description, req.ToJournalLines())
	entry, err := draft.ToNewJournalEntry(creatorUserID)
	if err != nil {
		s.LogDebug(ctx, "Journal entry rejected by local validation", slog.String("reason", err.Error()))
		return nil, err
	}

	accountIDs := uniqueAccountIDs(entry.Lines)
	accountTypes, err := s.checkPostableAccounts(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	balanceChanges, err := accounting.BalanceChanges(entry.Lines, accountTypes)
	if err != nil {
		s.LogError(ctx, err, "Error calculating balance changes")
		return nil, fmt.Errorf("%w: calculating balance changes: %v", apperrors.ErrInternal, err)
	}

	created, err := s.journalRepo.SaveJournalEntry(ctx, entry, balanceChanges)
	if err != nil {
		s.LogError(ctx, err, "Failed to save journal entry")
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	totals := draft.Totals()
	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", created.EntryID),
		slog.String("entry_number", created.EntryNumber),
		slog.String("total", totals.Debit.String()),
		slog.Int("lines", len(entry.Lines)))
	return created, nil
}

// checkPostableAccounts verifies every account exists, is active and has no children.
func (s *journalService) checkPostableAccounts(ctx context.Context, accountIDs []string) (map[string]domain.AccountType, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for journal entry")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	accountTypes := make(map[string]domain.AccountType, len(accountIDs))
	for _, id := range accountIDs {
		acc, found := accounts[id]
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: %s %s", ErrAccountInactive, acc.Code, acc.Name)
		}
		accountTypes[id] = acc.AccountType
	}

	parents, err := s.accountRepo.FindParentAccountIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account hierarchy for journal entry")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		if parents[id] {
			acc := accounts[id]
			return nil, fmt.Errorf("%w: %s %s", ErrAccountNotPostable, acc.Code, acc.Name)
		}
	}

	return accountTypes, nil
}

// GetJournalEntry retrieves a specific journal entry with its details.
func (s *journalService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to retrieve journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListJournalEntries retrieves a page of journal entries, newest first.
func (s *journalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if params.NextToken != nil {
		if _, err := pagination.DecodeJournalCursor(*params.NextToken); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	limit := pagination.ClampLimit(params.Limit)
	entries, nextToken, err := s.journalRepo.ListJournalEntries(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}

	s.LogDebug(ctx, "Journal entries listed", slog.Int("count", len(entries)))
	return resp, nil
}

func uniqueAccountIDs(lines []domain.JournalLine) []string {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			ids = append(ids, l.AccountID)
		}
	}
	sort.Strings(ids)
	return ids
}
