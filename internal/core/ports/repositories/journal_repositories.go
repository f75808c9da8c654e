package repositories

import (
	"context"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry with its details annotated with account code and name.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of entries, newest first, with their details.
	// It returns the entries, a token for the next page, and an error.
	ListJournalEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry allocates an entry number, persists the entry and its details and
	// applies balanceChanges to the accounts, all within one database transaction.
	SaveJournalEntry(ctx context.Context, entry domain.NewJournalEntry, balanceChanges map[string]decimal.Decimal) (*domain.CreatedJournalEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
