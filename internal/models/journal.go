package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a row of the journal_entries table.
type JournalEntry struct {
	EntryID     string          `db:"id"`
	EntryNumber string          `db:"entry_number"`
	EntryDate   time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
	IsApproved  bool            `db:"is_approved"`
	ApprovedBy  *string         `db:"approved_by"` // Nullable
	ApprovedAt  *time.Time      `db:"approved_at"` // Nullable
	CreatedBy   *string         `db:"created_by"`  // Nullable
	CreatedAt   time.Time       `db:"created_at"`
}

// JournalEntryDetail represents a row of the journal_entry_details table,
// joined with the code and name of its account when read back.
type JournalEntryDetail struct {
	DetailID     string          `db:"id"`
	EntryID      string          `db:"journal_entry_id"`
	AccountID    string          `db:"account_id"`
	LineNumber   int             `db:"line_number"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	Description  *string         `db:"description"` // Nullable
	AccountCode  string          `db:"account_code"`
	AccountName  string          `db:"account_name"`
}
