package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MinJournalLines is the minimum number of detail lines a journal entry must keep.
const MinJournalLines = 2

// AmountPlaces is the number of decimal places a stored amount keeps (NUMERIC(18,3)).
const AmountPlaces = 3

// Local validation errors for journal entries. All of them wrap apperrors.ErrValidation
// and are raised before any persistence call is made.
var (
	ErrEntryUnbalanced = fmt.Errorf("%w: journal entry is not balanced, total debit must equal total credit and be greater than zero", apperrors.ErrValidation)
	ErrEntryIncomplete = fmt.Errorf("%w: every journal entry line must reference an account", apperrors.ErrValidation)
	ErrLineEmpty       = fmt.Errorf("%w: every journal entry line needs a debit or a credit amount", apperrors.ErrValidation)
	ErrLineBothSides   = fmt.Errorf("%w: a journal entry line cannot carry both a debit and a credit amount", apperrors.ErrValidation)
	ErrMinimumLines    = fmt.Errorf("%w: a journal entry must have at least two lines", apperrors.ErrValidation)
	ErrInvalidAmount   = fmt.Errorf("%w: amounts cannot be negative or carry more than three decimal places", apperrors.ErrValidation)
	ErrLineIndex       = fmt.Errorf("%w: journal entry line does not exist", apperrors.ErrValidation)
)

// JournalEntry is a single balanced accounting transaction.
type JournalEntry struct {
	EntryID     string               `json:"entryID"`
	EntryNumber string               `json:"entryNumber"` // System-assigned, unique
	EntryDate   time.Time            `json:"entryDate"`
	Description string               `json:"description"`
	TotalDebit  decimal.Decimal      `json:"totalDebit"`
	TotalCredit decimal.Decimal      `json:"totalCredit"`
	IsApproved  bool                 `json:"isApproved"`
	ApprovedBy  *string              `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time           `json:"approvedAt,omitempty"`
	CreatedBy   string               `json:"createdBy"`
	CreatedAt   time.Time            `json:"createdAt"`
	Details     []JournalEntryDetail `json:"details"`
}

// JournalEntryDetail is one debit-or-credit posting line within an entry.
type JournalEntryDetail struct {
	DetailID     string          `json:"detailID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	// Display annotations, filled when the entry is read back.
	AccountCode string `json:"accountCode,omitempty"`
	AccountName string `json:"accountName,omitempty"`
}

// JournalLine is a detail line as submitted for posting.
type JournalLine struct {
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// NewJournalEntry is the validated payload handed to persistence.
type NewJournalEntry struct {
	EntryDate   time.Time
	Description string
	Lines       []JournalLine
	CreatedBy   string
}

// CreatedJournalEntry identifies an entry accepted by persistence.
type CreatedJournalEntry struct {
	EntryID     string `json:"entryID"`
	EntryNumber string `json:"entryNumber"`
}
