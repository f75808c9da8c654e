package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DraftTotals summarises the two sides of a draft.
type DraftTotals struct {
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	IsBalanced bool            `json:"isBalanced"`
}

// JournalDraft is a journal entry being composed before submission.
// Every edit keeps a line's debit and credit mutually exclusive.
type JournalDraft struct {
	EntryDate   time.Time
	Description string
	lines       []domain.JournalLine
}

// NewJournalDraft returns a draft for the given date holding two blank lines.
func NewJournalDraft(entryDate time.Time) *JournalDraft {
	return &JournalDraft{
		EntryDate: entryDate,
		lines:     make([]domain.JournalLine, domain.MinJournalLines),
	}
}

// DraftFromLines builds a draft from already collected lines, e.g. an API request.
// Lines are taken as given; Validate reports any that break the posting rules.
func DraftFromLines(entryDate time.Time, description string, lines []domain.JournalLine) *JournalDraft {
	d := &JournalDraft{EntryDate: entryDate, Description: description}
	d.lines = append(d.lines, lines...)
	return d
}

// Lines returns a copy of the draft lines.
func (d *JournalDraft) Lines() []domain.JournalLine {
	out := make([]domain.JournalLine, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d *JournalDraft) line(i int) (*domain.JournalLine, error) {
	if i < 0 || i >= len(d.lines) {
		return nil, fmt.Errorf("%w: index %d", domain.ErrLineIndex, i)
	}
	return &d.lines[i], nil
}

// SetDebit stores a debit amount on line i. A positive debit clears the credit.
func (d *JournalDraft) SetDebit(i int, amount decimal.Decimal) error {
	l, err := d.line(i)
	if err != nil {
		return err
	}
	if !ValidAmount(amount) {
		return domain.ErrInvalidAmount
	}
	l.Debit = amount
	if amount.IsPositive() {
		l.Credit = decimal.Zero
	}
	return nil
}

// SetCredit stores a credit amount on line i. A positive credit clears the debit.
func (d *JournalDraft) SetCredit(i int, amount decimal.Decimal) error {
	l, err := d.line(i)
	if err != nil {
		return err
	}
	if !ValidAmount(amount) {
		return domain.ErrInvalidAmount
	}
	l.Credit = amount
	if amount.IsPositive() {
		l.Debit = decimal.Zero
	}
	return nil
}

// SetAccount points line i at an account.
func (d *JournalDraft) SetAccount(i int, accountID string) error {
	l, err := d.line(i)
	if err != nil {
		return err
	}
	l.AccountID = accountID
	return nil
}

// SetLineDescription sets the memo of line i.
func (d *JournalDraft) SetLineDescription(i int, description string) error {
	l, err := d.line(i)
	if err != nil {
		return err
	}
	l.Description = description
	return nil
}

// AddLine appends a blank line and returns its index.
func (d *JournalDraft) AddLine() int {
	d.lines = append(d.lines, domain.JournalLine{})
	return len(d.lines) - 1
}

// RemoveLine deletes line i. It is refused, leaving the draft untouched,
// when the draft is already at the minimum line count.
func (d *JournalDraft) RemoveLine(i int) error {
	if _, err := d.line(i); err != nil {
		return err
	}
	if len(d.lines) <= domain.MinJournalLines {
		return domain.ErrMinimumLines
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return nil
}

// Totals sums the draft. It is recomputed on every call.
func (d *JournalDraft) Totals() DraftTotals {
	debit, credit := LineTotals(d.lines)
	return DraftTotals{Debit: debit, Credit: credit, IsBalanced: IsBalancedEntry(debit, credit)}
}

// Validate applies the posting rules without any I/O.
func (d *JournalDraft) Validate() error {
	return ValidateJournalLines(d.lines)
}

// ToNewJournalEntry validates the draft and converts it into a persistence payload.
func (d *JournalDraft) ToNewJournalEntry(createdBy string) (domain.NewJournalEntry, error) {
	if err := d.Validate(); err != nil {
		return domain.NewJournalEntry{}, err
	}
	return domain.NewJournalEntry{
		EntryDate:   d.EntryDate,
		Description: d.Description,
		Lines:       d.Lines(),
		CreatedBy:   createdBy,
	}, nil
}
