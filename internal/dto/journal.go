package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one detail line of a journal entry submission.
// Balance and completeness are checked by the journal service, not by binding.
type JournalLineRequest struct {
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description" binding:"max=500"`
}

// CreateJournalEntryRequest defines the payload for posting a journal entry.
type CreateJournalEntryRequest struct {
	EntryDate   string               `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description" binding:"required,max=500"`
	Lines       []JournalLineRequest `json:"lines" binding:"dive"`
}

// ToJournalLines converts request lines to domain lines, trimming account IDs.
func (r CreateJournalEntryRequest) ToJournalLines() []domain.JournalLine {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			AccountID:   strings.TrimSpace(l.AccountID),
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return lines
}

// CreateJournalEntryResponse identifies the posted entry.
type CreateJournalEntryResponse struct {
	EntryID     string `json:"entryID"`
	EntryNumber string `json:"entryNumber"`
}

// JournalEntryDetailResponse is a posted line annotated with its account.
type JournalEntryDetailResponse struct {
	DetailID     string          `json:"detailID"`
	AccountID    string          `json:"accountID"`
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                       `json:"entryID"`
	EntryNumber string                       `json:"entryNumber"`
	EntryDate   string                       `json:"entryDate"`
	Description string                       `json:"description"`
	TotalDebit  decimal.Decimal              `json:"totalDebit"`
	TotalCredit decimal.Decimal              `json:"totalCredit"`
	IsApproved  bool                         `json:"isApproved"`
	ApprovedBy  *string                      `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time                   `json:"approvedAt,omitempty"`
	CreatedBy   string                       `json:"createdBy"`
	CreatedAt   time.Time                    `json:"createdAt"`
	Details     []JournalEntryDetailResponse `json:"details"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	details := make([]JournalEntryDetailResponse, len(e.Details))
	for i, d := range e.Details {
		details[i] = JournalEntryDetailResponse{
			DetailID:     d.DetailID,
			AccountID:    d.AccountID,
			AccountCode:  d.AccountCode,
			AccountName:  d.AccountName,
			DebitAmount:  d.DebitAmount,
			CreditAmount: d.CreditAmount,
			Description:  d.Description,
		}
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		EntryNumber: e.EntryNumber,
		EntryDate:   e.EntryDate.Format(DateFormat),
		Description: e.Description,
		TotalDebit:  e.TotalDebit,
		TotalCredit: e.TotalCredit,
		IsApproved:  e.IsApproved,
		ApprovedBy:  e.ApprovedBy,
		ApprovedAt:  e.ApprovedAt,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		Details:     details,
	}
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=0,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}
