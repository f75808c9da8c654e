package mapping

import (
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/models"
)

// ToDomainJournalEntry converts a model JournalEntry and its details to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, details []models.JournalEntryDetail) domain.JournalEntry {
	entry := domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryNumber: m.EntryNumber,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		IsApproved:  m.IsApproved,
		ApprovedBy:  m.ApprovedBy,
		ApprovedAt:  m.ApprovedAt,
		CreatedBy:   derefString(m.CreatedBy),
		CreatedAt:   m.CreatedAt,
		Details:     make([]domain.JournalEntryDetail, len(details)),
	}
	for i, d := range details {
		entry.Details[i] = ToDomainJournalEntryDetail(d)
	}
	return entry
}

// ToDomainJournalEntryDetail converts a model JournalEntryDetail to a domain JournalEntryDetail
func ToDomainJournalEntryDetail(m models.JournalEntryDetail) domain.JournalEntryDetail {
	return domain.JournalEntryDetail{
		DetailID:     m.DetailID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		Description:  derefString(m.Description),
		AccountCode:  m.AccountCode,
		AccountName:  m.AccountName,
	}
}

// ToModelJournalEntryDetail converts the submitted line at position lineNumber to a detail row of entryID.
func ToModelJournalEntryDetail(detailID, entryID string, lineNumber int, l domain.JournalLine) models.JournalEntryDetail {
	return models.JournalEntryDetail{
		DetailID:     detailID,
		EntryID:      entryID,
		AccountID:    l.AccountID,
		LineNumber:   lineNumber,
		DebitAmount:  l.Debit,
		CreditAmount: l.Credit,
		Description:  nullableString(l.Description),
	}
}
