package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func balancedEntryRequest(cashID, revenueID string) dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate:   "2024-03-15",
		Description: "Freight invoice 1042",
		Lines: []dto.JournalLineRequest{
			{AccountID: cashID, Debit: dec("500.250")},
			{AccountID: revenueID, Credit: dec("500.250")},
		},
	}
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_Success() {
	userID := uuid.NewString()
	cashID, revenueID := uuid.NewString(), uuid.NewString()
	created := &domain.CreatedJournalEntry{EntryID: uuid.NewString(), EntryNumber: "JE-000001"}

	suite.journal.On("CreateJournalEntry", mock.Anything,
		mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
			return len(req.Lines) == 2 &&
				req.Lines[0].AccountID == cashID &&
				req.Lines[0].Debit.Equal(dec("500.25")) &&
				req.Lines[1].Credit.Equal(dec("500.25"))
		}),
		userID,
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounting/journal-entries", balancedEntryRequest(cashID, revenueID), userID, domain.RoleFinancial)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateJournalEntryResponse
	suite.decode(w, &resp)
	suite.Equal(created.EntryID, resp.EntryID)
	suite.Equal("JE-000001", resp.EntryNumber)
	suite.journal.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_ServiceErrors() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"unbalanced", domain.ErrEntryUnbalanced, http.StatusBadRequest, domain.ErrEntryUnbalanced.Error()},
		{"inactive account", fmt.Errorf("%w: account 1100 is inactive", apperrors.ErrValidation), http.StatusBadRequest, "account 1100 is inactive"},
		{"store failure", fmt.Errorf("failed to save journal entry: %w", apperrors.ErrRemote), http.StatusInternalServerError, "Failed to save journal entry"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.journal.On("CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/accounting/journal-entries",
				balancedEntryRequest(uuid.NewString(), uuid.NewString()), uuid.NewString(), domain.RoleAdmin)

			suite.Equal(tc.wantStatus, w.Code)
			var resp map[string]string
			suite.decode(w, &resp)
			suite.Contains(resp["error"], tc.wantError)
		})
	}
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_BindingErrors() {
	testCases := []struct {
		name string
		body any
	}{
		{"missing date", map[string]any{"description": "x", "lines": []any{}}},
		{"bad date", map[string]any{"entryDate": "15/03/2024", "description": "x"}},
		{"missing description", map[string]any{"entryDate": "2024-03-15"}},
		{"malformed amount", map[string]any{"entryDate": "2024-03-15", "description": "x", "lines": []any{map[string]any{"debit": "abc"}}}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/accounting/journal-entries", tc.body, uuid.NewString(), domain.RoleFinancial)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.journal.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestJournalEntries_ForbiddenForSales() {
	w := suite.do(http.MethodPost, "/api/v1/accounting/journal-entries",
		balancedEntryRequest(uuid.NewString(), uuid.NewString()), uuid.NewString(), domain.RoleSales)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.journal.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetJournalEntry() {
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:     entryID,
		EntryNumber: "JE-000007",
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Port fees",
		TotalDebit:  dec("75"),
		TotalCredit: dec("75"),
		Details: []domain.JournalEntryDetail{
			{DetailID: uuid.NewString(), AccountCode: "5100", AccountName: "Shipping Costs", DebitAmount: dec("75")},
			{DetailID: uuid.NewString(), AccountCode: "1100", AccountName: "Cash", CreditAmount: dec("75")},
		},
	}
	suite.journal.On("GetJournalEntry", mock.Anything, entryID).Return(entry, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/journal-entries/"+entryID, nil, uuid.NewString(), domain.RoleFinancial)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalEntryResponse
	suite.decode(w, &resp)
	suite.Equal("2024-03-15", resp.EntryDate)
	suite.Require().Len(resp.Details, 2)
	suite.Equal("Shipping Costs", resp.Details[0].AccountName)
	suite.True(resp.Details[1].CreditAmount.Equal(dec("75")))
}

func (suite *HandlerTestSuite) TestGetJournalEntry_NotFound() {
	suite.journal.On("GetJournalEntry", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/journal-entries/missing", nil, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListJournalEntries() {
	next := "token-2"
	suite.journal.On("ListJournalEntries", mock.Anything,
		mock.MatchedBy(func(p dto.ListJournalEntriesParams) bool {
			return p.Limit == 5 && p.NextToken != nil && *p.NextToken == "token-1"
		}),
	).Return(&dto.ListJournalEntriesResponse{Entries: []dto.JournalEntryResponse{}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/journal-entries?limit=5&nextToken=token-1", nil, uuid.NewString(), domain.RoleFinancial)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalEntriesResponse
	suite.decode(w, &resp)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-2", *resp.NextToken)
	suite.journal.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListJournalEntries_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/accounting/journal-entries?limit=1000", nil, uuid.NewString(), domain.RoleFinancial)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journal.AssertNotCalled(suite.T(), "ListJournalEntries", mock.Anything, mock.Anything)
}
