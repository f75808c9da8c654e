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

func (suite *HandlerTestSuite) TestTrialBalance() {
	tb := &domain.TrialBalance{
		Rows: []domain.TrialBalanceRow{
			{AccountCode: "1100", AccountName: "Cash", TotalDebit: dec("500"), TotalCredit: dec("0")},
			{AccountCode: "4100", AccountName: "Freight Revenue", TotalDebit: dec("0"), TotalCredit: dec("500")},
		},
		TotalDebit:  dec("500"),
		TotalCredit: dec("500"),
		IsBalanced:  true,
	}
	suite.reporting.On("TrialBalance", mock.Anything).Return(tb, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance", nil, uuid.NewString(), domain.RoleFinancial)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.decode(w, &resp)
	suite.True(resp.IsBalanced)
	suite.False(resp.Empty)
	suite.Len(resp.Rows, 2)
	suite.True(resp.Totals.Debit.Equal(dec("500")))
}

func (suite *HandlerTestSuite) TestReports_ForbiddenForCustomerService() {
	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance", nil, uuid.NewString(), domain.RoleCustomerService)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.reporting.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything)
}

func (suite *HandlerTestSuite) TestTrialBalance_StoreFailure() {
	suite.reporting.On("TrialBalance", mock.Anything).
		Return(nil, fmt.Errorf("failed to load trial balance: %w", apperrors.ErrRemote)).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance", nil, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.decode(w, &resp)
	suite.Equal("Failed to generate trial balance", resp["error"])
}

func (suite *HandlerTestSuite) TestIncomeStatement() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	is := &domain.IncomeStatement{
		StartDate:    start,
		EndDate:      end,
		Revenues:     []domain.IncomeStatementLine{{Category: domain.CategoryRevenue, AccountName: "Freight Revenue", Amount: dec("1200")}},
		Expenses:     []domain.IncomeStatementLine{{Category: domain.CategoryExpense, AccountName: "Rent", Amount: dec("450")}},
		TotalRevenue: dec("1200"),
		TotalExpense: dec("450"),
		NetIncome:    dec("750"),
		Result:       domain.Profit,
	}
	suite.reporting.On("IncomeStatement", mock.Anything, start, end).Return(is, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/income-statement?startDate=2024-01-01&endDate=2024-03-31", nil, uuid.NewString(), domain.RoleFinancial)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.IncomeStatementResponse
	suite.decode(w, &resp)
	suite.Equal("2024-01-01", resp.StartDate)
	suite.Equal("2024-03-31", resp.EndDate)
	suite.Equal(domain.Profit, resp.Summary.Result)
	suite.True(resp.Summary.NetIncome.Equal(dec("750")))
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestIncomeStatement_InvalidParameters() {
	testCases := []struct {
		name  string
		query string
	}{
		{"missing end date", "?startDate=2024-01-01"},
		{"malformed start date", "?startDate=01-01-2024&endDate=2024-03-31"},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodGet, "/api/v1/reports/income-statement"+tc.query, nil, uuid.NewString(), domain.RoleFinancial)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.reporting.AssertNotCalled(suite.T(), "IncomeStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestIncomeStatement_ReversedRange() {
	suite.reporting.On("IncomeStatement", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: start date must be on or before end date", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/income-statement?startDate=2024-04-01&endDate=2024-03-31", nil, uuid.NewString(), domain.RoleFinancial)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestBalanceSheet() {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	bs := &domain.BalanceSheet{
		AsOf:                      asOf,
		Assets:                    []domain.BalanceSheetLine{{Category: domain.CategoryAsset, SubCategory: "Assets", AccountName: "Cash", Balance: dec("800")}},
		Liabilities:               []domain.BalanceSheetLine{{Category: domain.CategoryLiability, SubCategory: "Liabilities", AccountName: "Accounts Payable", Balance: dec("300")}},
		Equity:                    []domain.BalanceSheetLine{{Category: domain.CategoryEquity, SubCategory: "Equity", AccountName: "Owner Capital", Balance: dec("500")}},
		TotalAssets:               dec("800"),
		TotalLiabilities:          dec("300"),
		TotalEquity:               dec("500"),
		TotalLiabilitiesAndEquity: dec("800"),
		IsBalanced:                true,
	}
	suite.reporting.On("BalanceSheet", mock.Anything, asOf).Return(bs, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/balance-sheet?asOf=2024-06-30", nil, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceSheetResponse
	suite.decode(w, &resp)
	suite.Equal("2024-06-30", resp.AsOf)
	suite.True(resp.Summary.IsBalanced)
	suite.Require().Len(resp.Liabilities, 1)
	suite.Equal("Accounts Payable", resp.Liabilities[0].AccountName)
}

func (suite *HandlerTestSuite) TestBalanceSheet_MissingDate() {
	w := suite.do(http.MethodGet, "/api/v1/reports/balance-sheet", nil, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reporting.AssertNotCalled(suite.T(), "BalanceSheet", mock.Anything, mock.Anything)
}
