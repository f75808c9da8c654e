package handlers_test

import (
	"net/http"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListAccounts() {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Code: "1000", Name: "Assets", AccountType: domain.Asset, Level: 1, IsActive: true},
		{AccountID: uuid.NewString(), Code: "1100", Name: "Cash", AccountType: domain.Asset, Level: 2, IsActive: true},
	}
	suite.accounts.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/accounts", nil, uuid.NewString(), domain.RoleFinancial)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Accounts, 2)
	suite.accounts.AssertNotCalled(suite.T(), "ListPostableAccounts", mock.Anything)
}

func (suite *HandlerTestSuite) TestListAccounts_PostableOnly() {
	cash := domain.Account{AccountID: uuid.NewString(), Code: "1100", Name: "Cash", AccountType: domain.Asset, Level: 2, IsActive: true}
	suite.accounts.On("ListPostableAccounts", mock.Anything).Return([]domain.Account{cash}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/accounts?postable=true", nil, uuid.NewString(), domain.RoleFinancial)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("1100", resp.Accounts[0].Code)
	suite.accounts.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *HandlerTestSuite) TestChartTree_ExpandedParameter() {
	root := domain.Account{AccountID: "a", Code: "1000", Name: "Assets", AccountType: domain.Asset, Level: 1, IsActive: true}
	rows := []accounting.TreeRow{{Account: root, Depth: 0, HasChildren: true, Expanded: true}}
	expanded := accounting.NewExpandedSet("a", "b")
	suite.accounts.On("GetChartTree", mock.Anything, []string{"a", "b"}, false).Return(rows, expanded, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/accounts/tree?expanded=a,%20b,", nil, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChartTreeResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Rows, 1)
	suite.True(resp.Rows[0].HasChildren)
	suite.ElementsMatch([]string{"a", "b"}, resp.Expanded)
	suite.accounts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestChartTree_DefaultAndAll() {
	suite.accounts.On("GetChartTree", mock.Anything, []string(nil), false).
		Return([]accounting.TreeRow{}, accounting.NewExpandedSet(), nil).Once()
	suite.accounts.On("GetChartTree", mock.Anything, []string(nil), true).
		Return([]accounting.TreeRow{}, accounting.NewExpandedSet(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounting/accounts/tree", nil, uuid.NewString(), domain.RoleFinancial)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/accounting/accounts/tree?all=true", nil, uuid.NewString(), domain.RoleFinancial)
	suite.Equal(http.StatusOK, w.Code)

	suite.accounts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateAccount() {
	userID := uuid.NewString()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{Code: "1150", Name: "Petty Cash", AccountType: domain.Asset, ParentAccountID: &parentID}
	created := &domain.Account{AccountID: uuid.NewString(), Code: "1150", Name: "Petty Cash", AccountType: domain.Asset, ParentAccountID: parentID, Level: 2, IsActive: true}
	suite.accounts.On("CreateAccount", mock.Anything, req, userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounting/accounts", req, userID, domain.RoleAdmin)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal(2, resp.Level)
	suite.Equal(parentID, resp.ParentAccountID)
}

func (suite *HandlerTestSuite) TestCreateAccount_Errors() {
	valid := dto.CreateAccountRequest{Code: "1100", Name: "Cash", AccountType: domain.Asset}

	suite.Run("invalid account type", func() {
		suite.SetupTest()
		w := suite.do(http.MethodPost, "/api/v1/accounting/accounts",
			map[string]string{"code": "9000", "name": "Misc", "accountType": "income"}, uuid.NewString(), domain.RoleAdmin)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.accounts.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("duplicate code", func() {
		suite.SetupTest()
		suite.accounts.On("CreateAccount", mock.Anything, valid, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()
		w := suite.do(http.MethodPost, "/api/v1/accounting/accounts", valid, uuid.NewString(), domain.RoleAdmin)
		suite.Equal(http.StatusConflict, w.Code)
	})

	suite.Run("settings section required", func() {
		suite.SetupTest()
		w := suite.do(http.MethodPost, "/api/v1/accounting/accounts", valid, uuid.NewString(), domain.RoleFinancial)
		suite.Equal(http.StatusForbidden, w.Code)
		suite.accounts.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})
}
