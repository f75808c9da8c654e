package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateUser() {
	adminID := uuid.NewString()
	req := dto.CreateUserRequest{Username: "layla", Password: "long-enough-pass", FullName: "Layla A.", Role: domain.RoleFinancial}
	created := &domain.User{UserID: uuid.NewString(), Username: "layla", FullName: "Layla A.", Role: domain.RoleFinancial, IsActive: true, PasswordHash: "hash"}
	suite.users.On("CreateUser", mock.Anything, req, adminID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/users", req, adminID, domain.RoleAdmin)

	suite.Equal(http.StatusCreated, w.Code)
	suite.NotContains(w.Body.String(), "hash")
	var resp dto.UserResponse
	suite.decode(w, &resp)
	suite.Equal(domain.RoleFinancial, resp.Role)
}

func (suite *HandlerTestSuite) TestCreateUser_Errors() {
	suite.Run("unknown role", func() {
		suite.SetupTest()
		body := map[string]any{"username": "omar", "password": "long-enough-pass", "fullName": "Omar", "role": "driver"}
		w := suite.do(http.MethodPost, "/api/v1/users", body, uuid.NewString(), domain.RoleAdmin)
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("short password", func() {
		suite.SetupTest()
		body := map[string]any{"username": "omar", "password": "short", "fullName": "Omar", "role": "sales"}
		w := suite.do(http.MethodPost, "/api/v1/users", body, uuid.NewString(), domain.RoleAdmin)
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("username taken", func() {
		suite.SetupTest()
		suite.users.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: user omar already exists", apperrors.ErrDuplicate)).Once()
		body := dto.CreateUserRequest{Username: "omar", Password: "long-enough-pass", FullName: "Omar", Role: domain.RoleSales}
		w := suite.do(http.MethodPost, "/api/v1/users", body, uuid.NewString(), domain.RoleAdmin)
		suite.Equal(http.StatusConflict, w.Code)
	})
}

func (suite *HandlerTestSuite) TestUsers_AdminOnly() {
	for _, role := range []domain.Role{domain.RoleFinancial, domain.RoleSales, domain.RoleCustomerService, domain.RoleOperations} {
		w := suite.do(http.MethodGet, "/api/v1/users", nil, uuid.NewString(), role)
		suite.Equal(http.StatusForbidden, w.Code, string(role))
	}
	suite.users.AssertNotCalled(suite.T(), "ListUsers", mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteUser_Self() {
	adminID := uuid.NewString()
	suite.users.On("DeleteUser", mock.Anything, adminID, adminID).
		Return(fmt.Errorf("%w: you cannot delete your own account", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/users/"+adminID, nil, adminID, domain.RoleAdmin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "cannot delete your own account")
}

func (suite *HandlerTestSuite) TestUpdateUser() {
	userID := uuid.NewString()
	inactive := false
	suite.users.On("UpdateUser", mock.Anything, userID,
		mock.MatchedBy(func(req dto.UpdateUserRequest) bool {
			return req.IsActive != nil && !*req.IsActive && req.Role == nil
		}),
	).Return(&domain.User{UserID: userID, Username: "sales", Role: domain.RoleSales, IsActive: false}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/users/"+userID, dto.UpdateUserRequest{IsActive: &inactive}, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.decode(w, &resp)
	suite.False(resp.IsActive)
}

func (suite *HandlerTestSuite) TestDashboard() {
	summary := &domain.DashboardSummary{
		CustomerCount:      3,
		ShipmentCount:      5,
		ShipmentsByStatus:  map[domain.ShipmentStatus]int{domain.ShipmentPending: 2, domain.ShipmentDelivered: 3},
		TotalShipmentValue: decimal.NewFromInt(9000),
		TotalCollected:     decimal.NewFromInt(4000),
	}
	suite.dashboard.On("GetSummary", mock.Anything).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard", nil, uuid.NewString(), domain.RoleCustomerService)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.DashboardSummary
	suite.decode(w, &resp)
	suite.Equal(5, resp.ShipmentCount)
	suite.Equal(3, resp.ShipmentsByStatus[domain.ShipmentDelivered])
	suite.True(resp.TotalCollected.Equal(decimal.NewFromInt(4000)))
}
