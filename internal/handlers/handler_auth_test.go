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

func (suite *HandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: uuid.NewString(), Username: "financial", FullName: "Finance", Role: domain.RoleFinancial, IsActive: true}
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	suite.users.On("AuthenticateUser", mock.Anything, "financial", "secret-pass").Return(user, nil).Once()
	suite.auth.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Username: "financial", Password: "secret-pass"}, "", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("signed-token", resp.Token)
	suite.True(expiresAt.Equal(resp.ExpiresAt))
	suite.Equal(user.UserID, resp.Profile.User.UserID)
	suite.Equal(domain.RoleFinancial.Sections(), resp.Profile.Sections)
	suite.users.AssertExpectations(suite.T())
	suite.auth.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestLogin_Failures() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"wrong password", fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized), http.StatusUnauthorized},
		{"disabled account", fmt.Errorf("%w: account is disabled", apperrors.ErrForbidden), http.StatusForbidden},
		{"store failure", fmt.Errorf("failed to find user: %w", apperrors.ErrRemote), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.users.On("AuthenticateUser", mock.Anything, "sales", "whatever").Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Username: "sales", Password: "whatever"}, "", "")

			suite.Equal(tc.wantStatus, w.Code)
			suite.auth.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
		})
	}
}

func (suite *HandlerTestSuite) TestLogin_MissingFields() {
	w := suite.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin"}, "", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.users.AssertNotCalled(suite.T(), "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	cfg := *suite.cfg
	cfg.LoginRateLimit = "2-M"
	suite.router = suite.newRouter(&cfg)
	suite.users.On("AuthenticateUser", mock.Anything, "admin", "bad").
		Return(nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized))

	for i := 0; i < 2; i++ {
		w := suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "bad"}, "", "")
		suite.Equal(http.StatusUnauthorized, w.Code)
	}

	w := suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "bad"}, "", "")
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Equal("0", w.Header().Get("X-RateLimit-Remaining"))
	suite.users.AssertNumberOfCalls(suite.T(), "AuthenticateUser", 2)
}

func (suite *HandlerTestSuite) TestMe() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "ops", Role: domain.RoleOperations, IsActive: true}
	suite.users.On("GetUserByID", mock.Anything, userID).Return(user, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me", nil, userID, domain.RoleOperations)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MeResponse
	suite.decode(w, &resp)
	suite.Equal("ops", resp.User.Username)
	suite.Equal([]domain.Section{domain.SectionDashboard, domain.SectionCustomers, domain.SectionShipments}, resp.Sections)
}
