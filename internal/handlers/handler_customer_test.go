package handlers_test

import (
	"net/http"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateCustomer() {
	userID := uuid.NewString()
	created := &domain.Customer{CustomerID: uuid.NewString(), CompanyName: "Tripoli Traders", Country: domain.DefaultCountry, CreditLimit: dec("5000")}
	suite.customers.On("CreateCustomer", mock.Anything,
		mock.MatchedBy(func(req dto.CreateCustomerRequest) bool {
			return req.CompanyName == "Tripoli Traders" && req.CreditLimit.Equal(dec("5000")) && req.PaymentTerms == 45
		}),
		userID,
	).Return(created, nil).Once()

	body := map[string]any{"companyName": "Tripoli Traders", "creditLimit": 5000, "paymentTerms": 45}
	w := suite.do(http.MethodPost, "/api/v1/customers", body, userID, domain.RoleSales)

	suite.Equal(http.StatusCreated, w.Code)
	var resp domain.Customer
	suite.decode(w, &resp)
	suite.Equal("Libya", resp.Country)
	suite.customers.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateCustomer_BindingErrors() {
	testCases := []struct {
		name string
		body map[string]any
	}{
		{"missing company name", map[string]any{"creditLimit": 10}},
		{"negative credit limit", map[string]any{"companyName": "Benghazi Imports", "creditLimit": -1}},
		{"negative payment terms", map[string]any{"companyName": "Benghazi Imports", "paymentTerms": -30}},
		{"bad email", map[string]any{"companyName": "Benghazi Imports", "email": "not-an-email"}},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/customers", tc.body, uuid.NewString(), domain.RoleSales)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.customers.AssertNotCalled(suite.T(), "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpdateCustomer_NotFound() {
	suite.customers.On("UpdateCustomer", mock.Anything, "missing", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/v1/customers/missing", map[string]any{"city": "Misrata"}, uuid.NewString(), domain.RoleCustomerService)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteCustomer() {
	customerID := uuid.NewString()
	suite.customers.On("DeleteCustomer", mock.Anything, customerID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/customers/"+customerID, nil, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.customers.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListCustomers() {
	suite.customers.On("ListCustomers", mock.Anything).Return([]domain.Customer{{CustomerID: "c1", CompanyName: "A"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/customers", nil, uuid.NewString(), domain.RoleOperations)

	suite.Equal(http.StatusOK, w.Code)
	var resp []domain.Customer
	suite.decode(w, &resp)
	suite.Len(resp, 1)
}
