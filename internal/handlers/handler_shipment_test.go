package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListShipments_Filter() {
	customerID := uuid.NewString()
	suite.shipments.On("ListShipments", mock.Anything,
		mock.MatchedBy(func(p dto.ListShipmentsParams) bool {
			return p.Status != nil && *p.Status == domain.ShipmentInTransit &&
				p.CustomerID != nil && *p.CustomerID == customerID
		}),
	).Return([]domain.Shipment{{ShipmentID: "s1", ShipmentNumber: "SH-1", CustomerID: customerID, Status: domain.ShipmentInTransit}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shipments?status=in_transit&customerID="+customerID, nil, uuid.NewString(), domain.RoleOperations)

	suite.Equal(http.StatusOK, w.Code)
	var resp []domain.Shipment
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal("SH-1", resp[0].ShipmentNumber)
	suite.shipments.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListShipments_InvalidStatus() {
	w := suite.do(http.MethodGet, "/api/v1/shipments?status=lost", nil, uuid.NewString(), domain.RoleOperations)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.shipments.AssertNotCalled(suite.T(), "ListShipments", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateShipment() {
	userID := uuid.NewString()
	customerID := uuid.NewString()
	body := map[string]any{
		"shipmentNumber":  "SH-2024-001",
		"customerID":      customerID,
		"originPort":      "Shanghai",
		"destinationPort": "Misrata",
		"departureDate":   "2024-05-02",
		"totalAmount":     "12500.500",
		"paidAmount":      "2500",
	}
	created := &domain.Shipment{ShipmentID: uuid.NewString(), ShipmentNumber: "SH-2024-001", CustomerID: customerID,
		Status: domain.ShipmentPending, PaymentStatus: domain.PaymentPending}
	suite.shipments.On("CreateShipment", mock.Anything,
		mock.MatchedBy(func(req dto.CreateShipmentRequest) bool {
			return req.ShipmentNumber == "SH-2024-001" && req.TotalAmount.Equal(dec("12500.5")) &&
				req.DepartureDate != nil && *req.DepartureDate == "2024-05-02"
		}),
		userID,
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/shipments", body, userID, domain.RoleSales)

	suite.Equal(http.StatusCreated, w.Code)
	var resp domain.Shipment
	suite.decode(w, &resp)
	suite.Equal(domain.ShipmentPending, resp.Status)
	suite.shipments.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateShipment_Errors() {
	valid := func() map[string]any {
		return map[string]any{
			"shipmentNumber":  "SH-9",
			"customerID":      uuid.NewString(),
			"originPort":      "Izmir",
			"destinationPort": "Tripoli",
		}
	}

	suite.Run("negative amount", func() {
		suite.SetupTest()
		body := valid()
		body["paidAmount"] = -10
		w := suite.do(http.MethodPost, "/api/v1/shipments", body, uuid.NewString(), domain.RoleSales)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.shipments.AssertNotCalled(suite.T(), "CreateShipment", mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("unknown payment status", func() {
		suite.SetupTest()
		body := valid()
		body["paymentStatus"] = "refunded"
		w := suite.do(http.MethodPost, "/api/v1/shipments", body, uuid.NewString(), domain.RoleSales)
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("customer id is not a uuid", func() {
		suite.SetupTest()
		body := valid()
		body["customerID"] = "42"
		w := suite.do(http.MethodPost, "/api/v1/shipments", body, uuid.NewString(), domain.RoleSales)
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("duplicate shipment number", func() {
		suite.SetupTest()
		suite.shipments.On("CreateShipment", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: shipment SH-9 already exists", apperrors.ErrDuplicate)).Once()
		w := suite.do(http.MethodPost, "/api/v1/shipments", valid(), uuid.NewString(), domain.RoleSales)
		suite.Equal(http.StatusConflict, w.Code)
	})
}

func (suite *HandlerTestSuite) TestUpdateShipment() {
	shipmentID := uuid.NewString()
	updated := &domain.Shipment{ShipmentID: shipmentID, Status: domain.ShipmentDelivered, PaymentStatus: domain.PaymentPaid}
	suite.shipments.On("UpdateShipment", mock.Anything, shipmentID,
		mock.MatchedBy(func(req dto.UpdateShipmentRequest) bool {
			return req.Status != nil && *req.Status == domain.ShipmentDelivered && req.OriginPort == nil
		}),
	).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/shipments/"+shipmentID,
		map[string]any{"status": "delivered", "paymentStatus": "paid"}, uuid.NewString(), domain.RoleOperations)

	suite.Equal(http.StatusOK, w.Code)
	suite.shipments.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteShipment_NotFound() {
	suite.shipments.On("DeleteShipment", mock.Anything, "gone").Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/shipments/gone", nil, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusNotFound, w.Code)
}
