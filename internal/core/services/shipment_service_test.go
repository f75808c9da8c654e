package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/freight_management_app/internal/core/services"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShipmentService_CreateDefaultsStatuses(t *testing.T) {
	ctx := context.Background()
	shipRepo := new(MockShipmentRepository)
	custRepo := new(MockCustomerRepository)
	svc := services.NewShipmentService(shipRepo, custRepo)
	customerID := uuid.NewString()
	departure := "2024-05-02"

	custRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	shipRepo.On("SaveShipment", ctx, mock.MatchedBy(func(s domain.Shipment) bool {
		return s.Status == domain.ShipmentPending &&
			s.PaymentStatus == domain.PaymentPending &&
			s.DepartureDate != nil && s.DepartureDate.Day() == 2 &&
			s.ArrivalDate == nil
	})).Return(nil).Once()

	shipment, err := svc.CreateShipment(ctx, dto.CreateShipmentRequest{
		ShipmentNumber:  "SH-2024-001",
		CustomerID:      customerID,
		OriginPort:      "Misrata",
		DestinationPort: "Valletta",
		DepartureDate:   &departure,
		TotalAmount:     decimal.NewFromInt(1200),
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, "SH-2024-001", shipment.ShipmentNumber)
	shipRepo.AssertExpectations(t)
	custRepo.AssertExpectations(t)
}

func TestShipmentService_CreateUnknownCustomer(t *testing.T) {
	ctx := context.Background()
	shipRepo := new(MockShipmentRepository)
	custRepo := new(MockCustomerRepository)
	svc := services.NewShipmentService(shipRepo, custRepo)
	customerID := uuid.NewString()

	custRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.CreateShipment(ctx, dto.CreateShipmentRequest{ShipmentNumber: "SH-1", CustomerID: customerID}, uuid.NewString())

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	shipRepo.AssertNotCalled(t, "SaveShipment", mock.Anything, mock.Anything)
}

func TestShipmentService_UpdateRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	shipRepo := new(MockShipmentRepository)
	svc := services.NewShipmentService(shipRepo, new(MockCustomerRepository))
	id := uuid.NewString()
	status := domain.ShipmentStatus("lost_at_sea")

	shipRepo.On("FindShipmentByID", ctx, id).Return(&domain.Shipment{
		ShipmentID: id, Status: domain.ShipmentShipped, PaymentStatus: domain.PaymentPaid,
	}, nil).Once()

	_, err := svc.UpdateShipment(ctx, id, dto.UpdateShipmentRequest{Status: &status})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	shipRepo.AssertNotCalled(t, "UpdateShipment", mock.Anything, mock.Anything)
}

func TestShipmentService_ListPassesFilter(t *testing.T) {
	ctx := context.Background()
	shipRepo := new(MockShipmentRepository)
	svc := services.NewShipmentService(shipRepo, new(MockCustomerRepository))
	status := domain.ShipmentInTransit

	shipRepo.On("ListShipments", ctx, portsrepo.ShipmentFilter{Status: &status}).Return(nil, nil).Once()

	shipments, err := svc.ListShipments(ctx, dto.ListShipmentsParams{Status: &status})

	require.NoError(t, err)
	assert.NotNil(t, shipments)
	shipRepo.AssertExpectations(t)
}

func TestDashboardService_GetSummary(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDashboardRepository)
	svc := services.NewDashboardService(repo)

	repo.On("GetDashboardSummary", ctx).Return(&domain.DashboardSummary{CustomerCount: 3}, nil).Once()

	summary, err := svc.GetSummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.CustomerCount)
	assert.NotNil(t, summary.ShipmentsByStatus)
}

func TestDashboardService_GetSummaryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDashboardRepository)
	svc := services.NewDashboardService(repo)

	repo.On("GetDashboardSummary", ctx).Return(nil, assert.AnError).Once()

	summary, err := svc.GetSummary(ctx)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, assert.AnError)
}
