package services

import (
	"context"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
)

// ShipmentSvcFacade defines shipment record operations.
type ShipmentSvcFacade interface {
	ListShipments(ctx context.Context, params dto.ListShipmentsParams) ([]domain.Shipment, error)
	GetShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error)
	CreateShipment(ctx context.Context, req dto.CreateShipmentRequest, creatorUserID string) (*domain.Shipment, error)
	UpdateShipment(ctx context.Context, shipmentID string, req dto.UpdateShipmentRequest) (*domain.Shipment, error)
	DeleteShipment(ctx context.Context, shipmentID string) error
}

// DashboardService provides the landing page overview.
type DashboardService interface {
	GetSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
