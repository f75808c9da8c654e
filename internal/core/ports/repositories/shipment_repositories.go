package repositories

import (
	"context"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
)

// ShipmentFilter narrows a shipment listing. Nil fields are ignored.
type ShipmentFilter struct {
	Status     *domain.ShipmentStatus
	CustomerID *string
}

// ShipmentRepositoryFacade defines persistence operations for shipments.
type ShipmentRepositoryFacade interface {
	// ListShipments returns shipments, newest first, annotated with the customer company name.
	ListShipments(ctx context.Context, filter ShipmentFilter) ([]domain.Shipment, error)
	FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error)
	SaveShipment(ctx context.Context, shipment domain.Shipment) error
	UpdateShipment(ctx context.Context, shipment domain.Shipment) error
	DeleteShipment(ctx context.Context, shipmentID string) error
}

// DashboardRepository aggregates the landing page figures.
type DashboardRepository interface {
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
