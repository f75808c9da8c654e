package dto

import (
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShipmentRequest defines the data needed to create a shipment.
// Dates use the 2006-01-02 layout.
type CreateShipmentRequest struct {
	ShipmentNumber   string                `json:"shipmentNumber" binding:"required,max=50"`
	CustomerID       string                `json:"customerID" binding:"required,uuid"`
	OriginPort       string                `json:"originPort" binding:"required,max=100"`
	DestinationPort  string                `json:"destinationPort" binding:"required,max=100"`
	DepartureDate    *string               `json:"departureDate" binding:"omitempty,datetime=2006-01-02"`
	EstimatedArrival *string               `json:"estimatedArrival" binding:"omitempty,datetime=2006-01-02"`
	ArrivalDate      *string               `json:"arrivalDate" binding:"omitempty,datetime=2006-01-02"`
	Status           domain.ShipmentStatus `json:"status" binding:"omitempty,shipmentstatus"` // Defaults to pending
	ContainerNumber  string                `json:"containerNumber" binding:"omitempty,max=50"`
	SealNumber       string                `json:"sealNumber" binding:"omitempty,max=50"`
	WeightKg         *decimal.Decimal      `json:"weightKg" binding:"omitempty,gte=0"`
	VolumeCbm        *decimal.Decimal      `json:"volumeCbm" binding:"omitempty,gte=0"`
	TotalAmount      decimal.Decimal       `json:"totalAmount" binding:"gte=0"`
	PaidAmount       decimal.Decimal       `json:"paidAmount" binding:"gte=0"`
	PaymentStatus    domain.PaymentStatus  `json:"paymentStatus" binding:"omitempty,paymentstatus"` // Defaults to pending
	Notes            string                `json:"notes"`
}

// UpdateShipmentRequest defines the data allowed for updating a shipment.
type UpdateShipmentRequest struct {
	OriginPort       *string                `json:"originPort" binding:"omitempty,min=1,max=100"`
	DestinationPort  *string                `json:"destinationPort" binding:"omitempty,min=1,max=100"`
	DepartureDate    *string                `json:"departureDate" binding:"omitempty,datetime=2006-01-02"`
	EstimatedArrival *string                `json:"estimatedArrival" binding:"omitempty,datetime=2006-01-02"`
	ArrivalDate      *string                `json:"arrivalDate" binding:"omitempty,datetime=2006-01-02"`
	Status           *domain.ShipmentStatus `json:"status" binding:"omitempty,shipmentstatus"`
	ContainerNumber  *string                `json:"containerNumber" binding:"omitempty,max=50"`
	SealNumber       *string                `json:"sealNumber" binding:"omitempty,max=50"`
	WeightKg         *decimal.Decimal       `json:"weightKg" binding:"omitempty,gte=0"`
	VolumeCbm        *decimal.Decimal       `json:"volumeCbm" binding:"omitempty,gte=0"`
	TotalAmount      *decimal.Decimal       `json:"totalAmount" binding:"omitempty,gte=0"`
	PaidAmount       *decimal.Decimal       `json:"paidAmount" binding:"omitempty,gte=0"`
	PaymentStatus    *domain.PaymentStatus  `json:"paymentStatus" binding:"omitempty,paymentstatus"`
	Notes            *string                `json:"notes"`
}

// ListShipmentsParams filters the shipment list.
type ListShipmentsParams struct {
	Status     *domain.ShipmentStatus `form:"status" binding:"omitempty,shipmentstatus"`
	CustomerID *string                `form:"customerID" binding:"omitempty,uuid"`
}
