package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentStatus tracks the physical progress of a shipment.
type ShipmentStatus string

const (
	ShipmentPending    ShipmentStatus = "pending"
	ShipmentProcessing ShipmentStatus = "processing"
	ShipmentShipped    ShipmentStatus = "shipped"
	ShipmentInTransit  ShipmentStatus = "in_transit"
	ShipmentDelivered  ShipmentStatus = "delivered"
	ShipmentCancelled  ShipmentStatus = "cancelled"
)

// IsValid reports whether s is a known shipment status.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentPending, ShipmentProcessing, ShipmentShipped, ShipmentInTransit, ShipmentDelivered, ShipmentCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks how much of a shipment has been paid.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentPartial   PaymentStatus = "partial"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentCancelled PaymentStatus = "cancelled"
)

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPartial, PaymentOverdue, PaymentCancelled:
		return true
	}
	return false
}

// Shipment is a freight consignment for a customer.
type Shipment struct {
	ShipmentID       string           `json:"shipmentID"`
	ShipmentNumber   string           `json:"shipmentNumber"`
	CustomerID       string           `json:"customerID"`
	CustomerName     string           `json:"customerName,omitempty"`
	OriginPort       string           `json:"originPort"`
	DestinationPort  string           `json:"destinationPort"`
	DepartureDate    *time.Time       `json:"departureDate,omitempty"`
	EstimatedArrival *time.Time       `json:"estimatedArrival,omitempty"`
	ArrivalDate      *time.Time       `json:"arrivalDate,omitempty"`
	Status           ShipmentStatus   `json:"status"`
	ContainerNumber  string           `json:"containerNumber,omitempty"`
	SealNumber       string           `json:"sealNumber,omitempty"`
	WeightKg         *decimal.Decimal `json:"weightKg,omitempty"`
	VolumeCbm        *decimal.Decimal `json:"volumeCbm,omitempty"`
	TotalAmount      decimal.Decimal  `json:"totalAmount"`
	PaidAmount       decimal.Decimal  `json:"paidAmount"`
	PaymentStatus    PaymentStatus    `json:"paymentStatus"`
	Notes            string           `json:"notes,omitempty"`
	CreatedBy        string           `json:"createdBy,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
