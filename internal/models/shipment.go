package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment represents a row of the shipments table.
// CustomerName is filled from the joined customers row.
type Shipment struct {
	ShipmentID       string           `db:"id"`
	ShipmentNumber   string           `db:"shipment_number"`
	CustomerID       string           `db:"customer_id"`
	CustomerName     *string          `db:"company_name"`
	OriginPort       string           `db:"origin_port"`
	DestinationPort  string           `db:"destination_port"`
	DepartureDate    *time.Time       `db:"departure_date"`
	EstimatedArrival *time.Time       `db:"estimated_arrival"`
	ArrivalDate      *time.Time       `db:"arrival_date"`
	Status           string           `db:"status"`
	ContainerNumber  *string          `db:"container_number"`
	SealNumber       *string          `db:"seal_number"`
	WeightKg         *decimal.Decimal `db:"weight_kg"`
	VolumeCbm        *decimal.Decimal `db:"volume_cbm"`
	TotalAmount      decimal.Decimal  `db:"total_amount"`
	PaidAmount       decimal.Decimal  `db:"paid_amount"`
	PaymentStatus    string           `db:"payment_status"`
	Notes            *string          `db:"notes"`
	CreatedBy        *string          `db:"created_by"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}
