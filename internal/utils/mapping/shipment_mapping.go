package mapping

import (
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/models"
)

// ToModelShipment converts a domain Shipment to a model Shipment
func ToModelShipment(d domain.Shipment) models.Shipment {
	return models.Shipment{
		ShipmentID:       d.ShipmentID,
		ShipmentNumber:   d.ShipmentNumber,
		CustomerID:       d.CustomerID,
		CustomerName:     nullableString(d.CustomerName),
		OriginPort:       d.OriginPort,
		DestinationPort:  d.DestinationPort,
		DepartureDate:    d.DepartureDate,
		EstimatedArrival: d.EstimatedArrival,
		ArrivalDate:      d.ArrivalDate,
		Status:           string(d.Status),
		ContainerNumber:  nullableString(d.ContainerNumber),
		SealNumber:       nullableString(d.SealNumber),
		WeightKg:         d.WeightKg,
		VolumeCbm:        d.VolumeCbm,
		TotalAmount:      d.TotalAmount,
		PaidAmount:       d.PaidAmount,
		PaymentStatus:    string(d.PaymentStatus),
		Notes:            nullableString(d.Notes),
		CreatedBy:        nullableString(d.CreatedBy),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDomainShipment converts a model Shipment to a domain Shipment
func ToDomainShipment(m models.Shipment) domain.Shipment {
	return domain.Shipment{
		ShipmentID:       m.ShipmentID,
		ShipmentNumber:   m.ShipmentNumber,
		CustomerID:       m.CustomerID,
		CustomerName:     derefString(m.CustomerName),
		OriginPort:       m.OriginPort,
		DestinationPort:  m.DestinationPort,
		DepartureDate:    m.DepartureDate,
		EstimatedArrival: m.EstimatedArrival,
		ArrivalDate:      m.ArrivalDate,
		Status:           domain.ShipmentStatus(m.Status),
		ContainerNumber:  derefString(m.ContainerNumber),
		SealNumber:       derefString(m.SealNumber),
		WeightKg:         m.WeightKg,
		VolumeCbm:        m.VolumeCbm,
		TotalAmount:      m.TotalAmount,
		PaidAmount:       m.PaidAmount,
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		Notes:            derefString(m.Notes),
		CreatedBy:        derefString(m.CreatedBy),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
