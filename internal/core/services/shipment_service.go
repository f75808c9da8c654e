package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type shipmentService struct {
	BaseService
	shipmentRepo portsrepo.ShipmentRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewShipmentService creates a new ShipmentService.
func NewShipmentService(shipmentRepo portsrepo.ShipmentRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) portssvc.ShipmentSvcFacade {
	return &shipmentService{shipmentRepo: shipmentRepo, customerRepo: customerRepo}
}

var _ portssvc.ShipmentSvcFacade = (*shipmentService)(nil)

// parseOptionalDate parses a YYYY-MM-DD date; nil or empty input yields nil.
func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateFormat, *value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must use the YYYY-MM-DD format", apperrors.ErrValidation, field)
	}
	return &t, nil
}

func validateShipmentAmounts(sh *domain.Shipment) error {
	for _, d := range []*decimal.Decimal{sh.WeightKg, sh.VolumeCbm} {
		if d != nil && d.IsNegative() {
			return fmt.Errorf("%w: weight and volume cannot be negative", apperrors.ErrValidation)
		}
	}
	if sh.TotalAmount.IsNegative() || sh.PaidAmount.IsNegative() {
		return fmt.Errorf("%w: amounts cannot be negative", apperrors.ErrValidation)
	}
	if !sh.Status.IsValid() {
		return fmt.Errorf("%w: unknown shipment status %q", apperrors.ErrValidation, sh.Status)
	}
	if !sh.PaymentStatus.IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, sh.PaymentStatus)
	}
	return nil
}

func (s *shipmentService) ListShipments(ctx context.Context, params dto.ListShipmentsParams) ([]domain.Shipment, error) {
	shipments, err := s.shipmentRepo.ListShipments(ctx, portsrepo.ShipmentFilter{Status: params.Status, CustomerID: params.CustomerID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list shipments")
		return nil, fmt.Errorf("failed to load shipments: %w", err)
	}
	if shipments == nil {
		return []domain.Shipment{}, nil
	}
	return shipments, nil
}

func (s *shipmentService) GetShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	shipment, err := s.shipmentRepo.FindShipmentByID(ctx, shipmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get shipment", slog.String("shipment_id", shipmentID))
		}
		return nil, err
	}
	return shipment, nil
}

func (s *shipmentService) CreateShipment(ctx context.Context, req dto.CreateShipmentRequest, creatorUserID string) (*domain.Shipment, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	now := time.Now().UTC()
	shipment := domain.Shipment{
		ShipmentID:      uuid.NewString(),
		ShipmentNumber:  strings.TrimSpace(req.ShipmentNumber),
		CustomerID:      req.CustomerID,
		OriginPort:      strings.TrimSpace(req.OriginPort),
		DestinationPort: strings.TrimSpace(req.DestinationPort),
		Status:          req.Status,
		ContainerNumber: strings.TrimSpace(req.ContainerNumber),
		SealNumber:      strings.TrimSpace(req.SealNumber),
		WeightKg:        req.WeightKg,
		VolumeCbm:       req.VolumeCbm,
		TotalAmount:     req.TotalAmount,
		PaidAmount:      req.PaidAmount,
		PaymentStatus:   req.PaymentStatus,
		Notes:           req.Notes,
		CreatedBy:       creatorUserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if shipment.Status == "" {
		shipment.Status = domain.ShipmentPending
	}
	if shipment.PaymentStatus == "" {
		shipment.PaymentStatus = domain.PaymentPending
	}

	var err error
	if shipment.DepartureDate, err = parseOptionalDate("departureDate", req.DepartureDate); err != nil {
		return nil, err
	}
	if shipment.EstimatedArrival, err = parseOptionalDate("estimatedArrival", req.EstimatedArrival); err != nil {
		return nil, err
	}
	if shipment.ArrivalDate, err = parseOptionalDate("arrivalDate", req.ArrivalDate); err != nil {
		return nil, err
	}
	if err := validateShipmentAmounts(&shipment); err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.SaveShipment(ctx, shipment); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save shipment")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Shipment created", slog.String("shipment_id", shipment.ShipmentID), slog.String("shipment_number", shipment.ShipmentNumber))
	return &shipment, nil
}

func (s *shipmentService) UpdateShipment(ctx context.Context, shipmentID string, req dto.UpdateShipmentRequest) (*domain.Shipment, error) {
	shipment, err := s.GetShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if req.OriginPort != nil {
		shipment.OriginPort = strings.TrimSpace(*req.OriginPort)
	}
	if req.DestinationPort != nil {
		shipment.DestinationPort = strings.TrimSpace(*req.DestinationPort)
	}
	if req.DepartureDate != nil {
		if shipment.DepartureDate, err = parseOptionalDate("departureDate", req.DepartureDate); err != nil {
			return nil, err
		}
	}
	if req.EstimatedArrival != nil {
		if shipment.EstimatedArrival, err = parseOptionalDate("estimatedArrival", req.EstimatedArrival); err != nil {
			return nil, err
		}
	}
	if req.ArrivalDate != nil {
		if shipment.ArrivalDate, err = parseOptionalDate("arrivalDate", req.ArrivalDate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		shipment.Status = *req.Status
	}
	if req.ContainerNumber != nil {
		shipment.ContainerNumber = strings.TrimSpace(*req.ContainerNumber)
	}
	if req.SealNumber != nil {
		shipment.SealNumber = strings.TrimSpace(*req.SealNumber)
	}
	if req.WeightKg != nil {
		shipment.WeightKg = req.WeightKg
	}
	if req.VolumeCbm != nil {
		shipment.VolumeCbm = req.VolumeCbm
	}
	if req.TotalAmount != nil {
		shipment.TotalAmount = *req.TotalAmount
	}
	if req.PaidAmount != nil {
		shipment.PaidAmount = *req.PaidAmount
	}
	if req.PaymentStatus != nil {
		shipment.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		shipment.Notes = *req.Notes
	}
	if err := validateShipmentAmounts(shipment); err != nil {
		return nil, err
	}
	shipment.UpdatedAt = time.Now().UTC()

	if err := s.shipmentRepo.UpdateShipment(ctx, *shipment); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update shipment", slog.String("shipment_id", shipmentID))
		}
		return nil, err
	}
	return shipment, nil
}

func (s *shipmentService) DeleteShipment(ctx context.Context, shipmentID string) error {
	if err := s.shipmentRepo.DeleteShipment(ctx, shipmentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete shipment", slog.String("shipment_id", shipmentID))
		}
		return err
	}
	s.LogInfo(ctx, "Shipment deleted", slog.String("shipment_id", shipmentID))
	return nil
}
