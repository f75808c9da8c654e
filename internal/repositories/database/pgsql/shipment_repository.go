package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/freight_management_app/internal/models"
	"github.com/SscSPs/freight_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const shipmentSelect = `
	SELECT s.id, s.shipment_number, s.customer_id, c.company_name, s.origin_port, s.destination_port,
	       s.departure_date, s.estimated_arrival, s.arrival_date, s.status, s.container_number, s.seal_number,
	       s.weight_kg, s.volume_cbm, s.total_amount, s.paid_amount, s.payment_status, s.notes,
	       s.created_by, s.created_at, s.updated_at
	FROM shipments s
	LEFT JOIN customers c ON c.id = s.customer_id
`

type PgxShipmentRepository struct {
	db *pgxpool.Pool
}

func newPgxShipmentRepository(db *pgxpool.Pool) *PgxShipmentRepository {
	return &PgxShipmentRepository{db: db}
}

var (
	_ portsrepo.ShipmentRepositoryFacade = (*PgxShipmentRepository)(nil)
	_ portsrepo.DashboardRepository      = (*PgxShipmentRepository)(nil)
)

func scanShipment(row pgx.Row) (models.Shipment, error) {
	var m models.Shipment
	err := row.Scan(
		&m.ShipmentID,
		&m.ShipmentNumber,
		&m.CustomerID,
		&m.CustomerName,
		&m.OriginPort,
		&m.DestinationPort,
		&m.DepartureDate,
		&m.EstimatedArrival,
		&m.ArrivalDate,
		&m.Status,
		&m.ContainerNumber,
		&m.SealNumber,
		&m.WeightKg,
		&m.VolumeCbm,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.PaymentStatus,
		&m.Notes,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// ListShipments returns shipments, newest first, annotated with the customer company name.
func (r *PgxShipmentRepository) ListShipments(ctx context.Context, filter portsrepo.ShipmentFilter) ([]domain.Shipment, error) {
	var conditions []string
	var args []any
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, "s.status = $"+strconv.Itoa(len(args)))
	}
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		conditions = append(conditions, "s.customer_id = $"+strconv.Itoa(len(args)))
	}

	query := shipmentSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	shipments := []domain.Shipment{}
	for rows.Next() {
		m, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shipment row: %w", err)
		}
		shipments = append(shipments, mapping.ToDomainShipment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment rows: %w", err)
	}
	return shipments, nil
}

func (r *PgxShipmentRepository) FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	m, err := scanShipment(r.db.QueryRow(ctx, shipmentSelect+" WHERE s.id = $1;", shipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shipment %s: %w", shipmentID, err)
	}
	shipment := mapping.ToDomainShipment(m)
	return &shipment, nil
}

func (r *PgxShipmentRepository) SaveShipment(ctx context.Context, shipment domain.Shipment) error {
	m := mapping.ToModelShipment(shipment)
	query := `
		INSERT INTO shipments (id, shipment_number, customer_id, origin_port, destination_port,
			departure_date, estimated_arrival, arrival_date, status, container_number, seal_number,
			weight_kg, volume_cbm, total_amount, paid_amount, payment_status, notes,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.db.Exec(ctx, query,
		m.ShipmentID,
		m.ShipmentNumber,
		m.CustomerID,
		m.OriginPort,
		m.DestinationPort,
		m.DepartureDate,
		m.EstimatedArrival,
		m.ArrivalDate,
		m.Status,
		m.ContainerNumber,
		m.SealNumber,
		m.WeightKg,
		m.VolumeCbm,
		m.TotalAmount,
		m.PaidAmount,
		m.PaymentStatus,
		m.Notes,
		m.CreatedBy,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "shipment "+m.ShipmentNumber)
	}
	return nil
}

func (r *PgxShipmentRepository) UpdateShipment(ctx context.Context, shipment domain.Shipment) error {
	m := mapping.ToModelShipment(shipment)
	query := `
		UPDATE shipments
		SET origin_port = $2, destination_port = $3, departure_date = $4, estimated_arrival = $5,
		    arrival_date = $6, status = $7, container_number = $8, seal_number = $9, weight_kg = $10,
		    volume_cbm = $11, total_amount = $12, paid_amount = $13, payment_status = $14, notes = $15,
		    updated_at = $16
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.ShipmentID,
		m.OriginPort,
		m.DestinationPort,
		m.DepartureDate,
		m.EstimatedArrival,
		m.ArrivalDate,
		m.Status,
		m.ContainerNumber,
		m.SealNumber,
		m.WeightKg,
		m.VolumeCbm,
		m.TotalAmount,
		m.PaidAmount,
		m.PaymentStatus,
		m.Notes,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update shipment %s: %w", m.ShipmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShipmentRepository) DeleteShipment(ctx context.Context, shipmentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM shipments WHERE id = $1;`, shipmentID)
	if err != nil {
		return fmt.Errorf("failed to delete shipment %s: %w", shipmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetDashboardSummary counts customers and shipments and totals shipment amounts.
func (r *PgxShipmentRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{
		ShipmentsByStatus:  map[domain.ShipmentStatus]int{},
		TotalShipmentValue: decimal.Zero,
		TotalCollected:     decimal.Zero,
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&summary.CustomerCount); err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(SUM(paid_amount), 0)
		FROM shipments
		GROUP BY status;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate shipments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		var total, paid decimal.Decimal
		if err := rows.Scan(&status, &count, &total, &paid); err != nil {
			return nil, fmt.Errorf("failed to scan shipment aggregate row: %w", err)
		}
		summary.ShipmentsByStatus[domain.ShipmentStatus(status)] = count
		summary.ShipmentCount += count
		summary.TotalShipmentValue = summary.TotalShipmentValue.Add(total)
		summary.TotalCollected = summary.TotalCollected.Add(paid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment aggregate rows: %w", err)
	}
	return summary, nil
}
