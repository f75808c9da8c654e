package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/freight_management_app/internal/models"
	"github.com/SscSPs/freight_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id, company_name, contact_person, email, phone, address, city, country, tax_number,
	credit_limit, current_balance, payment_terms, is_active, created_by, created_at, updated_at`

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

func newPgxCustomerRepository(db *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{db: db}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.CompanyName,
		&m.ContactPerson,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.City,
		&m.Country,
		&m.TaxNumber,
		&m.CreditLimit,
		&m.CurrentBalance,
		&m.PaymentTerms,
		&m.IsActive,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// ListCustomers returns all customers, newest first.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1;`

	m, err := scanCustomer(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db.Exec(ctx, query,
		m.CustomerID,
		m.CompanyName,
		m.ContactPerson,
		m.Email,
		m.Phone,
		m.Address,
		m.City,
		m.Country,
		m.TaxNumber,
		m.CreditLimit,
		m.CurrentBalance,
		m.PaymentTerms,
		m.IsActive,
		m.CreatedBy,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "customer "+m.CompanyName)
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET company_name = $2, contact_person = $3, email = $4, phone = $5, address = $6, city = $7,
		    country = $8, tax_number = $9, credit_limit = $10, payment_terms = $11, is_active = $12, updated_at = $13
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.CustomerID,
		m.CompanyName,
		m.ContactPerson,
		m.Email,
		m.Phone,
		m.Address,
		m.City,
		m.Country,
		m.TaxNumber,
		m.CreditLimit,
		m.PaymentTerms,
		m.IsActive,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCustomer removes a customer. Customers with shipments cannot be removed.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, customerID)
	if err != nil {
		return mapWriteError(err, "customer "+customerID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
