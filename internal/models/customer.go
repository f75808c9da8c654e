package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a row of the customers table.
type Customer struct {
	CustomerID     string          `db:"id"`
	CompanyName    string          `db:"company_name"`
	ContactPerson  *string         `db:"contact_person"`
	Email          *string         `db:"email"`
	Phone          *string         `db:"phone"`
	Address        *string         `db:"address"`
	City           *string         `db:"city"`
	Country        string          `db:"country"`
	TaxNumber      *string         `db:"tax_number"`
	CreditLimit    decimal.Decimal `db:"credit_limit"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	PaymentTerms   int             `db:"payment_terms"`
	IsActive       bool            `db:"is_active"`
	CreatedBy      *string         `db:"created_by"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}
