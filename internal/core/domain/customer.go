package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCountry is used when a customer is created without a country.
const DefaultCountry = "Libya"

// Customer is a shipping customer account.
type Customer struct {
	CustomerID     string          `json:"customerID"`
	CompanyName    string          `json:"companyName"`
	ContactPerson  string          `json:"contactPerson,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	City           string          `json:"city,omitempty"`
	Country        string          `json:"country"`
	TaxNumber      string          `json:"taxNumber,omitempty"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	PaymentTerms   int             `json:"paymentTerms"` // Days
	IsActive       bool            `json:"isActive"`
	CreatedBy      string          `json:"createdBy,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
