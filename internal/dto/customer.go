package dto

import (
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	CompanyName   string          `json:"companyName" binding:"required,max=200"`
	ContactPerson string          `json:"contactPerson" binding:"omitempty,max=200"`
	Email         string          `json:"email" binding:"omitempty,email"`
	Phone         string          `json:"phone" binding:"omitempty,max=30"`
	Address       string          `json:"address"`
	City          string          `json:"city" binding:"omitempty,max=100"`
	Country       string          `json:"country" binding:"omitempty,max=100"` // Defaults to Libya
	TaxNumber     string          `json:"taxNumber" binding:"omitempty,max=50"`
	CreditLimit   decimal.Decimal `json:"creditLimit" binding:"gte=0"`
	PaymentTerms  int             `json:"paymentTerms" binding:"gte=0"` // Days
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
type UpdateCustomerRequest struct {
	CompanyName   *string          `json:"companyName" binding:"omitempty,min=1,max=200"`
	ContactPerson *string          `json:"contactPerson" binding:"omitempty,max=200"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	Phone         *string          `json:"phone" binding:"omitempty,max=30"`
	Address       *string          `json:"address"`
	City          *string          `json:"city" binding:"omitempty,max=100"`
	Country       *string          `json:"country" binding:"omitempty,max=100"`
	TaxNumber     *string          `json:"taxNumber" binding:"omitempty,max=50"`
	CreditLimit   *decimal.Decimal `json:"creditLimit" binding:"omitempty,gte=0"`
	PaymentTerms  *int             `json:"paymentTerms" binding:"omitempty,gte=0"`
	IsActive      *bool            `json:"isActive"`
}
