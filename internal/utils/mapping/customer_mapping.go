package mapping

import (
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.CustomerID,
		CompanyName:    d.CompanyName,
		ContactPerson:  nullableString(d.ContactPerson),
		Email:          nullableString(d.Email),
		Phone:          nullableString(d.Phone),
		Address:        nullableString(d.Address),
		City:           nullableString(d.City),
		Country:        d.Country,
		TaxNumber:      nullableString(d.TaxNumber),
		CreditLimit:    d.CreditLimit,
		CurrentBalance: d.CurrentBalance,
		PaymentTerms:   d.PaymentTerms,
		IsActive:       d.IsActive,
		CreatedBy:      nullableString(d.CreatedBy),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:     m.CustomerID,
		CompanyName:    m.CompanyName,
		ContactPerson:  derefString(m.ContactPerson),
		Email:          derefString(m.Email),
		Phone:          derefString(m.Phone),
		Address:        derefString(m.Address),
		City:           derefString(m.City),
		Country:        m.Country,
		TaxNumber:      derefString(m.TaxNumber),
		CreditLimit:    m.CreditLimit,
		CurrentBalance: m.CurrentBalance,
		PaymentTerms:   m.PaymentTerms,
		IsActive:       m.IsActive,
		CreatedBy:      derefString(m.CreatedBy),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
