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

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: repo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get customer", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	if req.CreditLimit.IsNegative() || req.PaymentTerms < 0 {
		return nil, fmt.Errorf("%w: credit limit and payment terms cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:     uuid.NewString(),
		CompanyName:    strings.TrimSpace(req.CompanyName),
		ContactPerson:  strings.TrimSpace(req.ContactPerson),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Address:        strings.TrimSpace(req.Address),
		City:           strings.TrimSpace(req.City),
		Country:        strings.TrimSpace(req.Country),
		TaxNumber:      strings.TrimSpace(req.TaxNumber),
		CreditLimit:    req.CreditLimit,
		CurrentBalance: decimal.Zero,
		PaymentTerms:   req.PaymentTerms,
		IsActive:       true,
		CreatedBy:      creatorUserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if customer.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}
	if customer.Country == "" {
		customer.Country = domain.DefaultCountry
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer")
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&customer.CompanyName, req.CompanyName)
	setString(&customer.ContactPerson, req.ContactPerson)
	setString(&customer.Email, req.Email)
	setString(&customer.Phone, req.Phone)
	setString(&customer.Address, req.Address)
	setString(&customer.City, req.City)
	setString(&customer.Country, req.Country)
	setString(&customer.TaxNumber, req.TaxNumber)
	if req.CreditLimit != nil {
		customer.CreditLimit = *req.CreditLimit
	}
	if req.PaymentTerms != nil {
		customer.PaymentTerms = *req.PaymentTerms
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if customer.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}
	if customer.CreditLimit.IsNegative() || customer.PaymentTerms < 0 {
		return nil, fmt.Errorf("%w: credit limit and payment terms cannot be negative", apperrors.ErrValidation)
	}
	if customer.Country == "" {
		customer.Country = domain.DefaultCountry
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		}
		return err
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}
