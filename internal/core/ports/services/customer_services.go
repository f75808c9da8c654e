package services

import (
	"context"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
)

// CustomerSvcFacade defines customer record operations.
type CustomerSvcFacade interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}
