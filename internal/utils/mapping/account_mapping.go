package mapping

import (
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		AccountCode:     d.Code,
		AccountName:     d.Name,
		AccountType:     models.AccountType(d.AccountType),
		ParentAccountID: nullableString(d.ParentAccountID),
		Level:           d.Level,
		IsActive:        d.IsActive,
		Balance:         d.Balance,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Code:            m.AccountCode,
		Name:            m.AccountName,
		AccountType:     domain.AccountType(m.AccountType),
		ParentAccountID: derefString(m.ParentAccountID),
		Level:           m.Level,
		IsActive:        m.IsActive,
		Balance:         m.Balance,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
