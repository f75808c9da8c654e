package mapping

import (
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        nullableString(d.Email),
		FullName:     d.FullName,
		Role:         string(d.Role),
		Phone:        nullableString(d.Phone),
		IsActive:     d.IsActive,
		PasswordHash: d.PasswordHash,
		CreatedBy:    nullableString(d.CreatedBy),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        derefString(m.Email),
		FullName:     m.FullName,
		Role:         domain.Role(m.Role),
		Phone:        derefString(m.Phone),
		IsActive:     m.IsActive,
		PasswordHash: m.PasswordHash,
		CreatedBy:    derefString(m.CreatedBy),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
