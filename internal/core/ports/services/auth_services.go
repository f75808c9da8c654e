package services

import (
	"context"
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
)

// AuthSvcFacade issues access tokens for authenticated users.
type AuthSvcFacade interface {
	// GenerateAccessToken signs a JWT carrying the user ID and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
