package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/platform/config"
	"github.com/SscSPs/freight_management_app/internal/utils"
)

// tokenService implements the AuthSvcFacade for handling JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("%w: failed to generate access token", apperrors.ErrInternal)
	}
	return token, expiresAt, nil
}
