package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/core/domain"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/platform/config"
	"github.com/SscSPs/todo_backend/internal/utils"
)

// tokenService signs and verifies JWTs. Access and refresh tokens use separate secrets,
// so one can never be passed off as the other.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, userID string) (domain.IssuedToken, error) {
	return s.issue(userID, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry)
}

func (s *tokenService) GenerateRefreshToken(ctx context.Context, userID string) (domain.IssuedToken, error) {
	return s.issue(userID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry)
}

func (s *tokenService) ParseAccessToken(ctx context.Context, token string) (string, error) {
	return s.parse(token, s.cfg.AccessTokenSecret)
}

func (s *tokenService) ParseRefreshToken(ctx context.Context, token string) (string, error) {
	return s.parse(token, s.cfg.RefreshTokenSecret)
}

func (s *tokenService) issue(userID, secret string, ttl time.Duration) (domain.IssuedToken, error) {
	value, expiresAt, err := utils.GenerateJWT(userID, secret, ttl, s.cfg.JWTIssuer)
	if err != nil {
		return domain.IssuedToken{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return domain.IssuedToken{Value: value, ExpiresAt: expiresAt}, nil
}

// parse wraps every failure in ErrInvalidToken while keeping the jwt cause (e.g. jwt.ErrTokenExpired).
func (s *tokenService) parse(token, secret string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, secret, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}
	return claims.Subject, nil
}
