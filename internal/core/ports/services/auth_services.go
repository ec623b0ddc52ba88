package services

import (
	"context"

	"github.com/SscSPs/todo_backend/internal/core/domain"
)

// TokenSvcFacade issues and verifies access and refresh tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, userID string) (domain.IssuedToken, error)
	GenerateRefreshToken(ctx context.Context, userID string) (domain.IssuedToken, error)

	// ParseAccessToken returns the user ID the token was issued for, or an error wrapping
	// apperrors.ErrInvalidToken.
	ParseAccessToken(ctx context.Context, token string) (string, error)
	ParseRefreshToken(ctx context.Context, token string) (string, error)
}

// Authenticator resolves an access token to the user it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}

// SessionSvcFacade manages the login/refresh/logout lifecycle of a user session.
type SessionSvcFacade interface {
	Authenticator

	Login(ctx context.Context, email, password string) (*domain.Session, error)

	// Refresh exchanges the user's current refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*domain.Session, error)

	// Logout drops the stored refresh token. Calling it twice is harmless.
	Logout(ctx context.Context, userID string) error
}
