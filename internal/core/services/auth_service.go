package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/core/domain"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// authService drives the per-user session: NoSession until login, Active while a
// refresh token is stored on the user row, back to NoSession on logout.
type authService struct {
	BaseService
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthService creates the session manager.
func NewAuthService(userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade) portssvc.SessionSvcFacade {
	return &authService{
		userService:  userService,
		tokenService: tokenService,
	}
}

var _ portssvc.SessionSvcFacade = (*authService)(nil)

func invalidTokenError(message string, cause error) *apperrors.AppError {
	if cause == nil {
		cause = apperrors.ErrInvalidToken
	}
	return apperrors.NewAppError(http.StatusUnauthorized, message, cause)
}

// Login verifies credentials and starts a new session, replacing any session the user
// had elsewhere.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.userService.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session, err := s.startSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return session, nil
}

// Refresh accepts only the refresh token most recently issued to the user and rotates it.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	if refreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized request")
	}

	userID, err := s.tokenService.ParseRefreshToken(ctx, refreshToken)
	if err != nil {
		s.LogWarn(ctx, "Refresh token failed verification", slog.String("error", err.Error()))
		return nil, invalidTokenError("Invalid refresh token", err)
	}

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalidTokenError("Invalid refresh token", nil)
		}
		return nil, err
	}

	if !user.HasActiveSession(time.Now()) || !utils.CompareRefreshTokenHash(refreshToken, *user.RefreshTokenHash) {
		s.LogWarn(ctx, "Refresh token does not match the stored session", slog.String("user_id", user.UserID))
		return nil, invalidTokenError("Refresh token is expired or used", nil)
	}

	session, err := s.startSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Session refreshed", slog.String("user_id", user.UserID))
	return session, nil
}

// Logout is idempotent: a user without a session, or one that is already gone, is not an error.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userService.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	s.LogInfo(ctx, "User logged out", slog.String("user_id", userID))
	return nil
}

// Authenticate verifies an access token and loads its user, so a deleted user is locked
// out even while the token itself is still valid.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	if accessToken == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized request")
	}

	userID, err := s.tokenService.ParseAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, invalidTokenError("Access token expired", err)
		}
		return nil, invalidTokenError("Invalid access token", err)
	}

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalidTokenError("Invalid access token", nil)
		}
		return nil, err
	}
	return user, nil
}

// startSession issues a token pair and makes the new refresh token the only valid one.
func (s *authService) startSession(ctx context.Context, user *domain.User) (*domain.Session, error) {
	accessToken, err := s.tokenService.GenerateAccessToken(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenService.GenerateRefreshToken(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.userService.UpdateRefreshToken(ctx, user.UserID, refreshToken.Value, refreshToken.ExpiresAt); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unauthorized request")
		}
		return nil, err
	}

	hash := utils.HashRefreshToken(refreshToken.Value)
	user.RefreshTokenHash = &hash
	user.RefreshTokenExpiryTime = &refreshToken.ExpiresAt

	return &domain.Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
