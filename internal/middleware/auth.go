package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards protected routes. The access token is read from the
// accessCookieName cookie, falling back to an "Authorization: Bearer" header.
// The token's subject is re-loaded so that deleted users are rejected even while
// their token is still within its lifetime.
func AuthMiddleware(authenticator portssvc.Authenticator, accessCookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		token := extractAccessToken(c, accessCookieName)
		if token == "" {
			logger.Warn("Access token missing")
			abortWithError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			appErr := apperrors.FromError(err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				logger.Info("Access token expired")
			} else {
				logger.Warn("Access token rejected", slog.String("error", err.Error()))
			}
			abortWithError(c, appErr)
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		setUser(c, user)
		setLogger(c, enrichedLogger)

		c.Next()
	}
}

func extractAccessToken(c *gin.Context, cookieName string) string {
	if cookieName != "" {
		if value, err := c.Cookie(cookieName); err == nil && value != "" {
			return value
		}
	}

	authHeader := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.Code, dto.NewAPIErrorResponse(appErr))
}
