package middleware

import (
	"context"

	"github.com/SscSPs/todo_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and userKey hold the identity resolved by the auth gate.
const (
	userIDKey = contextKey("userID")
	userKey   = contextKey("user")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserFromContext retrieves the user record loaded by the auth gate.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	if userVal, exists := c.Get(string(userKey)); exists {
		user, ok := userVal.(*domain.User)
		return user, ok && user != nil
	}
	user, ok := c.Request.Context().Value(userKey).(*domain.User)
	return user, ok && user != nil
}

// setUser attaches the authenticated user to both contexts.
func setUser(c *gin.Context, user *domain.User) {
	c.Set(string(userIDKey), user.UserID)
	c.Set(string(userKey), user)
	ctx := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
	ctx = context.WithValue(ctx, userKey, user)
	c.Request = c.Request.WithContext(ctx)
}
