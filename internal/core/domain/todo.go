package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/todo_backend/internal/apperrors"
)

// Todo is a to-do item owned by exactly one user.
type Todo struct {
	TodoID      string `json:"todoID"`
	UserID      string `json:"userID"` // owner
	Title       string `json:"title"`
	Description string `json:"description"`
	AuditFields
}

// Validate checks the fields a persisted todo must carry.
func (t *Todo) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if t.UserID == "" {
		return fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	return nil
}

func (t *Todo) IsOwnedBy(userID string) bool {
	return userID != "" && t.UserID == userID
}
