package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner rejects access to a resource owned by someone else. The rejection is
// reported as not found so callers cannot probe for other users' ids.
func (s *BaseService) AuthorizeOwner(ctx context.Context, ownerID, callerID, notFoundMsg string) error {
	if ownerID == "" || ownerID != callerID {
		s.LogWarn(ctx, "Access to resource owned by another user denied",
			slog.String("owner_id", ownerID),
			slog.String("caller_id", callerID))
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	return nil
}
