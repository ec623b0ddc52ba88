package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/dto"
	"github.com/SscSPs/todo_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func writeSuccess(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, data, message))
}

// writeError resolves err into the error envelope. Server faults are logged with their
// cause; client faults only at warn level.
func writeError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	logger := middleware.GetLoggerFromContext(c)
	if appErr.Code >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", appErr.Code), slog.String("reason", appErr.Message))
	}
	c.JSON(appErr.Code, dto.NewAPIErrorResponse(appErr))
}

// writeBindError reports a body that could not be decoded or failed its binding tags.
// message summarises the failure; per-field problems go into the errors list.
func writeBindError(c *gin.Context, err error, message string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeError(c, apperrors.NewAppError(http.StatusRequestEntityTooLarge, "Request body too large", err))
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, describeFieldError(fe))
		}
		writeError(c, apperrors.NewBadRequestError(message, details...))
		return
	}

	writeError(c, apperrors.NewBadRequestError("Invalid request body", err.Error()))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// requireUserID returns the caller set by the auth middleware. Routes without the
// middleware never reach here with a user, so a miss is answered with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		writeError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return "", false
	}
	return userID, true
}
