package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// Recovery converts a panic inside a handler into a 500 envelope and keeps the process alive.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromContext(c).Error("Recovered from panic",
			slog.String("panic", fmt.Sprint(recovered)),
			slog.String("stack", string(debug.Stack())),
		)
		abortWithError(c, apperrors.NewInternalServerError("Internal server error"))
	})
}
