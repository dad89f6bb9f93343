package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// WriteError writes err as a JSON error response with the status of its code.
func WriteError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := apperrors.HTTPStatus(code)

	if status >= http.StatusInternalServerError {
		attrs := []any{"code", code, "error", err, "path", c.Request.URL.Path}
		if se, ok := apperrors.As(err); ok && se.Context != nil {
			attrs = append(attrs, "context", se.Context)
		}
		slog.ErrorContext(c.Request.Context(), "request failed", attrs...)
	}

	c.JSON(status, ErrorResponse{Message: apperrors.PublicMessage(err), Success: false})
}

// ErrorHandler renders the last error a handler attached with c.Error when
// nothing has been written yet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}

// Recovery turns a panic into a 500 JSON error response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		message := "Internal Server Error"
		if err, ok := recovered.(error); ok {
			message = err.Error()
		}
		slog.ErrorContext(c.Request.Context(), "panic recovered",
			"panic", fmt.Sprint(recovered),
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: message, Success: false})
	})
}
