package middlewares

import (
	"log/slog"

	"HostelHub/models"

	"github.com/gin-gonic/gin"
)

// AbortWithError ends the request with the status for kind and a
// {"error": message} body. The underlying cause is logged, never returned.
func AbortWithError(c *gin.Context, kind models.ErrorKind, message string, err error) {
	attrs := []any{
		"kind", kind.String(),
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString(RequestIDKey),
	}
	if err != nil {
		attrs = append(attrs, "error", err)
		_ = c.Error(err)
	}
	if kind == models.KindStoreFailure {
		slog.Error(message, attrs...)
	} else {
		slog.Debug(message, attrs...)
	}
	c.AbortWithStatusJSON(kind.Status(), models.ErrorResponse{Error: message})
}
