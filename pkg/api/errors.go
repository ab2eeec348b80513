package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MiniSankaz/fleetd/pkg/approval"
	"github.com/MiniSankaz/fleetd/pkg/dispatch"
)

// abortWithError maps component errors to HTTP responses.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dispatch.ErrTaskNotFound),
		errors.Is(err, approval.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, dispatch.ErrDuplicateTask),
		errors.Is(err, dispatch.ErrTaskTerminal),
		errors.Is(err, dispatch.ErrTaskDispatched),
		errors.Is(err, approval.ErrNotPending),
		errors.Is(err, approval.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, approval.ErrNotApprover),
		errors.Is(err, approval.ErrSelfApproval),
		errors.Is(err, approval.ErrBypassDenied),
		errors.Is(err, approval.ErrBypassRole):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, approval.ErrQueueFull):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, approval.ErrNoPolicy):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		slog.Error("Unexpected handler error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requestLogger emits one structured log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() >= http.StatusInternalServerError {
			slog.Error("Request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status())
			return
		}
		slog.Debug("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status())
	}
}
