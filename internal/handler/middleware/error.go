package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"travel-backoffice/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler renders the last public error for handlers that aborted
// without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		writeError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

// CustomRecovery turns a panic into a logged 500 with the JSON error envelope.
func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "Recovered from panic",
			"error", fmt.Sprint(recovered),
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
			"stack", string(debug.Stack()))
		writeError(c, http.StatusInternalServerError, internalErrorMessage)
		c.Abort()
	})
}

// NoRoute answers unknown paths with the JSON error envelope instead of gin's text body.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "Route not found")
	}
}

func writeError(c *gin.Context, status int, msg string) {
	resp := httperr.Response{Status: status}
	resp.Error.Message = msg
	c.JSON(status, resp)
}
