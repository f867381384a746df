package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery returns a gin middleware that recovers from panics, logs the panic
// value and stack through slog, and answers with the standard JSON error
// envelope:
//
//	{"code": 500, "message": "internal server error", "data": null}
//
// It replaces gin.Recovery() so that panics end up in structured logs rather
// than on stderr.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()

				logger.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", err),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(stack)),
				)

				c.Abort()
				c.JSON(http.StatusInternalServerError, gin.H{
					"code":    http.StatusInternalServerError,
					"message": "internal server error",
					"data":    nil,
				})
			}
		}()
		c.Next()
	}
}
