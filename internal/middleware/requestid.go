package middleware

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

const (
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
	requestIDLength     = 16 // 16 bytes = 32 hex chars
)

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

var requestIDFallbackCounter atomic.Uint64

// RequestIDConfig controls request-id reuse behavior.
type RequestIDConfig struct {
	TrustUpstream bool
}

// RequestID returns a gin middleware that tags every request with a unique
// ID. Upstream X-Request-ID values are ignored; a fresh ID is generated per
// request.
//
// The ID is stored in gin.Context under "request_id", echoed back in the
// X-Request-ID response header and attached to the request context through
// logger.WithContextAttrs so every log line carries it.
func RequestID() gin.HandlerFunc {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig is RequestID with explicit reuse behavior. When
// TrustUpstream is set, a well-formed incoming X-Request-ID is kept instead
// of generating a new one.
func RequestIDWithConfig(cfg RequestIDConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ""
		if cfg.TrustUpstream {
			upstreamID := c.GetHeader(requestIDHeader)
			if isValidRequestID(upstreamID) {
				id = upstreamID
			}
		}

		if id == "" {
			id = generateRequestID()
		}

		c.Set(requestIDContextKey, id)
		c.Header(requestIDHeader, id)

		ctx := logger.WithContextAttrs(c.Request.Context(), slog.String("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func isValidRequestID(id string) bool {
	return requestIDPattern.MatchString(id)
}

// GetRequestID reads the request ID back out of the gin.Context, or returns
// an empty string when none was set.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(requestIDContextKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// generateRequestID produces a random hex string. If the system randomness
// source fails it degrades to a timestamp plus counter, which stays unique
// within the process.
func generateRequestID() string {
	b := make([]byte, requestIDLength)
	_, err := rand.Read(b)
	if err != nil {
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], requestIDFallbackCounter.Add(1))
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}
