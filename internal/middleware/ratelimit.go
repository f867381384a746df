package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds per-client rate limiting settings.
type RateLimiterConfig struct {
	// RPS is the sustained request rate per client (requests per second).
	RPS rate.Limit

	// Burst is the maximum burst size per client.
	Burst int

	// CleanupInterval is how often idle client entries are evicted.
	CleanupInterval time.Duration
}

// DefaultRateLimiterConfig returns settings suitable for login endpoints:
// one request per second with a small burst.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RPS:             1,
		Burst:           5,
		CleanupInterval: 5 * time.Minute,
	}
}

// clientLimiter pairs a limiter with its last access time for cleanup.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter tracks a token-bucket limiter per client IP. It is intended
// for the unauthenticated login and two-factor endpoints, where abuse is
// throttled before any credentials are checked.
type RateLimiter struct {
	config RateLimiterConfig

	mu       sync.RWMutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// NewRateLimiter creates a RateLimiter and starts a background goroutine
// that evicts idle client entries.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware returns a gin middleware enforcing the per-client limit.
// Clients are keyed by gin's ClientIP, which honors trusted proxy headers.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getOrCreate(c.ClientIP())

		if !limiter.Allow() {
			retryAfter := int(math.Ceil(1.0 / float64(rl.config.RPS)))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

// ClientCount returns the number of tracked clients, for tests and metrics.
func (rl *RateLimiter) ClientCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) getOrCreate(key string) *rate.Limiter {
	rl.mu.RLock()
	cl, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		cl.lastAccess = time.Now()
		rl.mu.Unlock()
		return cl.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check under the write lock.
	if cl, exists := rl.limiters[key]; exists {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.config.RPS, rl.config.Burst)
	rl.limiters[key] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops entries whose last access is older than twice the
// cleanup interval.
func (rl *RateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2
	now := time.Now()

	rl.mu.Lock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
	rl.mu.Unlock()
}
