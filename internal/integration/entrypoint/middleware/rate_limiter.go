// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/dto"
)

const (
	// DefaultMaxRequests is the default number of allowed requests per window.
	DefaultMaxRequests = 20
	// DefaultWindow is the default time window for rate limiting.
	DefaultWindow = 1 * time.Minute

	// cleanupThreshold triggers a sweep of expired entries.
	cleanupThreshold = 10000
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	requests  int
	resetTime time.Time
}

// RateLimiter provides a fixed window, per client IP rate limit.
type RateLimiter struct {
	mu          sync.Mutex
	entries     map[string]*rateLimitEntry
	maxRequests int
	window      time.Duration
	enabled     bool
	now         func() time.Time
}

// NewRateLimiter creates a new rate limiter. Non-positive values take the defaults.
// A disabled limiter lets every request through.
func NewRateLimiter(maxRequests int, window time.Duration, enabled bool) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RateLimiter{
		entries:     make(map[string]*rateLimitEntry),
		maxRequests: maxRequests,
		window:      window,
		enabled:     enabled,
		now:         time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, remaining, resetTime := rl.allow(clientIP)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(math.Ceil(resetTime.Sub(rl.now()).Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(retryAfter, 1)))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow records a request for key and reports whether it fits the window.
func (rl *RateLimiter) allow(key string) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.entries) >= cleanupThreshold {
		rl.sweep(now)
	}

	entry, exists := rl.entries[key]
	if !exists || !now.Before(entry.resetTime) {
		entry = &rateLimitEntry{requests: 1, resetTime: now.Add(rl.window)}
		rl.entries[key] = entry
		return true, rl.maxRequests - 1, entry.resetTime
	}

	if entry.requests < rl.maxRequests {
		entry.requests++
		return true, rl.maxRequests - entry.requests, entry.resetTime
	}

	return false, 0, entry.resetTime
}

// Reset clears the rate limiter state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*rateLimitEntry)
}

func (rl *RateLimiter) sweep(now time.Time) {
	for key, entry := range rl.entries {
		if !now.Before(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}
