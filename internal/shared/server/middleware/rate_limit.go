package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"resume-builder/internal/shared/metrics"
)

// RateLimitRule configures a token bucket: Rate tokens per second up to Burst.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	mu       sync.Mutex
	rule     RateLimitRule
	limiters map[string]*rate.Limiter
	now      func() time.Time
}

// NewRateLimiter builds a limiter. A nil now uses time.Now.
func NewRateLimiter(rule RateLimitRule, now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		rule:     rule,
		limiters: make(map[string]*rate.Limiter),
		now:      now,
	}
}

// Allow reports whether key may proceed and, if not, how long to wait.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	if l == nil || l.rule.Rate <= 0 || l.rule.Burst <= 0 {
		return true, 0
	}
	now := l.now()

	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.rule.Rate), l.rule.Burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()

	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Second
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	res.CancelAt(now)
	return false, delay
}

// RateLimit rejects clients that exceed the limiter with 429.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.ClientIP())
		allowed, retryAfter := limiter.Allow(key)
		if allowed {
			c.Next()
			return
		}
		metrics.RateLimitRejected.Inc()

		retryAfterMs := int(retryAfter / time.Millisecond)
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		retryAfterSeconds := int(math.Ceil(float64(retryAfterMs) / 1000.0))
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":        "rate_limited",
			"retryAfterMs": retryAfterMs,
		})
	}
}
