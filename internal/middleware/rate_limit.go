package middleware

import (
	"net/http"
	"sync"
	"time"

	"inventory-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const visitorTTL = 10 * time.Minute

type RateLimiter struct {
	requestsPerMinute int
	visitors          map[string]*visitor
	lastCleanup       time.Time
	mutex             sync.Mutex
	now               func() time.Time
}

type visitor struct {
	limiter  *tokenBucket
	lastSeen time.Time
}

// tokenBucket holds up to capacity tokens and refills capacity tokens per minute.
type tokenBucket struct {
	tokens     float64
	capacity   float64
	lastRefill time.Time
}

func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	return &RateLimiter{
		requestsPerMinute: requestsPerMinute,
		visitors:          make(map[string]*visitor),
		now:               time.Now,
	}
}

// RateLimitMiddleware limits each client IP to requestsPerMinute requests.
// A limit of 0 disables limiting.
func RateLimitMiddleware(requestsPerMinute int) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return NewRateLimiter(requestsPerMinute).Handler()
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			utils.Error(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	if rl.lastCleanup.IsZero() {
		rl.lastCleanup = now
	} else if now.Sub(rl.lastCleanup) > visitorTTL {
		rl.cleanup(now)
	}

	v, exists := rl.visitors[ip]
	if !exists {
		capacity := float64(rl.requestsPerMinute)
		v = &visitor{
			limiter: &tokenBucket{
				tokens:     capacity,
				capacity:   capacity,
				lastRefill: now,
			},
		}
		rl.visitors[ip] = v
	}

	v.lastSeen = now
	return v.limiter.allow(now)
}

func (tb *tokenBucket) allow(now time.Time) bool {
	elapsed := now.Sub(tb.lastRefill)
	if elapsed > 0 {
		tb.tokens += elapsed.Minutes() * tb.capacity
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.lastRefill = now
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// cleanup forgets visitors idle for longer than visitorTTL. Callers hold the mutex.
func (rl *RateLimiter) cleanup(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, ip)
		}
	}
	rl.lastCleanup = now
}
