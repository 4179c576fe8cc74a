package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"judge/metrics"
)

// RateLimiter is a per-client token bucket keyed by IP address
type RateLimiter struct {
	clients  map[string]*clientBucket
	mu       sync.Mutex
	rate     int           // tokens added per interval
	burst    int           // bucket capacity
	interval time.Duration // refill interval
}

type clientBucket struct {
	tokens      int
	lastUpdated time.Time
}

func NewRateLimiter(rate int, burst int) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*clientBucket),
		rate:     rate,
		burst:    burst,
		interval: time.Minute,
	}
}

// Allow consumes a token for the given client, refilling the bucket first
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, exists := rl.clients[ip]
	if !exists {
		bucket = &clientBucket{tokens: rl.burst, lastUpdated: time.Now()}
		rl.clients[ip] = bucket
	}

	now := time.Now()
	refill := int(now.Sub(bucket.lastUpdated)/rl.interval) * rl.rate
	if refill > 0 {
		bucket.tokens += refill
		if bucket.tokens > rl.burst {
			bucket.tokens = rl.burst
		}
		bucket.lastUpdated = now
	}

	if bucket.tokens > 0 {
		bucket.tokens--
		return true
	}
	return false
}

// RateLimiterMiddleware rejects requests from clients that exhausted their bucket
func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			metrics.RateLimiterRejections.WithLabelValues(ip).Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
