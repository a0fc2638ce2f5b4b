package middleware

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Rosvend/REST-Api-NoSQL/internal/metrics"
	"github.com/Rosvend/REST-Api-NoSQL/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/juju/ratelimit"
)

// RateLimiter keeps one token bucket per client ip
type RateLimiter struct {
	rate     float64
	capacity int64

	clients map[string]*ratelimit.Bucket
	mu      sync.RWMutex
}

func NewRateLimiter(rate float64, capacity int64) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		capacity: capacity,
		clients:  make(map[string]*ratelimit.Bucket),
	}
}

func (rl *RateLimiter) getBucket(clientIP string) *ratelimit.Bucket {
	rl.mu.RLock()
	bucket, exists := rl.clients[clientIP]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if bucket, exists = rl.clients[clientIP]; !exists {
			bucket = ratelimit.NewBucketWithRate(rl.rate, rl.capacity)
			rl.clients[clientIP] = bucket
			metrics.RateLimitBuckets.Set(float64(len(rl.clients)))
		}
		rl.mu.Unlock()
	}

	return bucket
}

// Cleanup forgets clients whose bucket has refilled; returns how many were removed
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, bucket := range rl.clients {
		if bucket.Available() == bucket.Capacity() {
			delete(rl.clients, ip)
			removed++
		}
	}
	metrics.RateLimitBuckets.Set(float64(len(rl.clients)))
	return removed
}

// Clients returns the number of tracked clients
func (rl *RateLimiter) Clients() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.clients)
}

// tokenCost is zero for the descriptor, health, metrics and docs endpoints
func tokenCost(path string) int64 {
	switch {
	case path == "/", path == "/health", path == "/metrics":
		return 0
	case strings.HasPrefix(path, "/swagger"):
		return 0
	}
	return 1
}

// Handler rejects requests with 429 once a client's bucket is empty
func (rl *RateLimiter) Handler() fiber.Handler {
	limit := strconv.FormatInt(rl.capacity, 10)
	rate := strconv.FormatFloat(rl.rate, 'f', -1, 64)

	return func(c *fiber.Ctx) error {
		cost := tokenCost(c.Path())
		if cost == 0 {
			return c.Next()
		}

		bucket := rl.getBucket(c.IP())

		c.Set("X-RateLimit-Limit", limit)
		c.Set("X-RateLimit-Rate", rate)

		if bucket.TakeAvailable(cost) < cost {
			metrics.RateLimitedRequests.Inc()
			c.Set("X-RateLimit-Remaining", "0")
			c.Set(fiber.HeaderRetryAfter, "1")
			return utils.ErrorResponse(c, "Rate limit exceeded. Please try again later.", fiber.StatusTooManyRequests, "rate_limit")
		}

		c.Set("X-RateLimit-Remaining", strconv.FormatInt(bucket.Available(), 10))
		return c.Next()
	}
}
