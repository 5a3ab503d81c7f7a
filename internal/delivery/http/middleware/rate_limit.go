package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/pkg/apperror"
	"go-jobseeker-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
	// Redis backend; nil selects the in-memory limiter
	Redis *goredis.Client
	Logger *slog.Logger
}

// Atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// DefaultRateLimitConfig returns per-IP limiting for the whole API
func DefaultRateLimitConfig(limit int, window time.Duration, client *goredis.Client) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:ip:",
		FailClosed: false, // Fail open by default for availability
		Redis:      client,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// rateDecision is the outcome of one limiter check
type rateDecision struct {
	allowed    bool
	remaining  int
	resetAt    time.Time
	retryAfter time.Duration
}

// RateLimitMiddleware creates a rate limiting middleware with the given config
// Uses Redis when available, falls back to in-memory when not
// Rejections are pushed with c.Error and rendered by ErrorHandler
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	memory := newMemoryLimiter(config.Limit, config.Window)

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()
		backend := "memory"

		var decision rateDecision
		if config.Redis != nil {
			backend = "redis"
			var err error
			decision, err = checkRateLimitRedis(c.Request.Context(), config.Redis, fullKey, config, now)
			if err != nil {
				config.Logger.Warn("rate limiter redis error", "error", err, "request_id", response.RequestID(c))
				if config.FailClosed {
					c.Error(apperror.Unavailable("Service temporarily unavailable. Please try again.", err))
					c.Abort()
					return
				}
				backend = "memory"
				decision = memory.allow(fullKey, now)
			}
		} else {
			decision = memory.allow(fullKey, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.remaining))
		c.Header("X-RateLimit-Reset", decision.resetAt.UTC().Format(time.RFC3339))

		if !decision.allowed {
			retryAfter := int(decision.retryAfter.Round(time.Second).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			metrics.RateLimited.WithLabelValues(backend).Inc()

			c.Error(apperror.TooManyRequests("Rate limit exceeded. Please try again later."))
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig, now time.Time) (rateDecision, error) {
	ttlSeconds := int(config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := rateLimitScript.Run(ctx, client, []string{key}, ttlSeconds).Int64Slice()
	if err != nil {
		return rateDecision{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	if len(result) < 2 {
		return rateDecision{}, fmt.Errorf("unexpected redis result format")
	}

	count, ttl := int(result[0]), time.Duration(result[1])*time.Second
	if ttl < 0 {
		ttl = config.Window
	}

	remaining := config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return rateDecision{
		allowed:    count <= config.Limit,
		remaining:  remaining,
		resetAt:    now.Add(ttl),
		retryAfter: ttl,
	}, nil
}

// memoryLimiter keeps one token bucket per key. Buckets idle for longer than
// a window are full again and get swept.
type memoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	every     rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newMemoryLimiter(limit int, window time.Duration) *memoryLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryLimiter{
		buckets: make(map[string]*bucket),
		every:   rate.Limit(float64(limit) / window.Seconds()),
		burst:   limit,
		window:  window,
	}
}

func (m *memoryLimiter) allow(key string, now time.Time) rateDecision {
	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) > m.window {
		m.sweep(now)
	}

	b, ok := m.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(m.every, m.burst)}
		m.buckets[key] = b
	}
	b.lastSeen = now

	res := b.limiter.ReserveN(now, 1)
	if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
		res.CancelAt(now)
		return rateDecision{allowed: false, resetAt: now.Add(delay), retryAfter: delay}
	}

	tokens := b.limiter.TokensAt(now)
	missing := float64(m.burst) - tokens
	refill := time.Duration(missing / float64(m.every) * float64(time.Second))
	return rateDecision{
		allowed:   true,
		remaining: int(tokens),
		resetAt:   now.Add(refill),
	}
}

func (m *memoryLimiter) sweep(now time.Time) {
	for key, b := range m.buckets {
		if now.Sub(b.lastSeen) > m.window {
			delete(m.buckets, key)
		}
	}
	m.lastSweep = now
}
