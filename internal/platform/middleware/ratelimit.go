package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultRateLimitConfig returns default rate limiting settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		BurstSize:         200,
	}
}

// client is a lazily refilled token bucket for one caller.
type client struct {
	tokens float64
	seen   time.Time
}

// limiterSet tracks one bucket per caller under a single lock. Buckets idle
// long enough to have refilled completely are pruned on the way through.
type limiterSet struct {
	mu      sync.Mutex
	clients map[string]*client
	rate    float64
	burst   float64
	sweep   time.Time
}

func newLimiterSet(cfg RateLimitConfig) *limiterSet {
	return &limiterSet{
		clients: make(map[string]*client),
		rate:    cfg.RequestsPerSecond,
		burst:   float64(cfg.BurstSize),
		sweep:   time.Now(),
	}
}

// take consumes one token for key. When the bucket is empty it reports the
// whole seconds to wait until a token is due.
func (s *limiterSet) take(key string) (ok bool, retryAfter int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.maybeSweep(now)

	cl, found := s.clients[key]
	if !found {
		cl = &client{tokens: s.burst, seen: now}
		s.clients[key] = cl
	}

	cl.tokens = math.Min(s.burst, cl.tokens+now.Sub(cl.seen).Seconds()*s.rate)
	cl.seen = now

	if cl.tokens < 1 {
		if s.rate <= 0 {
			return false, 1
		}
		wait := int(math.Ceil((1 - cl.tokens) / s.rate))
		if wait < 1 {
			wait = 1
		}
		return false, wait
	}
	cl.tokens--
	return true, 0
}

// maybeSweep drops buckets that have been idle long enough to be full again.
// Runs at most once per minute.
func (s *limiterSet) maybeSweep(now time.Time) {
	if now.Sub(s.sweep) < time.Minute || s.rate <= 0 {
		return
	}
	s.sweep = now
	idle := time.Duration(s.burst/s.rate*float64(time.Second)) + time.Minute
	for key, cl := range s.clients {
		if now.Sub(cl.seen) > idle {
			delete(s.clients, key)
		}
	}
}

// RateLimit returns a rate limiting middleware keyed on client IP.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	set := newLimiterSet(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := set.take(c.RealIP())
			c.Response().Header().Set("X-RateLimit-Limit", strconv.FormatFloat(cfg.RequestsPerSecond, 'f', 0, 64))
			if !ok {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
