package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests independently per key. Keys are
// typically chat session IDs or client addresses.
type RateLimiter struct {
	interval time.Duration
	burst    int

	mu     sync.Mutex
	limits map[string]*rate.Limiter
}

// NewRateLimiter creates a limiter allowing one request per interval
// with the given burst per key.
func NewRateLimiter(interval time.Duration, burst int) *RateLimiter {
	if interval <= 0 {
		interval = time.Second
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		interval: interval,
		burst:    burst,
		limits:   make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limits[key]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Every(rl.interval), rl.burst)
	rl.limits[key] = limiter
	return limiter
}

// Allow reports whether a request under key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Wait blocks until a request under key may proceed or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context, key string) error {
	return rl.getLimiter(key).Wait(ctx)
}
