package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"lai_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Rate is the sustained number of requests per second
	Rate rate.Limit
	// Burst is how many requests may arrive at once
	Burst int
	// IdleTTL is how long an unused limiter is kept
	IdleTTL time.Duration
	// KeyFunc returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client key
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*clientLimiter
	mu     sync.Mutex
	stopCh chan struct{}
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.IdleTTL == 0 {
		config.IdleTTL = 10 * time.Minute
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*clientLimiter),
		stopCh: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.store[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.store[key] = entry
	}
	entry.lastAccess = time.Now()
	return entry.limiter
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rl.config.KeyFunc(c)
			if rl.limiterFor(key).Allow() {
				return next(c)
			}

			c.Logger().Warnf("rate limit exceeded for %s on %s", key, c.Path())

			retryAfter := 1
			if rl.config.Rate > 0 {
				retryAfter = int(math.Ceil(1 / float64(rl.config.Rate)))
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

			message := i18n.T(c.Request().Context(), "errors.rate_limited")
			if IsHTMX(c) {
				// Reuse the notification channel so the visitor sees why nothing happened
				if err := SetNotifyTrigger(c, message); err != nil {
					return err
				}
				return c.NoContent(http.StatusTooManyRequests)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, message)
		}
	}
}

// Len returns the number of tracked clients
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.store)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops limiters that have been idle longer than IdleTTL
func (rl *RateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, entry := range rl.store {
		if now.Sub(entry.lastAccess) > rl.config.IdleTTL {
			delete(rl.store, key)
		}
	}
}

// InteractionRateLimiter allows 2 interactions per second per IP with a burst of 30
var InteractionRateLimiter = NewRateLimiter(RateLimitConfig{
	Rate:  rate.Limit(2),
	Burst: 30,
})

// LoginRateLimiter allows 10 mock logins per minute per IP
var LoginRateLimiter = NewRateLimiter(RateLimitConfig{
	Rate:  rate.Limit(10.0 / 60.0),
	Burst: 10,
})
