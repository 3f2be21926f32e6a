package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter enforces per-IP request limits. The impersonation endpoint
// mints credentials, so it gets a much stricter budget than the rest of
// the surface.
type RateLimiter struct {
	visitors         map[string]*Visitor
	mutex            sync.RWMutex
	impersonateEvery time.Duration
	impersonateBurst int
	stop             chan struct{}
	stopOnce         sync.Once
}

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(impersonateEvery time.Duration, impersonateBurst int) *RateLimiter {
	if impersonateEvery <= 0 {
		impersonateEvery = 10 * time.Second
	}
	if impersonateBurst <= 0 {
		impersonateBurst = 5
	}

	rl := &RateLimiter{
		visitors:         make(map[string]*Visitor),
		impersonateEvery: impersonateEvery,
		impersonateBurst: impersonateBurst,
		stop:             make(chan struct{}),
	}

	go rl.cleanupVisitors()
	return rl
}

// Stop terminates the visitor cleanup goroutine. Safe to call more than
// once; the limiter itself keeps working after Stop.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stop)
	})
}

func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			var limit rate.Limit
			var burst int

			path := c.Request().URL.Path
			switch {
			case strings.Contains(path, "/impersonate"):
				limit = rate.Every(rl.impersonateEvery)
				burst = rl.impersonateBurst
			case strings.Contains(path, "/health"):
				limit = rate.Every(time.Second)
				burst = 30
			default:
				limit = rate.Every(time.Second)
				burst = 20
			}

			// Limiter state is keyed per IP and per path class so the
			// health probe budget cannot be drained by impersonation
			// attempts.
			key := ip + "|" + pathClass(path)
			if !rl.allow(key, limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "rate limit exceeded",
					"code":        "RATE_LIMIT_EXCEEDED",
					"retry_after": rl.getRetryAfter(key),
				})
			}

			return next(c)
		}
	}
}

func pathClass(path string) string {
	switch {
	case strings.Contains(path, "/impersonate"):
		return "impersonate"
	case strings.Contains(path, "/health"):
		return "health"
	default:
		return "default"
	}
}

func (rl *RateLimiter) allow(key string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[key]
	if !exists {
		visitor = &Visitor{
			limiter: rate.NewLimiter(limit, burst),
		}
		rl.visitors[key] = visitor
	}

	// The first request consumes a token like any other, so a budget of
	// burst N admits exactly N requests.
	visitor.lastSeen = time.Now()
	return visitor.limiter.Allow()
}

func (rl *RateLimiter) getRetryAfter(key string) int {
	rl.mutex.RLock()
	defer rl.mutex.RUnlock()

	visitor, exists := rl.visitors[key]
	if !exists {
		return 0
	}

	reservation := visitor.limiter.Reserve()
	if !reservation.OK() {
		return 60
	}

	delay := reservation.Delay()
	reservation.Cancel()

	return int(delay.Seconds())
}

func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mutex.Lock()
			for key, visitor := range rl.visitors {
				if time.Since(visitor.lastSeen) > 3*time.Minute {
					delete(rl.visitors, key)
				}
			}
			rl.mutex.Unlock()
		}
	}
}
