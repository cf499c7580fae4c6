package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// FixedWindow counts requests per key in windows that start at each key's
// first request.
type FixedWindow struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	start time.Time
}

func NewFixedWindow(limit int, length time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:   limit,
		window:  length,
		windows: make(map[string]*window),
	}
}

// Allow records a request for key at now and reports whether it fits in the
// current window, along with the requests left in it.
func (f *FixedWindow) Allow(key string, now time.Time) (bool, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w, ok := f.windows[key]
	if !ok || now.Sub(w.start) >= f.window {
		f.evictExpired(now)
		w = &window{start: now}
		f.windows[key] = w
	}

	if w.count >= f.limit {
		return false, 0
	}

	w.count++
	return true, f.limit - w.count
}

func (f *FixedWindow) evictExpired(now time.Time) {
	for key, w := range f.windows {
		if now.Sub(w.start) >= f.window {
			delete(f.windows, key)
		}
	}
}

// RateLimiter rejects clients that exceed limit requests per window with
// 429 Too Many Requests.
func RateLimiter(limit int, length time.Duration) echo.MiddlewareFunc {
	limiter := NewFixedWindow(limit, length)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, remaining := limiter.Allow(c.RealIP(), time.Now())
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
