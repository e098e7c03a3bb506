package controller

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"countervalidator/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Throttle keeps one token bucket per key. A key is allowed perMinute requests
// per minute with bursts of the same size.
type Throttle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewThrottle creates a Throttle. A non-positive perMinute disables throttling.
func NewThrottle(perMinute int) *Throttle {
	return &Throttle{
		limiters: map[string]*rate.Limiter{},
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    perMinute,
	}
}

func (t *Throttle) limiter(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.limiters[key]
	if !ok {
		l = rate.NewLimiter(t.limit, t.burst)
		t.limiters[key] = l
	}

	return l
}

// Allow consumes one token of key. When none is left it returns false and how
// long to wait for the next one.
func (t *Throttle) Allow(key string, now time.Time) (bool, time.Duration) {
	if t.burst <= 0 {
		return true, 0
	}
	r := t.limiter(key).ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)

		return false, delay
	}

	return true, 0
}

// WithThrottle limits requests for which key returns ok. Other requests pass
// through untouched. Rejected requests get 429 with a Retry-After header.
func WithThrottle(t *Throttle, key func(r *http.Request) (string, bool)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k, ok := key(r)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			allowed, wait := t.Allow(k, time.Now())
			if !allowed {
				secs := int(math.Ceil(wait.Seconds()))
				logger.Info(r.Context(), "request throttled", zap.String("key", k), zap.Int("retryAfter", secs))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"Request was throttled. Expected available in ` +
					strconv.Itoa(secs) + ` seconds."}`))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
