package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"countervalidator/pkg/controller"
	"countervalidator/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestThrottle_Allow(t *testing.T) {
	th := controller.NewThrottle(2)
	now := time.Now()

	ok, _ := th.Allow("u1", now)
	require.True(t, ok)
	ok, _ = th.Allow("u1", now)
	require.True(t, ok)
	ok, wait := th.Allow("u1", now)
	require.False(t, ok)
	require.InDelta(t, 30*time.Second, wait, float64(time.Second))

	ok, _ = th.Allow("u2", now)
	require.True(t, ok, "keys are limited independently")

	ok, _ = th.Allow("u1", now.Add(31*time.Second))
	require.True(t, ok)
}

func TestThrottle_Disabled(t *testing.T) {
	th := controller.NewThrottle(0)
	for range 10 {
		ok, _ := th.Allow("u", time.Now())
		require.True(t, ok)
	}
}

func TestWithThrottle(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	th := controller.NewThrottle(1)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := controller.WithThrottle(th, func(r *http.Request) (string, bool) {
		k := r.Header.Get("X-Key")

		return k, k != ""
	})(next)

	do := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if key != "" {
			req.Header.Set("X-Key", key)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec
	}

	require.Equal(t, http.StatusNoContent, do("a").Code)
	rec := do("a")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "60", rec.Header().Get("Retry-After"))
	require.JSONEq(t, `{"code":"RATE_LIMITED","message":"Request was throttled. Expected available in 60 seconds."}`,
		rec.Body.String())

	for range 3 {
		require.Equal(t, http.StatusNoContent, do("").Code)
	}
}
