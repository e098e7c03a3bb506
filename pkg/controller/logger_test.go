package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"countervalidator/pkg/controller"
	"countervalidator/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	cases := map[string]struct {
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		"forwarded chain": {map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "", "1.2.3.4"},
		"real ip":         {map[string]string{"X-Real-IP": "9.8.7.6"}, "", "9.8.7.6"},
		"remote addr":     {nil, "10.0.0.1:12345", "10.0.0.1"},
		"ipv6 remote":     {nil, "[2001:db8::1]:443", "2001:db8::1"},
		"invalid remote":  {nil, "not-an-addr", "not-an-addr"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range c.headers {
				req.Header.Set(k, v)
			}
			if c.remoteAddr != "" {
				req.RemoteAddr = c.remoteAddr
			}
			require.Equal(t, c.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(t.Context(), zap.New(core))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-Request-Id", controller.RequestID(r.Context()))
		logger.Info(r.Context(), "inside")
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)

			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/ok", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get("X-Seen-Request-Id"))
	require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "abc-123", entries[0].ContextMap()["requestID"])
	access := entries[1]
	require.Equal(t, "access log", access.Message)
	require.Equal(t, zap.InfoLevel, access.Level)
	require.Equal(t, int64(200), access.ContextMap()["status_code"])
	require.Equal(t, int64(2), access.ContextMap()["bytes"])

	// generated id, client error logged as warning
	req = httptest.NewRequestWithContext(ctx, http.MethodGet, "/missing", nil)
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotEmpty(t, rec.Header().Get(controller.RequestIDHeader))
	last := logs.All()[logs.Len()-1]
	require.Equal(t, zap.WarnLevel, last.Level)
	require.Equal(t, int64(404), last.ContextMap()["status_code"])
}
