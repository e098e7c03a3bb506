package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"countervalidator/pkg/controller"

	"github.com/stretchr/testify/require"
)

func teapot(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestWithCORS_PreflightAnyOrigin(t *testing.T) {
	called := false
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/validations/validation/x/", nil)
	req.Header.Set("Origin", "https://validator.example.org")
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"*"})(teapot(&called)).ServeHTTP(rec, req)

	require.False(t, called)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestWithCORS_AllowedOrigins(t *testing.T) {
	mw := controller.WithCORS([]string{"https://validator.example.org"})

	called := false
	req := httptest.NewRequest(http.MethodGet, "/api/v1/core/user/", nil)
	req.Header.Set("Origin", "https://VALIDATOR.example.org")
	rec := httptest.NewRecorder()
	mw(teapot(&called)).ServeHTTP(rec, req)

	require.True(t, called)
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "https://VALIDATOR.example.org", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", rec.Header().Get("Vary"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/core/user/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	mw(teapot(&called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
