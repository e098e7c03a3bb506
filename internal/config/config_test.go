package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"countervalidator/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
validation:
  lifetimeDays: 7
  fileSizeLimits:
    json: 100
    default: 10
validationModules:
  urls:
    - http://vm1/
    - http://vm2/
mail:
  admins: [admin@example.com]
`), 0o600))

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("THROTTLE_API_KEY_REQUESTS_PER_MINUTE", "5")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 5, cfg.Throttle.APIKeyRequestsPerMinute)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	require.Equal(t, 7, cfg.Validation.LifetimeDays)
	require.Equal(t, 365, cfg.Validation.PublicLifetimeDays)
	require.EqualValues(t, 100, cfg.Validation.FileSizeLimits["json"])
	require.Equal(t, []string{"http://vm1/", "http://vm2/"}, cfg.ValidationModules.URLs)
	require.Equal(t, 10*time.Minute, cfg.ValidationModules.LockTimeout)
	require.Equal(t, []string{"admin@example.com"}, cfg.Mail.Admins)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
