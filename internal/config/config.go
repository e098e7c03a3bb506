package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from a yaml file; every value can be overridden by the
// environment variable named in its env tag.
type Config struct {
	// Environment is "development" or "production"
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		RequestTimeout    time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		MaxHeaderBytes    int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		MetricsPath       string        `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// MaxUploadBytes caps the size of a multipart upload body
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"104857600" yaml:"maxUploadBytes"`
		// CORSAllowedOrigins lists browser origins allowed to call the API; "*" allows any
		CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-default:"*" yaml:"corsAllowedOrigins"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME" env-default:"validator" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD" env-default:"validator" yaml:"password"`
		Host               string        `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME" env-default:"validator" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the connection used for validation module locks
	Redis struct {
		Addr     string `env:"REDIS_ADDR"     env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" env-default:""               yaml:"password"`
		DB       int    `env:"REDIS_DB"       env-default:"0"              yaml:"db"`
	} `yaml:"redis"`

	// JWT holds the RSA keys used for bearer tokens
	JWT struct {
		// PublicKey verifies bearer tokens (PEM)
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens issued on login and by the token command (PEM)
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is the lifetime of issued tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Validation configures how validations are stored
	Validation struct {
		// LifetimeDays is how long a validation is kept; 0 keeps it forever
		LifetimeDays int `env:"VALIDATION_LIFETIME_DAYS" env-default:"30" yaml:"lifetimeDays"`
		// PublicLifetimeDays is how long a published validation is kept
		PublicLifetimeDays int `env:"VALIDATION_PUBLIC_LIFETIME_DAYS" env-default:"365" yaml:"publicLifetimeDays"`
		// FileSizeLimits maps a file type (json, xlsx, csv, default) to its max size in bytes
		FileSizeLimits map[string]int64 `env:"VALIDATION_FILE_SIZE_LIMITS" env-default:"json:104857600,xlsx:10485760,csv:52428800,default:52428800" yaml:"fileSizeLimits"` //nolint: lll
		// HashingSalt keys user email and credential checksums
		HashingSalt string `env:"VALIDATION_HASHING_SALT" env-default:"" yaml:"hashingSalt"`
		// HashingDigestSize is the checksum size in bytes
		HashingDigestSize int `env:"VALIDATION_HASHING_DIGEST_SIZE" env-default:"16" yaml:"hashingDigestSize"`
	} `yaml:"validation"`

	// ValidationModules lists the external modules and how they are called
	ValidationModules struct {
		URLs           []string      `env:"VALIDATION_MODULES_URLS"            env-default:"http://localhost:8180/" yaml:"urls"`
		LockTimeout    time.Duration `env:"VALIDATION_MODULES_LOCK_TIMEOUT"    env-default:"10m"                    yaml:"lockTimeout"`
		RequestTimeout time.Duration `env:"VALIDATION_MODULES_REQUEST_TIMEOUT" env-default:"10m"                    yaml:"requestTimeout"`
		PollInterval   time.Duration `env:"VALIDATION_MODULES_POLL_INTERVAL"   env-default:"1s"                     yaml:"pollInterval"`
		// BreakerFailures opens a module breaker after that many consecutive failures; 0 disables it
		BreakerFailures uint32        `env:"VALIDATION_MODULES_BREAKER_FAILURES" env-default:"5"  yaml:"breakerFailures"`
		BreakerTimeout  time.Duration `env:"VALIDATION_MODULES_BREAKER_TIMEOUT"  env-default:"1m" yaml:"breakerTimeout"`
	} `yaml:"validationModules"`

	// Worker configures background jobs
	Worker struct {
		MaxAttempts          int           `env:"WORKER_MAX_ATTEMPTS"           env-default:"3"   yaml:"maxAttempts"`
		CleanupInterval      time.Duration `env:"WORKER_CLEANUP_INTERVAL"       env-default:"1h"  yaml:"cleanupInterval"`
		RegistrySyncInterval time.Duration `env:"WORKER_REGISTRY_SYNC_INTERVAL" env-default:"24h" yaml:"registrySyncInterval"`
		// DailyReportHour is the UTC hour the daily report is sent at
		DailyReportHour int `env:"WORKER_DAILY_REPORT_HOUR" env-default:"6" yaml:"dailyReportHour"`
	} `yaml:"worker"`

	// Registry is the COUNTER registry the platform list is synced from
	Registry struct {
		URL     string        `env:"REGISTRY_URL"     env-default:"https://registry.countermetrics.org" yaml:"url"`
		Timeout time.Duration `env:"REGISTRY_TIMEOUT" env-default:"1m"                                  yaml:"timeout"`
	} `yaml:"registry"`

	// Throttle limits requests authenticated with API keys
	Throttle struct {
		APIKeyRequestsPerMinute int `env:"THROTTLE_API_KEY_REQUESTS_PER_MINUTE" env-default:"60" yaml:"apiKeyRequestsPerMinute"`
	} `yaml:"throttle"`

	// FileStore selects where validated files are kept
	FileStore struct {
		// Backend is "local" or "gcs"
		Backend            string `env:"FILE_STORE_BACKEND"              env-default:"local"                       yaml:"backend"`
		LocalRoot          string `env:"FILE_STORE_LOCAL_ROOT"           env-default:"media"                       yaml:"localRoot"`
		GCSBucket          string `env:"FILE_STORE_GCS_BUCKET"           env-default:""                            yaml:"gcsBucket"`
		GCSCredentialsJSON string `env:"FILE_STORE_GCS_CREDENTIALS_JSON" env-default:""                            yaml:"gcsCredentialsJSON"` //nolint: lll
		PublicURL          string `env:"FILE_STORE_PUBLIC_URL"           env-default:"http://localhost:8080/media" yaml:"publicURL"`
	} `yaml:"fileStore"`

	// Mail configures outgoing notification mails
	Mail struct {
		Host      string   `env:"MAIL_HOST"      env-default:""                      yaml:"host"`
		Port      int      `env:"MAIL_PORT"      env-default:"25"                    yaml:"port"`
		User      string   `env:"MAIL_USER"      env-default:""                      yaml:"user"`
		Password  string   `env:"MAIL_PASSWORD"  env-default:""                      yaml:"password"`
		StartTLS  bool     `env:"MAIL_START_TLS" env-default:"false"                 yaml:"startTLS"`
		From      string   `env:"MAIL_FROM"      env-default:"validator@localhost"   yaml:"from"`
		Admins    []string `env:"MAIL_ADMINS"    yaml:"admins"`
		Operators []string `env:"MAIL_OPERATORS" yaml:"operators"`
	} `yaml:"mail"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads configPath and applies environment overrides and defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
