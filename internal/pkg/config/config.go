package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	minSecretLen = 32
	devSecret    = "dev-only-secret-key-change-in-production"
)

type AuthConfig struct {
	JWTSecretKey string
	TokenTTL     time.Duration
}

type ObservabilityConfig struct {
	MetricsAddr  string
	PprofAddr    string
	OTLPEndpoint string
}

type Config struct {
	Env           string
	ServerPort    string
	LogLevel      zapcore.Level
	PageCacheTTL  time.Duration
	Auth          AuthConfig
	Observability ObservabilityConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:        getEnvOrDefault("APP_ENV", EnvDevelopment),
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
		Auth: AuthConfig{
			JWTSecretKey: os.Getenv("JWT_SECRET_KEY"),
		},
		Observability: ObservabilityConfig{
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    lookupEnvOrDefault("PPROF_ADDR", ":6060"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}

	level, err := zapcore.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid LOG_LEVEL")
	}
	cfg.LogLevel = level

	if cfg.Auth.TokenTTL, err = getDurationOrDefault("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.PageCacheTTL, err = getDurationOrDefault("PAGE_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecretKey == "" && !cfg.IsProduction() {
		cfg.Auth.JWTSecretKey = devSecret
	}
	if len(cfg.Auth.JWTSecretKey) < minSecretLen {
		return nil, errors.Errorf("JWT_SECRET_KEY must be at least %d characters", minSecretLen)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnvOrDefault keeps an explicitly empty value, which disables the feature.
func lookupEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	if d <= 0 {
		return 0, errors.Errorf("%s must be positive", key)
	}
	return d, nil
}
