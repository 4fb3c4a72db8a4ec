package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "SERVER_PORT", "LOG_LEVEL", "JWT_SECRET_KEY", "TOKEN_TTL",
		"PAGE_CACHE_TTL", "METRICS_ADDR", "OTEL_EXPORTER_OTLP_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "8091", cfg.ServerPort)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.PageCacheTTL)
	assert.Equal(t, ":9092", cfg.Observability.MetricsAddr)
	assert.Empty(t, cfg.Observability.OTLPEndpoint)
	assert.Equal(t, devSecret, cfg.Auth.JWTSecretKey)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("PAGE_CACHE_TTL", "30s")
	t.Setenv("PPROF_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.PageCacheTTL)
	assert.Empty(t, cfg.Observability.PprofAddr)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", EnvProduction)

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET_KEY", "short")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET_KEY", "a-production-secret-that-is-long-enough")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)

	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("TOKEN_TTL", "soon")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("TOKEN_TTL", "-1m")
	_, err = Load()
	assert.Error(t, err)
}
