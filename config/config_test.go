package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:3333")
	t.Setenv("SESSION_BACKEND", "sqlite")

	cfg := LoadEnv()

	assert.Equal(t, "http://localhost:3333", cfg.API.BaseURL)
	assert.Equal(t, SessionBackendSQLite, cfg.Session.Backend)
	assert.NotEmpty(t, cfg.Session.DBPath)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOGGER_DISABLE_CALLER", "false")
	t.Setenv("LOCALE", "en")

	cfg := LoadEnv()

	assert.Equal(t, "development", cfg.Server.AppEnv)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.False(t, cfg.Logger.DisableCaller)
	assert.Equal(t, "en", cfg.Locale.Language)
}

func TestLoadEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("REDIS_DB", "two")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "maybe")

	cfg := LoadEnv()

	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.Logger.DisableStacktrace)
}
