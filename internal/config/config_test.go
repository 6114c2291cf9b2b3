package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "")
	t.Setenv("SESSION_COOKIE_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 60000, cfg.RateLimit.WindowMs)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window())
	assert.Equal(t, time.Hour, cfg.RateLimit.SweepAfter())
	assert.Equal(t, time.Hour, cfg.RateLimit.SweepInterval())

	assert.Equal(t, "session", cfg.Auth.SessionCookie)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "2000")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 2*time.Second, cfg.RateLimit.Window())
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
}
