package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"STOREFRONT_ADDR", "BACKEND_BASE_URL", "BACKEND_TIMEOUT", "STORAGE_DRIVER",
	"REDIS_URL", "STORAGE_TTL", "STORE_CACHE_TTL", "CART_PRICING",
	"SESSION_RESET_ON_BOOT", "DISPLAY_TIMEZONE", "LOG_LEVEL", "ENV_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.BackendBaseURL)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, PricingSnapshot, cfg.CartPricing)
	assert.False(t, cfg.SessionResetOnBoot)
	assert.Equal(t, "Asia/Seoul", cfg.Location.String())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND_TIMEOUT", "0s")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("CART_PRICING", "live")
	t.Setenv("SESSION_RESET_ON_BOOT", "true")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Zero(t, cfg.BackendTimeout)
	assert.Equal(t, DriverRedis, cfg.StorageDriver)
	assert.Equal(t, PricingLive, cfg.CartPricing)
	assert.True(t, cfg.SessionResetOnBoot)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestFromEnv_Rejects(t *testing.T) {
	cases := map[string]string{
		"BACKEND_TIMEOUT":       "soon",
		"STORAGE_DRIVER":        "mongo",
		"CART_PRICING":          "dynamic",
		"SESSION_RESET_ON_BOOT": "maybe",
		"DISPLAY_TIMEZONE":      "Mars/Olympus",
		"STORE_CACHE_TTL":       "-1m",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := FromEnv()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("STOREFRONT_ADDR")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STOREFRONT_ADDR=:4000\n"), 0o600))
	t.Setenv("ENV_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Addr)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	_, err := Load()
	assert.NoError(t, err)
}
