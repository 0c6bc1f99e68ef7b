// Package config reads the storefront's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Cheertaboi/storefront-service/pkg/db"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"

	PricingSnapshot = "snapshot"
	PricingLive     = "live"
)

type Config struct {
	Addr string

	BackendBaseURL string
	// BackendTimeout of zero disables the client-side timeout.
	BackendTimeout time.Duration

	StorageDriver string
	Postgres      db.PostgresConfig
	RedisURL      string
	// StorageTTL expires idle device namespaces in Redis.
	StorageTTL time.Duration

	CartPricing        string
	SessionResetOnBoot bool
	StoreCacheTTL      time.Duration
	Location           *time.Location
	LogLevel           string
}

// Load reads ENV_FILE (default .env) into the environment when it exists,
// then builds the config. Variables already set win over the file.
func Load() (Config, error) {
	file := getenv("ENV_FILE", ".env")
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", file, err)
	}
	return FromEnv()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:           getenv("STOREFRONT_ADDR", ":3000"),
		BackendBaseURL: getenv("BACKEND_BASE_URL", "http://localhost:8080"),
		StorageDriver:  getenv("STORAGE_DRIVER", DriverMemory),
		RedisURL:       getenv("REDIS_URL", "redis://localhost:6379/0"),
		CartPricing:    getenv("CART_PRICING", PricingSnapshot),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.BackendTimeout, err = duration("BACKEND_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.StorageTTL, err = duration("STORAGE_TTL", 30*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.StoreCacheTTL, err = duration("STORE_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("SESSION_RESET_ON_BOOT"); v != "" {
		if cfg.SessionResetOnBoot, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("SESSION_RESET_ON_BOOT: %w", err)
		}
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverRedis:
	case DriverPostgres:
		if cfg.Postgres, err = db.LoadPostgresConfig(); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER: unknown driver %q", cfg.StorageDriver)
	}

	switch cfg.CartPricing {
	case PricingSnapshot, PricingLive:
	default:
		return Config{}, fmt.Errorf("CART_PRICING: unknown mode %q", cfg.CartPricing)
	}

	tz := getenv("DISPLAY_TIMEZONE", "Asia/Seoul")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return Config{}, fmt.Errorf("DISPLAY_TIMEZONE: %w", err)
	}

	return cfg, nil
}
