package db

import (
	"fmt"
	"os"
	"strconv"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadPostgresConfig reads DB_* variables, defaulting to a local server.
func LoadPostgresConfig() (PostgresConfig, error) {
	port, err := strconv.Atoi(getenv("DB_PORT", "5432"))
	if err != nil {
		return PostgresConfig{}, fmt.Errorf("DB_PORT: %w", err)
	}

	return PostgresConfig{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     port,
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   getenv("DB_NAME", "storefront"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}, nil
}

// DSN renders the config as a lib/pq connection URL.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}
