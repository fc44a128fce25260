// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// RateLimit is one capacity/refill pair for a bucket class.
type RateLimit struct {
	Capacity       int64
	RefillTokens   int64
	RefillInterval time.Duration
}

type Config struct {
	Port    string
	BaseURL string

	PostgresURL   string
	RedisAddr     string
	RedisPassword string

	ClickHouseAddr     string
	ClickHouseUser     string
	ClickHousePassword string
	ClickHouseDB       string

	// Optional: when empty the matching feature is disabled.
	GeoIPPath     string
	TelegramToken string

	PublicLimit        RateLimit
	AuthenticatedLimit RateLimit
}

// Load reads configuration from the environment. A missing .env file is not
// an error; missing required variables are.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Error loading .env file", "error", err)
	}

	cfg := &Config{
		Port:               os.Getenv("PORT"),
		BaseURL:            os.Getenv("BASE_URL"),
		PostgresURL:        os.Getenv("DB_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		ClickHouseAddr:     os.Getenv("CLICKHOUSE_ADDR"),
		ClickHouseUser:     os.Getenv("CLICKHOUSE_USER"),
		ClickHousePassword: os.Getenv("CLICKHOUSE_PASSWORD"),
		ClickHouseDB:       os.Getenv("CLICKHOUSE_DB"),
		GeoIPPath:          os.Getenv("GEOIP_DB_PATH"),
		TelegramToken:      os.Getenv("TELEGRAM_API_TOKEN"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}

	for name, v := range map[string]string{
		"DB_URL":          cfg.PostgresURL,
		"REDIS_ADDR":      cfg.RedisAddr,
		"CLICKHOUSE_ADDR": cfg.ClickHouseAddr,
		"CLICKHOUSE_USER": cfg.ClickHouseUser,
		"CLICKHOUSE_DB":   cfg.ClickHouseDB,
	} {
		if v == "" {
			return nil, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	cfg.PublicLimit = RateLimit{
		Capacity:       envInt64("RATE_LIMIT_PUBLIC_CAPACITY", 10),
		RefillTokens:   envInt64("RATE_LIMIT_PUBLIC_REFILL_TOKENS", 10),
		RefillInterval: envDuration("RATE_LIMIT_PUBLIC_REFILL_INTERVAL", time.Minute),
	}
	cfg.AuthenticatedLimit = RateLimit{
		Capacity:       envInt64("RATE_LIMIT_AUTH_CAPACITY", 100),
		RefillTokens:   envInt64("RATE_LIMIT_AUTH_REFILL_TOKENS", 100),
		RefillInterval: envDuration("RATE_LIMIT_AUTH_REFILL_INTERVAL", time.Minute),
	}

	return cfg, nil
}

func envInt64(name string, fallback int64) int64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Warn("Invalid integer environment variable, using default", "name", name, "value", raw)
		return fallback
	}
	return v
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid duration environment variable, using default", "name", name, "value", raw)
		return fallback
	}
	return v
}
