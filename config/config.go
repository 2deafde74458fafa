// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              int
	LogLevel          string
	LogPretty         bool
	RedisAddr         string // empty: in-memory cache
	DatabaseURL       string // empty: in-memory profile store
	FundSearchURL     string // empty: enrichment disabled
	FundSearchTimeout time.Duration
	FundCacheTTL      time.Duration
	RateLimitCapacity int
	RateLimitWindow   time.Duration
	ShutdownTimeout   time.Duration
}

// Load reads a .env file if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvAsInt("PORT", 8080),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogPretty:         getEnvAsBool("LOG_PRETTY", true),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		FundSearchURL:     getEnv("FUND_SEARCH_URL", ""),
		FundSearchTimeout: getEnvAsDuration("FUND_SEARCH_TIMEOUT", 10*time.Second),
		FundCacheTTL:      getEnvAsDuration("FUND_CACHE_TTL", time.Hour),
		RateLimitCapacity: getEnvAsInt("RATE_LIMIT_CAPACITY", 5),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.FundSearchTimeout <= 0 {
		return fmt.Errorf("FUND_SEARCH_TIMEOUT must be positive, got %s", c.FundSearchTimeout)
	}
	if c.FundCacheTTL < 0 {
		return fmt.Errorf("FUND_CACHE_TTL cannot be negative, got %s", c.FundCacheTTL)
	}
	if c.RateLimitCapacity <= 0 {
		return fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", c.RateLimitCapacity)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
