package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration sourced from env vars. It is built once
// at startup and passed explicitly to the components that need it.
type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	JWTExpiry       time.Duration
	RateLimitWindow time.Duration
	RateLimitMax    int
	LogLevel        string
}

// Load reads configuration from the environment. A missing JWT secret or
// database URL is a startup error, not a runtime default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTExpiry:       getDuration("JWT_EXPIRY", 720*time.Hour),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", 60*time.Second),
		RateLimitMax:    getInt("RATE_LIMIT_MAX", 6),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
