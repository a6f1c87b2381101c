package api

import (
	"os"
	"strconv"
)

// Config holds all configuration for the notice service client.
type Config struct {
	BaseURL    string
	TimeoutMs  int
	MaxRetries int // extra attempts for idempotent reads
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:4000",
		TimeoutMs:  10000,
		MaxRetries: 1,
		LogCalls:   false,
	}
}

// LoadConfig reads client configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NOTICEDESK_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("NOTICEDESK_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("NOTICEDESK_API_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("NOTICEDESK_API_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
