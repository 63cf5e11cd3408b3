package api

import (
	"os"
	"strconv"
	"time"
)

// Config holds the connection settings for the ProjectHub backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns a Config pointing at a local backend.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8001",
		Timeout: 10 * time.Second,
	}
}

// LoadConfig reads API configuration from environment variables,
// falling back to defaults for any unset values. PLANHUB_API_TIMEOUT
// is in seconds.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PLANHUB_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PLANHUB_API_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}

	return cfg
}
