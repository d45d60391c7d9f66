package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	ListenAddr  string        // HTTP listen address
	ReadTimeout time.Duration // HTTP server read timeout
	IdleTimeout time.Duration // HTTP server idle timeout
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() *Config {
	return &Config{
		ListenAddr:  envOrDefault("LISTEN_ADDR", ":8020"),
		ReadTimeout: envOrDefaultSeconds("READ_TIMEOUT_SECONDS", 30),
		IdleTimeout: envOrDefaultSeconds("IDLE_TIMEOUT_SECONDS", 120),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultSeconds(key string, fallback int64) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Second
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(n) * time.Second
}
