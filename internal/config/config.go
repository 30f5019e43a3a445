package config

import (
	"os"
	"time"
)

const defaultTimeout = 20 * time.Second

type Config struct {
	ServiceURL string
	Timeout    time.Duration
	LogLevel   string
}

// Load reads CLI defaults from the environment. Flags may still override
// every field.
func Load() Config {
	timeout := defaultTimeout
	if raw := os.Getenv("FEEDCLIENT_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		}
	}
	level := os.Getenv("FEEDCLIENT_LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return Config{
		ServiceURL: os.Getenv("FEEDCLIENT_URL"),
		Timeout:    timeout,
		LogLevel:   level,
	}
}
