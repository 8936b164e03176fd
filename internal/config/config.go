// Package config handles configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all application configuration.
type Config struct {
	// ListenAddr is the address:port the server listens on.
	ListenAddr string

	// AccessLog toggles the access-log middleware.
	AccessLog bool

	// AccessLogLevel is the severity access lines are emitted at.
	AccessLogLevel zerolog.Level

	// AccessLogDuration appends request latency to each access line.
	AccessLogDuration bool

	// LogPretty renders console output instead of raw JSON.
	LogPretty bool

	// EnablePprof exposes the pprof endpoints under /debug/pprof/.
	EnablePprof bool
}

// Load reads configuration from environment variables with sensible
// defaults, after loading a .env file if one exists in the working
// directory. An unknown access-log level is a configuration error and is
// reported here, never at request time.
func Load() (*Config, error) {
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(getEnv("ACCESS_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("parse ACCESS_LOG_LEVEL: %w", err)
	}

	return &Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		AccessLog:         getBool("ACCESS_LOG", true),
		AccessLogLevel:    level,
		AccessLogDuration: getBool("ACCESS_LOG_DURATION", false),
		LogPretty:         getBool("LOG_PRETTY", true),
		EnablePprof:       getBool("ENABLE_PPROF", false),
	}, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBool retrieves a boolean environment variable, falling back to the
// default on absence or parse failure.
func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
