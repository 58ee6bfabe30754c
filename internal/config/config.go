// Package config centralises configuration parsing for the fittracker binary.
package config

import (
	"os"
	"strings"
	"time"
)

// StdinInput selects standard input as the package source.
const StdinInput = "-"

// Config captures runtime configuration values.
type Config struct {
	InputPath   string        // JSON-lines file, StdinInput, or empty for the built-in samples.
	Locales     []string      // Preferred summary languages, best first.
	OnError     string        // Failure policy name: skip or abort.
	MetricsFile string        // Optional Prometheus textfile written after the run.
	Timeout     time.Duration // Overall run deadline; zero disables it.
}

// Load reads environment variables into Config, applying defaults that reproduce the demo output.
func Load() Config {
	return Config{
		InputPath:   getEnv("FITTRACKER_INPUT", ""),
		Locales:     splitAndTrim(getEnv("FITTRACKER_LOCALE", "ru")),
		OnError:     getEnv("FITTRACKER_ON_ERROR", "skip"),
		MetricsFile: getEnv("FITTRACKER_METRICS_FILE", ""),
		Timeout:     getDurationEnv("FITTRACKER_TIMEOUT", 0),
	}
}

// getEnv treats a whitespace-only value as unset.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := getEnv(key, ""); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
