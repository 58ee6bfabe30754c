package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"FITTRACKER_INPUT", "FITTRACKER_LOCALE", "FITTRACKER_ON_ERROR", "FITTRACKER_METRICS_FILE", "FITTRACKER_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "", cfg.InputPath)
	require.Equal(t, []string{"ru"}, cfg.Locales)
	require.Equal(t, "skip", cfg.OnError)
	require.Equal(t, "", cfg.MetricsFile)
	require.Zero(t, cfg.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FITTRACKER_INPUT", " -  ")
	t.Setenv("FITTRACKER_LOCALE", "en-GB, ru ,")
	t.Setenv("FITTRACKER_ON_ERROR", "abort")
	t.Setenv("FITTRACKER_METRICS_FILE", "/tmp/fittracker.prom")
	t.Setenv("FITTRACKER_TIMEOUT", "30s")

	cfg := Load()
	require.Equal(t, StdinInput, cfg.InputPath)
	require.Equal(t, []string{"en-GB", "ru"}, cfg.Locales)
	require.Equal(t, "abort", cfg.OnError)
	require.Equal(t, "/tmp/fittracker.prom", cfg.MetricsFile)
	require.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadIgnoresBadDuration(t *testing.T) {
	t.Setenv("FITTRACKER_TIMEOUT", "soon")
	require.Zero(t, Load().Timeout)
}

func TestLoadTreatsBlankValuesAsUnset(t *testing.T) {
	t.Setenv("FITTRACKER_INPUT", "   ")
	t.Setenv("FITTRACKER_LOCALE", " \t ")
	t.Setenv("FITTRACKER_ON_ERROR", " ")
	t.Setenv("FITTRACKER_METRICS_FILE", "  ")
	t.Setenv("FITTRACKER_TIMEOUT", " 5s ")

	cfg := Load()
	require.Equal(t, "", cfg.InputPath)
	require.Equal(t, []string{"ru"}, cfg.Locales)
	require.Equal(t, "skip", cfg.OnError)
	require.Equal(t, "", cfg.MetricsFile)
	require.Equal(t, 5*time.Second, cfg.Timeout)
}
