package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/fittracker/internal/config"
	"example.com/fittracker/internal/tracker"
	"example.com/fittracker/internal/workout"
)

func TestRunSamplesLogsTotalsPerKind(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config.Config{Locales: []string{"en"}, OnError: "skip"}

	err := run(context.Background(), cfg, strings.NewReader(""), &out, log.New(&logs, "", 0))
	require.NoError(t, err)

	require.Equal(t, 3, strings.Count(out.String(), "\n"))
	require.Contains(t, logs.String(), "processed=3, failed=0, locale=en")

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[1], "type=SWM, count=1, distance_km=0.994, calories=336.000")
	require.Contains(t, lines[2], "type=RUN, count=1, distance_km=9.750, calories=797.805")
	require.Contains(t, lines[3], "type=WLK, count=1, distance_km=5.850, calories=349.252")
}

func TestRunReturnsErrorOnAbort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.jsonl")
	input := `{"type":"RUN","data":[15000,1,75]}` + "\n" + `{"type":"XYZ","data":[1,1,1]}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))

	var out, logs bytes.Buffer
	cfg := config.Config{InputPath: path, OnError: "abort"}

	err := run(context.Background(), cfg, strings.NewReader(""), &out, log.New(&logs, "", 0))
	require.ErrorIs(t, err, workout.ErrUnknownWorkoutType)
	require.Equal(t, 1, strings.Count(out.String(), "\n"))
	require.Contains(t, logs.String(), "processed=1, failed=1")
}

func TestRunReadsStdin(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Config{InputPath: config.StdinInput}

	err := run(context.Background(), cfg, strings.NewReader(`{"type":"RUN","data":[15000,1,75]}`), &out, log.New(&bytes.Buffer{}, "", 0))
	require.NoError(t, err)
	require.Contains(t, out.String(), "797.805")
}

func TestRunRejectsBadConfiguration(t *testing.T) {
	err := run(context.Background(), config.Config{OnError: "retry"}, strings.NewReader(""), &bytes.Buffer{}, log.New(&bytes.Buffer{}, "", 0))
	require.ErrorIs(t, err, tracker.ErrUnknownPolicy)

	err = run(context.Background(), config.Config{InputPath: filepath.Join(t.TempDir(), "missing.jsonl")}, strings.NewReader(""), &bytes.Buffer{}, log.New(&bytes.Buffer{}, "", 0))
	require.ErrorIs(t, err, os.ErrNotExist)
}
