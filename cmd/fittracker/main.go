package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/fittracker/internal/config"
	"example.com/fittracker/internal/observability"
	"example.com/fittracker/internal/source"
	"example.com/fittracker/internal/summary"
	"example.com/fittracker/internal/tracker"
	"example.com/fittracker/internal/workout"
)

func main() {
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg, os.Stdin, os.Stdout, log.Default())
	cancel()
	if err != nil {
		log.Printf("fittracker: %v", err)
		os.Exit(1)
	}
}

// run executes one batch and returns once every deferred cleanup has happened.
func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	policy, err := tracker.ParsePolicy(cfg.OnError)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	src, closeSource, err := openSource(cfg.InputPath, stdin)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer closeSource()

	locale := summary.ParseLocale(cfg.Locales...)
	proc := tracker.NewProcessor(src, stdout,
		tracker.WithLocale(locale),
		tracker.WithPolicy(policy),
	)

	started := time.Now()
	report, runErr := proc.Run(ctx)
	observability.RecordRun(started, time.Now(), runErr)

	if cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Printf("failed to write metrics file: %v", err)
		}
	}

	logReport(logger, report, locale)
	if runErr != nil {
		return fmt.Errorf("run %s stopped: %w", report.RunID, runErr)
	}
	return nil
}

func logReport(logger *log.Logger, report tracker.Report, locale summary.Locale) {
	logger.Printf("run %s finished (processed=%d, failed=%d, locale=%s)", report.RunID, report.Processed, report.Failed, locale)
	for _, kind := range workout.Kinds() {
		totals, ok := report.ByKind[kind]
		if !ok {
			continue
		}
		logger.Printf("run %s totals (type=%s, count=%d, distance_km=%s, calories=%s)",
			report.RunID, kind, totals.Count, summary.FormatFixed(totals.DistanceKm), summary.FormatFixed(totals.Calories))
	}
}

func openSource(path string, stdin io.Reader) (source.Source, func(), error) {
	switch path {
	case "":
		return source.Samples(), func() {}, nil
	case config.StdinInput:
		return source.NewJSONLines(stdin), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return source.NewJSONLines(f), func() { _ = f.Close() }, nil
}
