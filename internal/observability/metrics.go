// Package observability exposes run-level metrics and exports the default registry.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	runCompletedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fittracker",
		Subsystem: "run",
		Name:      "last_completed_timestamp_seconds",
		Help:      "Unix timestamp of the most recent batch run completion.",
	})

	runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fittracker",
		Subsystem: "run",
		Name:      "duration_seconds",
		Help:      "Wall time spent processing a batch of sensor packages.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	runsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "run",
		Name:      "completed_total",
		Help:      "Number of batch runs, labeled by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(runCompletedGauge, runDuration, runsCounter)
}

// RecordRun updates run metrics once a batch finishes.
func RecordRun(started, finished time.Time, runErr error) {
	if !started.IsZero() && !finished.IsZero() {
		runDuration.Observe(finished.Sub(started).Seconds())
	}
	if !finished.IsZero() {
		runCompletedGauge.Set(float64(finished.Unix()))
	}
	outcome := "success"
	if runErr != nil {
		outcome = "error"
	}
	runsCounter.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes every metric of the default gatherer to path in the text
// exposition format, suitable for a node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
