package tracker

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/fittracker/internal/source"
	"example.com/fittracker/internal/summary"
	"example.com/fittracker/internal/workout"
)

var (
	processedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "tracker",
		Name:      "records_processed_total",
		Help:      "Number of sensor packages summarised successfully.",
	}, []string{"kind"})

	failedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "tracker",
		Name:      "records_failed_total",
		Help:      "Number of sensor packages rejected, grouped by type code and reason.",
	}, []string{"kind", "reason"})

	caloriesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fittracker",
		Subsystem: "tracker",
		Name:      "calories_burned",
		Help:      "Distribution of calories per summarised workout.",
		Buckets:   prometheus.LinearBuckets(0, 100, 10),
	}, []string{"kind"})

	distanceCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "tracker",
		Name:      "distance_km_total",
		Help:      "Total distance in kilometres across summarised workouts.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(processedCounter, failedCounter, caloriesHistogram, distanceCounter)
}

func recordProcessed(kind workout.Kind, s summary.Summary) {
	processedCounter.WithLabelValues(kind.String()).Inc()
	caloriesHistogram.WithLabelValues(kind.String()).Observe(s.Calories)
	if s.Distance > 0 {
		distanceCounter.WithLabelValues(kind.String()).Add(s.Distance)
	}
}

func recordFailed(code string, err error) {
	failedCounter.WithLabelValues(kindLabel(code), failureReason(err)).Inc()
}

// kindLabel bounds label cardinality to the known codes.
func kindLabel(code string) string {
	if kind, err := workout.ParseKind(code); err == nil {
		return kind.String()
	}
	return "unknown"
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		return "unknown_type"
	case errors.Is(err, workout.ErrArityMismatch):
		return "arity_mismatch"
	case errors.Is(err, workout.ErrInvalidNumericInput):
		return "invalid_numeric"
	case errors.Is(err, workout.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, source.ErrMalformedRecord):
		return "malformed"
	default:
		return "other"
	}
}
