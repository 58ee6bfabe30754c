package tracker

import (
	"example.com/fittracker/internal/summary"
	"example.com/fittracker/internal/workout"
)

// Totals accumulates the summaries of one workout kind.
type Totals struct {
	Count      int
	DistanceKm float64
	Calories   float64
}

// Report describes the outcome of a batch run.
type Report struct {
	RunID     string
	Processed int
	Failed    int
	ByKind    map[workout.Kind]Totals
}

func newReport(runID string) Report {
	return Report{RunID: runID, ByKind: make(map[workout.Kind]Totals)}
}

func (r *Report) add(kind workout.Kind, s summary.Summary) {
	r.Processed++
	t := r.ByKind[kind]
	t.Count++
	t.DistanceKm += s.Distance
	t.Calories += s.Calories
	r.ByKind[kind] = t
}
