// Package summary renders the human-readable line reported for a workout.
package summary

import (
	"fmt"
	"strconv"

	"example.com/fittracker/internal/workout"
)

// Summary is the information message for a single workout.
type Summary struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// New computes the metrics of w and packages them into a Summary.
func New(w workout.Workout) (Summary, error) {
	m, err := workout.Compute(w)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		TrainingType: w.Name(),
		Duration:     w.Duration(),
		Distance:     m.Distance,
		Speed:        m.MeanSpeed,
		Calories:     m.Calories,
	}, nil
}

// Message renders the summary in the given locale.
func (s Summary) Message(loc Locale) string {
	return fmt.Sprintf(loc.layout(),
		s.TrainingType,
		FormatFixed(s.Duration),
		FormatFixed(s.Distance),
		FormatFixed(s.Speed),
		FormatFixed(s.Calories),
	)
}

// String renders the summary in the default locale.
func (s Summary) String() string {
	return s.Message(DefaultLocale)
}

// FormatFixed renders v with exactly three fractional digits, rounding the exact
// binary value to nearest with ties to even.
func FormatFixed(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
