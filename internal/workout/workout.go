// Package workout models the supported training kinds and the metrics derived from sensor readings.
package workout

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownWorkoutType indicates the type code is not one of the recognised kinds.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArityMismatch is returned when the number of fields does not match the kind.
	ErrArityMismatch = errors.New("field count does not match workout type")
	// ErrInvalidNumericInput indicates a field could not be coerced to a finite number.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	// ErrDivisionByZero is returned when metrics are requested for a zero duration.
	ErrDivisionByZero = errors.New("duration is zero")
)

const (
	mInKm  = 1000.0
	minInH = 60.0
)

// Kind is the discriminant of a workout, equal to its sensor type code.
type Kind string

const (
	KindSwimming Kind = "SWM"
	KindRunning  Kind = "RUN"
	KindWalking  Kind = "WLK"
)

// Kinds lists the recognised kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindSwimming, KindRunning, KindWalking}
}

// ParseKind resolves a sensor type code.
func ParseKind(code string) (Kind, error) {
	switch k := Kind(code); k {
	case KindSwimming, KindRunning, KindWalking:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
}

func (k Kind) String() string { return string(k) }

// Workout is implemented by every training kind.
type Workout interface {
	Kind() Kind
	// Name is the training type shown in summaries.
	Name() string
	// Duration in hours.
	Duration() float64
	// Distance in kilometres.
	Distance() float64
	// MeanSpeed in km/h.
	MeanSpeed() float64
	// SpentCalories in kcal.
	SpentCalories() float64
}

// Metrics bundles the values derived from a single workout.
type Metrics struct {
	Distance  float64
	MeanSpeed float64
	Calories  float64
}

// Compute derives all metrics of w. A zero divisor is reported as ErrDivisionByZero
// and any other non-finite result as ErrInvalidNumericInput, so callers never see
// NaN or an infinity.
func Compute(w Workout) (Metrics, error) {
	if w.Duration() == 0 {
		return Metrics{}, fmt.Errorf("%w: %s duration", ErrDivisionByZero, w.Kind())
	}
	if walk, ok := w.(Walking); ok && walk.Height() == 0 {
		return Metrics{}, fmt.Errorf("%w: %s height", ErrDivisionByZero, w.Kind())
	}

	m := Metrics{
		Distance:  w.Distance(),
		MeanSpeed: w.MeanSpeed(),
		Calories:  w.SpentCalories(),
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"distance", m.Distance},
		{"mean speed", m.MeanSpeed},
		{"calories", m.Calories},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return Metrics{}, fmt.Errorf("%w: %s %s is %v", ErrInvalidNumericInput, w.Kind(), v.name, v.value)
		}
	}
	return m, nil
}

// base holds the readings shared by all kinds.
type base struct {
	action   int
	duration float64
	weight   float64
}

// Action returns the raw step or stroke count.
func (b base) Action() int { return b.action }

// Duration returns the duration in hours.
func (b base) Duration() float64 { return b.duration }

// Weight returns the body weight in kilograms.
func (b base) Weight() float64 { return b.weight }

func (b base) distance(lenStep float64) float64 {
	return float64(b.action) * lenStep / mInKm
}
