package workout

import "math"

const (
	walkingLenStep = 0.65

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
	cmInM                           = 100.0
)

// Walking is sports walking; the calorie estimate depends on height.
type Walking struct {
	base
	height float64
}

// NewWalking builds a Walking workout. Height is in centimetres.
func NewWalking(action int, duration, weight, height float64) Walking {
	return Walking{
		base:   base{action: action, duration: duration, weight: weight},
		height: height,
	}
}

// Height returns the height in centimetres.
func (w Walking) Height() float64 { return w.height }

func (Walking) Kind() Kind { return KindWalking }

func (Walking) Name() string { return "SportsWalking" }

func (w Walking) Distance() float64 { return w.distance(walkingLenStep) }

func (w Walking) MeanSpeed() float64 { return w.Distance() / w.duration }

func (w Walking) SpentCalories() float64 {
	speedMs := kmhInMsec * w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.weight +
		(math.Pow(speedMs, 2)/(w.height/cmInM))*walkingSpeedHeightMultiplier*w.weight) *
		(w.duration * minInH)
}
