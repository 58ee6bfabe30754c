package workout

const (
	swimmingLenStep = 1.38

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2.0
)

// Swimming is a pool session. Distance follows the stroke count while mean speed
// follows pool geometry, so the two are not derived from each other.
type Swimming struct {
	base
	lengthPool float64
	countPool  float64
}

// NewSwimming builds a Swimming workout. lengthPool is in metres; countPool may be
// fractional when a length was abandoned halfway.
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) Swimming {
	return Swimming{
		base:       base{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// LengthPool returns the pool length in metres.
func (s Swimming) LengthPool() float64 { return s.lengthPool }

// CountPool returns how many pool lengths were swum.
func (s Swimming) CountPool() float64 { return s.countPool }

func (Swimming) Kind() Kind { return KindSwimming }

func (Swimming) Name() string { return "Swimming" }

func (s Swimming) Distance() float64 { return s.distance(swimmingLenStep) }

func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * s.countPool / mInKm / s.duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight * s.duration
}
