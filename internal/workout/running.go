package workout

const (
	runningLenStep = 0.65

	runningCaloriesMeanSpeedMultiplier = 18.0
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a run measured in steps.
type Running struct {
	base
}

// NewRunning builds a Running workout.
func NewRunning(action int, duration, weight float64) Running {
	return Running{base: base{action: action, duration: duration, weight: weight}}
}

func (Running) Kind() Kind { return KindRunning }

func (Running) Name() string { return "Running" }

func (r Running) Distance() float64 { return r.distance(runningLenStep) }

func (r Running) MeanSpeed() float64 { return r.Distance() / r.duration }

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * (r.duration * minInH)
}
