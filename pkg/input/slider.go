package input

import (
	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/mathutil"
)

// Range describes a slider control.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Snap clamps v into the range and moves it to the nearest step.
func (r Range) Snap(v float64) float64 {
	snapped := mathutil.RoundToStep(mathutil.Clamp(v, r.Min, r.Max), r.Min, r.Step)
	// Rounding to a step can overshoot Max when Max is not itself on a step.
	return mathutil.Clamp(snapped, r.Min, r.Max)
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Sliders groups the ranges for the three inputs.
type Sliders struct {
	Principal Range `json:"principal"`
	Rate      Range `json:"annualRatePercent"`
	Term      Range `json:"termMonths"`
}

// DefaultSliders returns the ranges of the calculator's slider controls.
func DefaultSliders() Sliders {
	return Sliders{
		Principal: Range{Min: constants.PrincipalMin, Max: constants.PrincipalMax, Step: constants.PrincipalStep},
		Rate:      Range{Min: constants.RateMin, Max: constants.RateMax, Step: constants.RateStep},
		Term:      Range{Min: constants.TermMin, Max: constants.TermMax, Step: constants.TermStep},
	}
}
