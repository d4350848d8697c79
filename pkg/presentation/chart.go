package presentation

import (
	"github.com/iwvelando/emi-calculator/pkg/emi"
	"github.com/iwvelando/emi-calculator/pkg/format"
	"github.com/iwvelando/emi-calculator/pkg/mathutil"
)

// Slice is one segment of the principal versus interest chart.
type Slice struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
	Label   string  `json:"label"`
}

// Breakdown splits a result's total payment into principal and interest
// slices coloured for the given mode. Percentages are shares of the sum of
// both slices; when both are zero every share is zero.
func Breakdown(result emi.Result, mode Mode) []Slice {
	palette := PaletteFor(mode)
	principal := result.Inputs.Principal
	interest := result.TotalInterest
	if interest < 0 {
		// Float noise on zero-rate loans; the chart cannot draw a negative slice.
		interest = 0
	}
	total := principal + interest

	slices := []Slice{
		{Name: "Principal", Value: principal, Color: palette.Principal},
		{Name: "Interest", Value: interest, Color: palette.Interest},
	}
	for i := range slices {
		slices[i].Percent = mathutil.CalculatePercentage(slices[i].Value, total)
		slices[i].Label = slices[i].Name + ": " + format.Percent(slices[i].Percent, 0)
	}
	return slices
}
