// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/mathutil"
	"github.com/iwvelando/emi-calculator/pkg/presentation"
)

// FindSlice finds a chart slice by name.
// Returns a pointer to the slice if found, nil otherwise.
func FindSlice(chart []presentation.Slice, name string) *presentation.Slice {
	for i := range chart {
		if chart[i].Name == name {
			return &chart[i]
		}
	}
	return nil
}

// AmountMatches reports whether got equals want to the cent.
func AmountMatches(got, want float64) bool {
	return mathutil.WithinTolerance(got, want, constants.CurrencyTolerance)
}
