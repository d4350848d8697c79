package testutil

import (
	"testing"

	"github.com/iwvelando/emi-calculator/pkg/presentation"
)

func TestFindSlice(t *testing.T) {
	chart := []presentation.Slice{
		{Name: "Principal", Value: 100000},
		{Name: "Interest", Value: 4386.11},
	}

	tests := []struct {
		name          string
		searchName    string
		expectFound   bool
		expectedValue float64
	}{
		{"Find principal", "Principal", true, 100000},
		{"Find interest", "Interest", true, 4386.11},
		{"Missing slice", "Fees", false, 0},
		{"Case sensitive", "principal", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindSlice(chart, tt.searchName)
			if tt.expectFound {
				if result == nil {
					t.Fatalf("expected to find slice %q", tt.searchName)
				}
				if result.Value != tt.expectedValue {
					t.Errorf("expected value %.2f, got %.2f", tt.expectedValue, result.Value)
				}
			} else if result != nil {
				t.Errorf("expected nil for %q, got %+v", tt.searchName, result)
			}
		})
	}
}

func TestFindSliceReturnsPointerIntoChart(t *testing.T) {
	chart := []presentation.Slice{{Name: "Principal", Value: 1}}
	FindSlice(chart, "Principal").Value = 2
	if chart[0].Value != 2 {
		t.Error("FindSlice should return a pointer into the chart")
	}
}

func TestAmountMatches(t *testing.T) {
	if !AmountMatches(8698.843, 8698.84) {
		t.Error("expected amounts within a cent to match")
	}
	if AmountMatches(8698.86, 8698.84) {
		t.Error("expected amounts two cents apart to differ")
	}
}
