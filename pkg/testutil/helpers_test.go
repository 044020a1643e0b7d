package testutil

import (
	"math"
	"testing"

	"github.com/iwvelando/ai-roi-forecast/internal/forecast"
)

func TestFindScenario(t *testing.T) {
	results := []forecast.Forecast{
		{Name: "Baseline", CumulativeROI: 100},
		{Name: "Scenario B", CumulativeROI: 200},
		{Name: "Another Scenario", CumulativeROI: 300},
	}

	tests := []struct {
		name        string
		searchName  string
		expectFound bool
		expectedROI float64
	}{
		{name: "Find baseline", searchName: "Baseline", expectFound: true, expectedROI: 100},
		{name: "Find existing scenario B", searchName: "Scenario B", expectFound: true, expectedROI: 200},
		{name: "Find scenario with longer name", searchName: "Another Scenario", expectFound: true, expectedROI: 300},
		{name: "Search for non-existent scenario", searchName: "Non-existent", expectFound: false},
		{name: "Case sensitive search", searchName: "baseline", expectFound: false},
		{name: "Empty name", searchName: "", expectFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindScenario(results, tt.searchName)
			if !tt.expectFound {
				if result != nil {
					t.Errorf("FindScenario(%q) expected nil, got %s", tt.searchName, result.Name)
				}
				return
			}
			if result == nil {
				t.Fatalf("FindScenario(%q) returned nil", tt.searchName)
			}
			if result.CumulativeROI != tt.expectedROI {
				t.Errorf("FindScenario(%q) ROI = %v, expected %v", tt.searchName, result.CumulativeROI, tt.expectedROI)
			}
		})
	}

	if FindScenario(nil, "Baseline") != nil {
		t.Errorf("FindScenario on nil results should return nil")
	}
}

func TestFindScenarioReturnsPointerIntoSlice(t *testing.T) {
	results := []forecast.Forecast{{Name: "Baseline"}}
	FindScenario(results, "Baseline").CumulativeROI = 42
	if results[0].CumulativeROI != 42 {
		t.Errorf("expected FindScenario to return a pointer into the slice")
	}
}

func TestAlmostEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected bool
	}{
		{"Identical", 3869.167803547067, 3869.167803547067, true},
		{"Last digit differs", 3869.167803547067, 3869.167803547068, true},
		{"Different", 100, 101, false},
		{"Infinities", math.Inf(1), math.Inf(1), true},
		{"NaN", math.NaN(), math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlmostEqual(tt.a, tt.b); got != tt.expected {
				t.Errorf("AlmostEqual(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestCurrencyEqual(t *testing.T) {
	if !CurrencyEqual(107000, 107000.004) {
		t.Errorf("amounts within a cent should be equal")
	}
	if CurrencyEqual(107000, 107000.02) {
		t.Errorf("amounts two cents apart should differ")
	}
}
