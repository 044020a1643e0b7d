// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/ai-roi-forecast/internal/forecast"
	"github.com/iwvelando/ai-roi-forecast/pkg/constants"
	"github.com/iwvelando/ai-roi-forecast/pkg/mathutil"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindScenario(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// AlmostEqual reports whether a and b agree to within a relative tolerance
// of 1e-6, which absorbs differences in floating-point operation order.
func AlmostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-6*math.Max(math.Abs(a), math.Abs(b))
}

// CurrencyEqual reports whether two amounts agree to the cent.
func CurrencyEqual(a, b float64) bool {
	return mathutil.WithinTolerance(a, b, constants.CurrencyTolerance)
}
