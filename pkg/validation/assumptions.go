package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/ai-roi-forecast/internal/projection"
)

// ErrInvalidAssumption is wrapped by every error ValidateAssumptions reports.
var ErrInvalidAssumption = errors.New("invalid assumption")

// ValidateAssumptions reports required keys that are missing and values that
// are non-finite or negative. The projection engine itself accepts any input,
// so callers that want strict input run this first.
func ValidateAssumptions(costs, values map[string]float64) error {
	var errs []error
	errs = append(errs, check("cost", projection.CostKeys, costs)...)
	errs = append(errs, check("value", projection.ValueKeys, values)...)
	return errors.Join(errs...)
}

func check(kind string, required []string, m map[string]float64) []error {
	var errs []error
	for _, key := range required {
		v, ok := m[key]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: %s %s is missing", ErrInvalidAssumption, kind, key))
		case math.IsNaN(v) || math.IsInf(v, 0):
			errs = append(errs, fmt.Errorf("%w: %s %s is not a finite number", ErrInvalidAssumption, kind, key))
		case v < 0:
			errs = append(errs, fmt.Errorf("%w: %s %s must not be negative, got %v", ErrInvalidAssumption, kind, key, v))
		}
	}
	return errs
}
