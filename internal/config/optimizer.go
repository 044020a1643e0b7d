package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/ai-roi-forecast/internal/projection"
)

const (
	OptimizerKindPayback = "payback"
	OptimizerKindROI     = "roi"

	defaultToleranceAmount   = 0.01
	defaultTolerancePercent  = 0.001
	defaultToleranceDiscrete = 1
	defaultMaxIterations     = 50
)

// OptimizerConfig asks for the break-even value of one assumption of a
// scenario: the highest cost or lowest value that still meets the target.
type OptimizerConfig struct {
	Parameter     string   `yaml:"parameter" mapstructure:"parameter"`
	Kind          string   `yaml:"kind,omitempty" mapstructure:"kind"`
	Target        float64  `yaml:"target" mapstructure:"target"`
	Min           *float64 `yaml:"min,omitempty" mapstructure:"min"`
	Max           *float64 `yaml:"max,omitempty" mapstructure:"max"`
	Tolerance     float64  `yaml:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations int      `yaml:"maxIterations,omitempty" mapstructure:"maxIterations"`
}

// CanonicalOptimizerKind returns the canonical identifier for an optimizer kind.
func CanonicalOptimizerKind(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "payback", "payback_year", "payback-year":
		return OptimizerKindPayback
	case "roi", "cumulative_roi", "cumulative-roi":
		return OptimizerKindROI
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

// IsCostParameter reports whether key is one of the required cost keys.
func IsCostParameter(key string) bool {
	for _, k := range projection.CostKeys {
		if k == key {
			return true
		}
	}
	return false
}

func isValueParameter(key string) bool {
	for _, k := range projection.ValueKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Normalize ensures defaults and canonical values are applied before validation.
func (o *OptimizerConfig) Normalize() {
	if o == nil {
		return
	}
	o.Parameter = strings.ToLower(strings.TrimSpace(o.Parameter))
	o.Kind = CanonicalOptimizerKind(o.Kind)

	if o.Tolerance <= 0 {
		switch {
		case o.Parameter == projection.KeyEmployeesImpacted:
			o.Tolerance = defaultToleranceDiscrete
		case isValueParameter(o.Parameter) && o.Parameter != projection.KeyHourlyCost:
			o.Tolerance = defaultTolerancePercent
		default:
			o.Tolerance = defaultToleranceAmount
		}
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = defaultMaxIterations
	}
}

// Validate returns an error when the optimizer configuration is unsupported.
func (o *OptimizerConfig) Validate(horizon int) error {
	if o == nil {
		return fmt.Errorf("optimizer configuration cannot be nil")
	}

	o.Normalize()

	if !IsCostParameter(o.Parameter) && !isValueParameter(o.Parameter) {
		return fmt.Errorf("optimizer parameter %q is not supported", o.Parameter)
	}

	switch o.Kind {
	case OptimizerKindPayback:
		if o.Target < 1 || o.Target != math.Trunc(o.Target) {
			return fmt.Errorf("optimizer payback target must be a whole number of years, got %v", o.Target)
		}
		if o.Target > float64(horizon) {
			return fmt.Errorf("optimizer payback target %v is beyond the %d year horizon", o.Target, horizon)
		}
	case OptimizerKindROI:
		if math.IsNaN(o.Target) || math.IsInf(o.Target, 0) {
			return fmt.Errorf("optimizer ROI target must be finite")
		}
	default:
		return fmt.Errorf("optimizer kind %q is not supported", o.Kind)
	}

	if o.Min == nil {
		return fmt.Errorf("optimizer requires a minimum bound")
	}
	if o.Max == nil {
		return fmt.Errorf("optimizer requires a maximum bound")
	}
	if *o.Min < 0 {
		return fmt.Errorf("optimizer minimum %.2f must not be negative", *o.Min)
	}
	if *o.Min >= *o.Max {
		return fmt.Errorf("optimizer minimum %.2f must be less than maximum %.2f", *o.Min, *o.Max)
	}
	return nil
}
