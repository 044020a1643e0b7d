// Package catalog holds the fixed reference data offered to users: AI use
// cases, the adjustable cost and value parameters, and industry presets.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/iwvelando/ai-roi-forecast/internal/projection"
)

// Kind tells whether a parameter belongs to the cost or the value side.
type Kind string

// Parameter kinds.
const (
	KindCost  Kind = "cost"
	KindValue Kind = "value"
)

// Parameter describes one adjustable assumption and its slider range.
type Parameter struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Default     float64 `json:"defaultValue" yaml:"defaultValue"`
	Min         float64 `json:"min" yaml:"min"`
	Max         float64 `json:"max" yaml:"max"`
	Step        float64 `json:"step" yaml:"step"`
	Unit        string  `json:"unit" yaml:"unit"`
	Kind        Kind    `json:"category" yaml:"category"`
}

// ErrInvalidParameter is returned for a custom parameter that cannot be added.
var ErrInvalidParameter = errors.New("invalid custom parameter")

var costParameters = []Parameter{
	{
		ID:          projection.KeyImplementation,
		Name:        "Implementation Cost",
		Description: "One-time cost to implement the AI solution",
		Default:     50000, Min: 10000, Max: 1000000, Step: 10000,
		Unit: "$", Kind: KindCost,
	},
	{
		ID:          projection.KeyAPI,
		Name:        "API / Model Usage",
		Description: "Monthly cost for AI API calls or model usage",
		Default:     2000, Min: 500, Max: 20000, Step: 500,
		Unit: "$/month", Kind: KindCost,
	},
	{
		ID:          projection.KeyInfrastructure,
		Name:        "Cloud Infrastructure",
		Description: "Monthly cost for servers, storage, and computing resources",
		Default:     1500, Min: 500, Max: 10000, Step: 100,
		Unit: "$/month", Kind: KindCost,
	},
	{
		ID:          projection.KeyMaintenance,
		Name:        "Maintenance & Support",
		Description: "Annual cost for maintenance, updates, and support",
		Default:     15000, Min: 5000, Max: 100000, Step: 1000,
		Unit: "$/year", Kind: KindCost,
	},
}

var valueParameters = []Parameter{
	{
		ID:          projection.KeyProductivity,
		Name:        "Productivity Improvement",
		Description: "Expected increase in employee productivity",
		Default:     20, Min: 5, Max: 50, Step: 1,
		Unit: "%", Kind: KindValue,
	},
	{
		ID:          projection.KeyCostReduction,
		Name:        "Cost Reduction",
		Description: "Expected reduction in operational costs",
		Default:     15, Min: 5, Max: 40, Step: 1,
		Unit: "%", Kind: KindValue,
	},
	{
		ID:          projection.KeyRevenueGrowth,
		Name:        "Revenue Growth",
		Description: "Expected increase in revenue",
		Default:     10, Min: 1, Max: 30, Step: 1,
		Unit: "%", Kind: KindValue,
	},
	{
		ID:          projection.KeyCustomerSatisfaction,
		Name:        "Customer Satisfaction",
		Description: "Expected improvement in customer satisfaction",
		Default:     25, Min: 5, Max: 60, Step: 1,
		Unit: "%", Kind: KindValue,
	},
	{
		ID:          projection.KeyEmployeesImpacted,
		Name:        "Employees Impacted",
		Description: "Number of employees affected by the AI implementation",
		Default:     50, Min: 5, Max: 1000, Step: 5,
		Unit: "", Kind: KindValue,
	},
	{
		ID:          projection.KeyHourlyCost,
		Name:        "Average Hourly Cost",
		Description: "Average hourly cost of an employee",
		Default:     45, Min: 15, Max: 500, Step: 10,
		Unit: "$/hour", Kind: KindValue,
	},
}

// CostParameters returns the built-in cost parameters in display order.
func CostParameters() []Parameter {
	return append([]Parameter(nil), costParameters...)
}

// ValueParameters returns the built-in value parameters in display order.
func ValueParameters() []Parameter {
	return append([]Parameter(nil), valueParameters...)
}

// LookupParameter finds a built-in parameter by id.
func LookupParameter(id string) (Parameter, bool) {
	for _, list := range [][]Parameter{costParameters, valueParameters} {
		for _, p := range list {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// DefaultCosts returns the default value of every built-in cost parameter.
func DefaultCosts() map[string]float64 {
	return defaults(costParameters)
}

// DefaultValues returns the default value of every built-in value parameter.
func DefaultValues() map[string]float64 {
	return defaults(valueParameters)
}

func defaults(params []Parameter) map[string]float64 {
	m := make(map[string]float64, len(params))
	for _, p := range params {
		m[p.ID] = p.Default
	}
	return m
}

// CheckRange returns a warning when value falls outside the slider range of
// the built-in parameter id. Unknown ids are not checked.
func CheckRange(id string, value float64) string {
	p, ok := LookupParameter(id)
	if !ok {
		return ""
	}
	if value < p.Min || value > p.Max {
		return fmt.Sprintf("%s (%s) is %v, outside the expected range %v to %v", p.Name, p.ID, value, p.Min, p.Max)
	}
	return ""
}

var whitespace = regexp.MustCompile(`\s+`)

// ParameterID derives a parameter id from a display name ("Training Hours" -> "training-hours").
func ParameterID(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// NewCustomParameter validates a caller-defined parameter, deriving its id
// from the name when none is given.
func NewCustomParameter(p Parameter) (Parameter, error) {
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.ID) == "" {
		return Parameter{}, fmt.Errorf("%w: a name or id is required", ErrInvalidParameter)
	}
	if p.ID == "" {
		p.ID = ParameterID(p.Name)
	}
	if _, builtIn := LookupParameter(p.ID); builtIn {
		return Parameter{}, fmt.Errorf("%w: %q is a built-in parameter", ErrInvalidParameter, p.ID)
	}
	if p.Kind != KindCost && p.Kind != KindValue {
		return Parameter{}, fmt.Errorf("%w: category must be %q or %q", ErrInvalidParameter, KindCost, KindValue)
	}
	if p.Min > p.Max {
		return Parameter{}, fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidParameter, p.Min, p.Max)
	}
	if p.Step <= 0 {
		p.Step = 1
	}
	return p, nil
}
