package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when no industry preset matches a name.
var ErrUnknownPreset = errors.New("unknown industry preset")

// Preset is a ready-made set of assumptions for an industry.
type Preset struct {
	Name   string             `json:"name" yaml:"name"`
	Costs  map[string]float64 `json:"costs" yaml:"costs"`
	Values map[string]float64 `json:"values" yaml:"values"`
}

var presets = []Preset{
	{
		Name: "Healthcare",
		Costs: map[string]float64{
			"implementation": 75000,
			"api":            3000,
			"infrastructure": 2000,
			"maintenance":    20000,
		},
		Values: map[string]float64{
			"productivity":          25,
			"cost-reduction":        15,
			"revenue-growth":        8,
			"customer-satisfaction": 30,
			"employees-impacted":    120,
			"hourly-cost":           65,
		},
	},
	{
		Name: "Finance",
		Costs: map[string]float64{
			"implementation": 120000,
			"api":            5000,
			"infrastructure": 3500,
			"maintenance":    35000,
		},
		Values: map[string]float64{
			"productivity":          30,
			"cost-reduction":        20,
			"revenue-growth":        12,
			"customer-satisfaction": 20,
			"employees-impacted":    80,
			"hourly-cost":           95,
		},
	},
	{
		Name: "Manufacturing",
		Costs: map[string]float64{
			"implementation": 85000,
			"api":            2500,
			"infrastructure": 4000,
			"maintenance":    25000,
		},
		Values: map[string]float64{
			"productivity":          18,
			"cost-reduction":        25,
			"revenue-growth":        10,
			"customer-satisfaction": 15,
			"employees-impacted":    200,
			"hourly-cost":           45,
		},
	},
}

// Presets returns copies of every industry preset.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.clone())
	}
	return out
}

// LookupPreset finds an industry preset by name, ignoring case.
func LookupPreset(name string) (Preset, error) {
	trimmed := strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, trimmed) {
			return p.clone(), nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func (p Preset) clone() Preset {
	return Preset{Name: p.Name, Costs: cloneMap(p.Costs), Values: cloneMap(p.Values)}
}

func cloneMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge returns base with every key of overlay applied on top. Neither input
// is modified.
func Merge(base, overlay map[string]float64) map[string]float64 {
	out := cloneMap(base)
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
