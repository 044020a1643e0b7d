package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/ai-roi-forecast/pkg/constants"
)

// Parameters are the scaling constants shared by every projection formula.
type Parameters struct {
	APIGrowthRate            float64 `mapstructure:"apiGrowthRate" yaml:"apiGrowthRate" json:"apiGrowthRate"`
	MaintenanceGrowthRate    float64 `mapstructure:"maintenanceGrowthRate" yaml:"maintenanceGrowthRate" json:"maintenanceGrowthRate"`
	ValueGrowthRate          float64 `mapstructure:"valueGrowthRate" yaml:"valueGrowthRate" json:"valueGrowthRate"`
	HoursPerYear             float64 `mapstructure:"hoursPerYear" yaml:"hoursPerYear" json:"hoursPerYear"`
	RevenuePerEmployee       float64 `mapstructure:"revenuePerEmployee" yaml:"revenuePerEmployee" json:"revenuePerEmployee"`
	SatisfactionRevenueShare float64 `mapstructure:"satisfactionRevenueShare" yaml:"satisfactionRevenueShare" json:"satisfactionRevenueShare"`
}

// ErrInvalidParameters is returned when a parameter set cannot drive a projection.
var ErrInvalidParameters = errors.New("invalid projection parameters")

// DefaultParameters returns the reference scaling constants.
func DefaultParameters() Parameters {
	return Parameters{
		APIGrowthRate:            constants.APIGrowthRate,
		MaintenanceGrowthRate:    constants.MaintenanceGrowthRate,
		ValueGrowthRate:          constants.ValueGrowthRate,
		HoursPerYear:             constants.HoursPerYear,
		RevenuePerEmployee:       constants.RevenuePerEmployee,
		SatisfactionRevenueShare: constants.SatisfactionRevenueShare,
	}
}

// Validate rejects non-finite or negative parameters.
func (p Parameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"apiGrowthRate", p.APIGrowthRate},
		{"maintenanceGrowthRate", p.MaintenanceGrowthRate},
		{"valueGrowthRate", p.ValueGrowthRate},
		{"hoursPerYear", p.HoursPerYear},
		{"revenuePerEmployee", p.RevenuePerEmployee},
		{"satisfactionRevenueShare", p.SatisfactionRevenueShare},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidParameters, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidParameters, f.name, f.value)
		}
	}
	return nil
}

// Overlay returns p with every non-zero field of o applied on top.
func (p Parameters) Overlay(o Parameters) Parameters {
	if o.APIGrowthRate != 0 {
		p.APIGrowthRate = o.APIGrowthRate
	}
	if o.MaintenanceGrowthRate != 0 {
		p.MaintenanceGrowthRate = o.MaintenanceGrowthRate
	}
	if o.ValueGrowthRate != 0 {
		p.ValueGrowthRate = o.ValueGrowthRate
	}
	if o.HoursPerYear != 0 {
		p.HoursPerYear = o.HoursPerYear
	}
	if o.RevenuePerEmployee != 0 {
		p.RevenuePerEmployee = o.RevenuePerEmployee
	}
	if o.SatisfactionRevenueShare != 0 {
		p.SatisfactionRevenueShare = o.SatisfactionRevenueShare
	}
	return p
}
