package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/ai-roi-forecast/pkg/constants"
)

var (
	// ErrInvalidYear is returned for a projection year below 1.
	ErrInvalidYear = errors.New("projection year must be 1 or greater")

	// ErrInvalidHorizon is returned for a projection horizon below 1 year.
	ErrInvalidHorizon = errors.New("projection horizon must be 1 year or more")
)

// Engine evaluates projections for one set of scaling parameters.
type Engine struct {
	params Parameters
}

var defaultEngine = &Engine{params: DefaultParameters()}

// NewEngine returns an Engine for params, or an error if params fail validation.
func NewEngine(params Parameters) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: params}, nil
}

// Default returns the Engine using DefaultParameters.
func Default() *Engine {
	return defaultEngine
}

// Parameters returns the scaling parameters used by e.
func (e *Engine) Parameters() Parameters {
	return e.params
}

// ROI returns (value-cost)/cost as a percentage. When cost is zero the ratio
// is undefined, so the result is +Inf for a positive value, -Inf for a
// negative value and 0 when value is also zero. NaN inputs yield NaN.
func ROI(value, cost float64) float64 {
	if cost == 0 {
		switch {
		case value > 0:
			return math.Inf(1)
		case value < 0:
			return math.Inf(-1)
		case value == 0:
			return 0
		default:
			return math.NaN()
		}
	}
	return ((value - cost) / cost) * constants.PercentageMultiplier
}

func checkYear(year int) error {
	if year < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	return nil
}

func checkHorizon(years int) error {
	if years < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, years)
	}
	return nil
}

// YearlyCost returns the total cost incurred in year (1-based).
func (e *Engine) YearlyCost(costs CostAssumptions, year int) (float64, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	return e.yearlyCost(costs, year), nil
}

func (e *Engine) yearlyCost(costs CostAssumptions, year int) float64 {
	implementation := 0.0
	if year == 1 {
		implementation = costs.Implementation
	}

	apiYearly := costs.API * constants.MonthsPerYear
	infrastructureYearly := costs.Infrastructure * constants.MonthsPerYear

	apiScaling := 1 + float64(year-1)*e.params.APIGrowthRate
	maintenanceScaling := 1 + float64(year-1)*e.params.MaintenanceGrowthRate

	return implementation +
		apiYearly*apiScaling +
		infrastructureYearly +
		costs.Maintenance*maintenanceScaling
}

// YearlyValue returns the value produced in year, in total and per category.
func (e *Engine) YearlyValue(values ValueAssumptions, year int) (YearValue, error) {
	if err := checkYear(year); err != nil {
		return YearValue{}, err
	}
	return e.yearlyValue(values, year), nil
}

func (e *Engine) yearlyValue(values ValueAssumptions, year int) YearValue {
	hours := e.params.HoursPerYear

	productivityHoursSaved := values.EmployeesImpacted * hours * (values.Productivity / constants.PercentageMultiplier)
	productivity := productivityHoursSaved * values.HourlyCost

	annualEmployeeCost := values.EmployeesImpacted * values.HourlyCost * hours
	costReduction := annualEmployeeCost * (values.CostReduction / constants.PercentageMultiplier)

	baseRevenue := values.EmployeesImpacted * e.params.RevenuePerEmployee
	revenueGrowth := baseRevenue * (values.RevenueGrowth / constants.PercentageMultiplier)

	customerSatisfaction := baseRevenue * e.params.SatisfactionRevenueShare * (values.CustomerSatisfaction / constants.PercentageMultiplier)

	scaling := 1 + float64(year-1)*e.params.ValueGrowthRate

	// Categories are scaled one by one so per-category factors can diverge later.
	return YearValue{
		Total: (productivity + costReduction + revenueGrowth + customerSatisfaction) * scaling,
		Breakdown: Breakdown{
			Productivity:         productivity * scaling,
			CostReduction:        costReduction * scaling,
			RevenueGrowth:        revenueGrowth * scaling,
			CustomerSatisfaction: customerSatisfaction * scaling,
		},
	}
}

// YearlyROI returns the ROI percentage for a single year.
func (e *Engine) YearlyROI(costs CostAssumptions, values ValueAssumptions, year int) (float64, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	return e.yearlyROI(costs, values, year), nil
}

func (e *Engine) yearlyROI(costs CostAssumptions, values ValueAssumptions, year int) float64 {
	return ROI(e.yearlyValue(values, year).Total, e.yearlyCost(costs, year))
}

// YearlySeries projects years 1 through years, each year independently.
func (e *Engine) YearlySeries(costs CostAssumptions, values ValueAssumptions, years int) ([]YearlyRecord, error) {
	if err := checkHorizon(years); err != nil {
		return nil, err
	}

	series := make([]YearlyRecord, 0, years)
	for year := 1; year <= years; year++ {
		cost := e.yearlyCost(costs, year)
		value := e.yearlyValue(values, year)
		series = append(series, YearlyRecord{
			Year:      year,
			Cost:      cost,
			Value:     value.Total,
			NetValue:  value.Total - cost,
			ROI:       e.yearlyROI(costs, values, year),
			Breakdown: value.Breakdown,
		})
	}
	return series, nil
}

// CumulativeSeries accumulates cost, value and each category from year 1
// onwards. Cumulative ROI is derived from the running totals of each year.
func (e *Engine) CumulativeSeries(costs CostAssumptions, values ValueAssumptions, years int) ([]CumulativeRecord, error) {
	if err := checkHorizon(years); err != nil {
		return nil, err
	}

	series := make([]CumulativeRecord, 0, years)
	var cumulativeCost, cumulativeValue float64
	var cumulativeBreakdown Breakdown
	for year := 1; year <= years; year++ {
		value := e.yearlyValue(values, year)

		cumulativeCost += e.yearlyCost(costs, year)
		cumulativeValue += value.Total
		cumulativeBreakdown = cumulativeBreakdown.Add(value.Breakdown)

		series = append(series, CumulativeRecord{
			Year:               year,
			CumulativeCost:     cumulativeCost,
			CumulativeValue:    cumulativeValue,
			CumulativeNetValue: cumulativeValue - cumulativeCost,
			CumulativeROI:      ROI(cumulativeValue, cumulativeCost),
			Breakdown:          cumulativeBreakdown,
		})
	}
	return series, nil
}

// CumulativeROI returns the cumulative ROI through years, identical to the
// last record of CumulativeSeries.
func (e *Engine) CumulativeROI(costs CostAssumptions, values ValueAssumptions, years int) (float64, error) {
	series, err := e.CumulativeSeries(costs, values, years)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1].CumulativeROI, nil
}

// ValueBreakdown returns the category amounts for a single year in display order.
func (e *Engine) ValueBreakdown(values ValueAssumptions, year int) ([]BreakdownEntry, error) {
	value, err := e.YearlyValue(values, year)
	if err != nil {
		return nil, err
	}
	return value.Breakdown.Entries(), nil
}

// YearlyCost evaluates Engine.YearlyCost with the default parameters.
func YearlyCost(costs CostAssumptions, year int) (float64, error) {
	return defaultEngine.YearlyCost(costs, year)
}

// YearlyValue evaluates Engine.YearlyValue with the default parameters.
func YearlyValue(values ValueAssumptions, year int) (YearValue, error) {
	return defaultEngine.YearlyValue(values, year)
}

// YearlyROI evaluates Engine.YearlyROI with the default parameters.
func YearlyROI(costs CostAssumptions, values ValueAssumptions, year int) (float64, error) {
	return defaultEngine.YearlyROI(costs, values, year)
}

// YearlySeries evaluates Engine.YearlySeries with the default parameters.
func YearlySeries(costs CostAssumptions, values ValueAssumptions, years int) ([]YearlyRecord, error) {
	return defaultEngine.YearlySeries(costs, values, years)
}

// CumulativeSeries evaluates Engine.CumulativeSeries with the default parameters.
func CumulativeSeries(costs CostAssumptions, values ValueAssumptions, years int) ([]CumulativeRecord, error) {
	return defaultEngine.CumulativeSeries(costs, values, years)
}

// CumulativeROI evaluates Engine.CumulativeROI with the default parameters.
func CumulativeROI(costs CostAssumptions, values ValueAssumptions, years int) (float64, error) {
	return defaultEngine.CumulativeROI(costs, values, years)
}

// ValueBreakdown evaluates Engine.ValueBreakdown with the default parameters.
func ValueBreakdown(values ValueAssumptions, year int) ([]BreakdownEntry, error) {
	return defaultEngine.ValueBreakdown(values, year)
}
