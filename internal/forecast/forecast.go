// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts.
package forecast

import (
	"fmt"
	"runtime"

	"github.com/iwvelando/ai-roi-forecast/internal/config"
	"github.com/iwvelando/ai-roi-forecast/internal/logging"
	"github.com/iwvelando/ai-roi-forecast/internal/projection"
	"github.com/iwvelando/ai-roi-forecast/pkg/optimization"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BaselineName names the forecast of the main assumption set.
const BaselineName = "Baseline"

// Forecast holds all information related to a specific forecast.
type Forecast struct {
	Name          string
	UseCase       string
	Costs         map[string]float64
	Values        map[string]float64
	Yearly        []projection.YearlyRecord
	Cumulative    []projection.CumulativeRecord
	Breakdown     []projection.BreakdownEntry // first year
	CumulativeROI float64
	Payback       projection.Payback
	Optimizations []optimization.Summary
}

// Final returns the last cumulative record.
func (f Forecast) Final() projection.CumulativeRecord {
	if len(f.Cumulative) == 0 {
		return projection.CumulativeRecord{}
	}
	return f.Cumulative[len(f.Cumulative)-1]
}

// BreakdownTotal returns the first-year value summed over its categories.
func (f Forecast) BreakdownTotal() float64 {
	if len(f.Yearly) == 0 {
		return 0
	}
	return f.Yearly[0].Breakdown.Sum()
}

// Project computes a single forecast over years.
func Project(logger *zap.Logger, engine *projection.Engine, name, useCase string, costs, values map[string]float64, years int) (Forecast, error) {
	logger = logging.OrNop(logger)

	c := projection.CostsFromMap(costs)
	v := projection.ValuesFromMap(values)
	if extra := append(c.ExtraKeys(), v.ExtraKeys()...); len(extra) > 0 {
		logger.Debug("custom parameters are recorded but not projected",
			zap.String("op", "forecast.Project"),
			zap.String("forecast", name),
			zap.Strings("keys", extra),
		)
	}

	yearly, err := engine.YearlySeries(c, v, years)
	if err != nil {
		return Forecast{}, fmt.Errorf("forecast %s: %w", name, err)
	}
	cumulative, err := engine.CumulativeSeries(c, v, years)
	if err != nil {
		return Forecast{}, fmt.Errorf("forecast %s: %w", name, err)
	}
	breakdown, err := engine.ValueBreakdown(v, 1)
	if err != nil {
		return Forecast{}, fmt.Errorf("forecast %s: %w", name, err)
	}

	result := Forecast{
		Name:       name,
		UseCase:    useCase,
		Costs:      costs,
		Values:     values,
		Yearly:     yearly,
		Cumulative: cumulative,
		Breakdown:  breakdown,
		Payback:    projection.PaybackPeriod(cumulative),
	}
	result.CumulativeROI = result.Final().CumulativeROI

	logger.Debug("forecast computed",
		zap.String("op", "forecast.Project"),
		zap.String("forecast", name),
		zap.Int("years", years),
		zap.Float64("cumulativeROI", result.CumulativeROI),
		zap.String("payback", result.Payback.String()),
	)
	return result, nil
}

// GetForecast processes the Forecasts for the main assumptions and every
// active Scenario. Results follow configuration order with the baseline first.
func GetForecast(logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	logger = logging.OrNop(logger)

	engine, err := conf.Engine()
	if err != nil {
		return nil, err
	}

	type job struct {
		name, useCase string
		costs, values map[string]float64
	}
	jobs := []job{{name: BaselineName, useCase: conf.UseCase, costs: conf.Costs, values: conf.Values}}
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetForecast"),
			)
			continue
		}
		jobs = append(jobs, job{name: scenario.Name, useCase: scenario.UseCase, costs: scenario.Costs, values: scenario.Values})
	}

	results := make([]Forecast, len(jobs))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, j := range jobs {
		g.Go(func() error {
			f, err := Project(logger, engine, j.name, j.useCase, j.costs, j.values, conf.Horizon)
			if err != nil {
				return err
			}
			results[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
