// Package optimizer searches scenario assumptions for break-even values: the
// highest cost or the lowest value at which a scenario still pays back by a
// target year or still reaches a target cumulative ROI.
package optimizer

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/ai-roi-forecast/internal/catalog"
	"github.com/iwvelando/ai-roi-forecast/internal/config"
	"github.com/iwvelando/ai-roi-forecast/internal/forecast"
	"github.com/iwvelando/ai-roi-forecast/internal/logging"
	"github.com/iwvelando/ai-roi-forecast/internal/projection"
	"github.com/iwvelando/ai-roi-forecast/pkg/format"
	"github.com/iwvelando/ai-roi-forecast/pkg/optimization"
	"go.uber.org/zap"
)

type Runner struct {
	logger *zap.Logger
	conf   *config.Configuration
	engine *projection.Engine
}

type scenarioTarget struct {
	scenarioName string
	useCase      string
	costs        map[string]float64
	values       map[string]float64
	cfg          *config.OptimizerConfig
	isCost       bool
	original     float64
	minValue     float64
	maxValue     float64
}

type evaluation struct {
	value    float64
	achieved float64
	feasible bool
}

// Result summarizes optimizer searches keyed by scenario name.
type Result struct {
	Summaries map[string][]optimization.Summary
}

// Empty indicates whether any optimizer searches were run.
func (r Result) Empty() bool {
	return len(r.Summaries) == 0
}

// Apply attaches optimizer summaries to the provided forecast results.
func (r Result) Apply(forecasts []forecast.Forecast) {
	if len(r.Summaries) == 0 {
		return
	}
	for i := range forecasts {
		summaries, ok := r.Summaries[forecasts[i].Name]
		if !ok {
			continue
		}
		forecasts[i].Optimizations = append(forecasts[i].Optimizations, summaries...)
	}
}

// NewRunner constructs a Runner for the provided configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger = logging.OrNop(logger)
	engine, err := conf.Engine()
	if err != nil {
		return nil, err
	}
	return &Runner{logger: logger, conf: conf, engine: engine}, nil
}

// Run executes every optimizer directive of the active scenarios. The
// configuration is not modified.
func (r *Runner) Run() (*Result, error) {
	targets, err := r.collectTargets()
	if err != nil {
		return nil, err
	}

	summaries := make(map[string][]optimization.Summary)
	for _, target := range targets {
		summary, err := r.optimize(target)
		if err != nil {
			return nil, err
		}
		summaries[target.scenarioName] = append(summaries[target.scenarioName], summary)

		r.logger.Info("optimizer searched scenario parameter",
			zap.String("op", "optimizer.Run"),
			zap.String("scenario", target.scenarioName),
			zap.String("parameter", target.cfg.Parameter),
			zap.String("kind", target.cfg.Kind),
			zap.Float64("target", target.cfg.Target),
			zap.Float64("original", summary.Original),
			zap.Float64("value", summary.Value),
			zap.Float64("achieved", summary.Achieved),
			zap.Int("iterations", summary.Iterations),
			zap.Bool("converged", summary.Converged),
		)
	}
	return &Result{Summaries: summaries}, nil
}

func (r *Runner) collectTargets() ([]scenarioTarget, error) {
	var targets []scenarioTarget
	for i := range r.conf.Scenarios {
		scenario := &r.conf.Scenarios[i]
		if !scenario.Active || scenario.Optimizer == nil {
			continue
		}
		cfg := scenario.Optimizer
		if err := cfg.Validate(r.conf.Horizon); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		isCost := config.IsCostParameter(cfg.Parameter)
		source := scenario.Values
		if isCost {
			source = scenario.Costs
		}
		original, ok := source[cfg.Parameter]
		if !ok {
			original = math.NaN()
		}

		targets = append(targets, scenarioTarget{
			scenarioName: scenario.Name,
			useCase:      scenario.UseCase,
			costs:        scenario.Costs,
			values:       scenario.Values,
			cfg:          cfg,
			isCost:       isCost,
			original:     original,
			minValue:     *cfg.Min,
			maxValue:     *cfg.Max,
		})
	}
	return targets, nil
}

func (r *Runner) optimize(target scenarioTarget) (optimization.Summary, error) {
	cfg := target.cfg

	lowerEval, err := r.evaluate(target, target.minValue)
	if err != nil {
		return optimization.Summary{}, err
	}
	upperEval, err := r.evaluate(target, target.maxValue)
	if err != nil {
		return optimization.Summary{}, err
	}

	summary := optimization.Summary{
		Scenario:        target.scenarioName,
		Parameter:       cfg.Parameter,
		Kind:            cfg.Kind,
		Target:          cfg.Target,
		Original:        target.original,
		OriginalDisplay: formatParameterDisplay(cfg.Parameter, target.original),
	}

	if !lowerEval.feasible && !upperEval.feasible {
		summary.Value = target.original
		summary.ValueDisplay = summary.OriginalDisplay
		if originalEval, err := r.evaluate(target, target.original); err == nil {
			summary.Achieved = originalEval.achieved
		}
		summary.Notes = []string{fmt.Sprintf(
			"unable to reach %s within bounds %s to %s",
			describeTarget(cfg),
			formatParameterDisplay(cfg.Parameter, target.minValue),
			formatParameterDisplay(cfg.Parameter, target.maxValue),
		)}
		return summary, nil
	}

	if lowerEval.feasible && upperEval.feasible {
		// Costs can rise to the upper bound, values can fall to the lower one.
		best := lowerEval
		if target.isCost {
			best = upperEval
		}
		summary.Value = best.value
		summary.ValueDisplay = formatParameterDisplay(cfg.Parameter, best.value)
		summary.Achieved = best.achieved
		summary.Converged = true
		summary.Notes = []string{fmt.Sprintf("%s is reached across the whole range", describeTarget(cfg))}
		return summary, nil
	}

	iterations := 0
	var finalEval evaluation

	if lowerEval.feasible && !upperEval.feasible {
		finalEval = lowerEval
		lower := lowerEval.value
		upper := upperEval.value
		for iterations < cfg.MaxIterations && math.Abs(upper-lower) > cfg.Tolerance {
			mid := lower + (upper-lower)/2
			evalMid, err := r.evaluate(target, mid)
			if err != nil {
				return optimization.Summary{}, err
			}
			iterations++
			if evalMid.feasible {
				finalEval = evalMid
				if evalMid.value == lower {
					break
				}
				lower = evalMid.value
			} else {
				if evalMid.value == upper {
					break
				}
				upper = evalMid.value
			}
		}
	} else {
		finalEval = upperEval
		lower := lowerEval.value
		upper := upperEval.value
		for iterations < cfg.MaxIterations && math.Abs(upper-lower) > cfg.Tolerance {
			mid := lower + (upper-lower)/2
			evalMid, err := r.evaluate(target, mid)
			if err != nil {
				return optimization.Summary{}, err
			}
			iterations++
			if evalMid.feasible {
				finalEval = evalMid
				if evalMid.value == upper {
					break
				}
				upper = evalMid.value
			} else {
				if evalMid.value == lower {
					break
				}
				lower = evalMid.value
			}
		}
	}

	summary.Value = finalEval.value
	summary.ValueDisplay = formatParameterDisplay(cfg.Parameter, finalEval.value)
	summary.Achieved = finalEval.achieved
	summary.Iterations = iterations
	summary.Converged = finalEval.feasible
	return summary, nil
}

func (r *Runner) evaluate(target scenarioTarget, amount float64) (evaluation, error) {
	value := clampValue(snapParameterValue(target.cfg.Parameter, amount), target.minValue, target.maxValue)

	costs, values := target.costs, target.values
	override := map[string]float64{target.cfg.Parameter: value}
	if target.isCost {
		costs = catalog.Merge(costs, override)
	} else {
		values = catalog.Merge(values, override)
	}

	fc, err := forecast.Project(r.logger, r.engine, target.scenarioName, target.useCase, costs, values, r.conf.Horizon)
	if err != nil {
		return evaluation{}, fmt.Errorf("optimizer forecast evaluation failed: %w", err)
	}

	eval := evaluation{value: value}
	switch target.cfg.Kind {
	case config.OptimizerKindPayback:
		if fc.Payback.Reached {
			eval.achieved = float64(fc.Payback.Year)
			eval.feasible = fc.Payback.Year <= int(target.cfg.Target)
		}
	case config.OptimizerKindROI:
		eval.achieved = fc.CumulativeROI
		eval.feasible = fc.CumulativeROI >= target.cfg.Target
	}
	return eval, nil
}

func describeTarget(cfg *config.OptimizerConfig) string {
	if cfg.Kind == config.OptimizerKindROI {
		return "cumulative ROI of " + format.Percent(cfg.Target, 1)
	}
	if cfg.Target == 1 {
		return "payback within 1 year"
	}
	return fmt.Sprintf("payback within %.0f years", cfg.Target)
}

// snapParameterValue keeps head counts whole.
func snapParameterValue(parameter string, value float64) float64 {
	if parameter == projection.KeyEmployeesImpacted {
		return math.Round(value)
	}
	return value
}

func clampValue(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func formatParameterDisplay(parameter string, value float64) string {
	if math.IsNaN(value) {
		return "unset"
	}
	p, ok := catalog.LookupParameter(parameter)
	if !ok {
		return fmt.Sprintf("%.2f", value)
	}
	switch {
	case p.Unit == "%":
		return format.Percent(value, 1)
	case strings.HasPrefix(p.Unit, "$"):
		return format.Currency(value) + strings.TrimPrefix(p.Unit, "$")
	default:
		return fmt.Sprintf("%.0f", value)
	}
}
