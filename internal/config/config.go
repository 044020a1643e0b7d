// Package config defines the data structures related to configuration and
// includes functions for loading and resolving the config.
package config

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/iwvelando/ai-roi-forecast/internal/catalog"
	"github.com/iwvelando/ai-roi-forecast/internal/projection"
	"github.com/iwvelando/ai-roi-forecast/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for ai-roi-forecast.
type Configuration struct {
	Logging    LoggingConfig         `yaml:"logging,omitempty"`
	Output     OutputConfig          `yaml:"output,omitempty"`
	Horizon    int                   `yaml:"horizon"`
	UseCase    string                `yaml:"useCase,omitempty"`
	Preset     string                `yaml:"preset,omitempty"`
	Costs      map[string]float64    `yaml:"costs,omitempty"`
	Values     map[string]float64    `yaml:"values,omitempty"`
	Parameters projection.Parameters `yaml:"parameters,omitempty"`
	Scenarios  []Scenario            `yaml:"scenarios,omitempty"`
	Store      StoreConfig           `yaml:"store,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, markdown, html
}

// StoreConfig selects where state snapshots are kept.
type StoreConfig struct {
	Backend       string `yaml:"backend,omitempty"` // memory, file, redis
	Path          string `yaml:"path,omitempty"`    // directory for the file backend
	RedisAddress  string `yaml:"redisAddress,omitempty"`
	RedisPassword string `yaml:"redisPassword,omitempty"`
	RedisDB       int    `yaml:"redisDB,omitempty"`
}

// Scenario is a named variation of the main assumptions. Its costs and values
// are applied on top of the resolved main assumptions.
type Scenario struct {
	Name      string             `yaml:"name"`
	Active    bool               `yaml:"active"`
	UseCase   string             `yaml:"useCase,omitempty"`
	Preset    string             `yaml:"preset,omitempty"`
	Costs     map[string]float64 `yaml:"costs,omitempty"`
	Values    map[string]float64 `yaml:"values,omitempty"`
	Optimizer *OptimizerConfig   `yaml:"optimizer,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("horizon", constants.DefaultHorizon)
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("useCase", "")
	v.SetDefault("preset", "")
	v.SetDefault("store.backend", "memory")
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with ROI_ override
// top-level settings, e.g. ROI_HORIZON or ROI_OUTPUT_FORMAT.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// Default returns a resolved configuration built only from catalog defaults.
func Default() *Configuration {
	conf := &Configuration{
		Horizon: constants.DefaultHorizon,
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
		Store:   StoreConfig{Backend: "memory"},
	}
	// Defaults alone always resolve.
	_ = conf.Resolve()
	return conf
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	if err := configuration.Resolve(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Resolve fills the main and scenario assumptions. Catalog defaults come
// first, then the named preset, then explicitly configured keys.
func (conf *Configuration) Resolve() error {
	if conf.Horizon < 1 {
		return fmt.Errorf("horizon must be at least 1 year, got %d", conf.Horizon)
	}
	if err := conf.EffectiveParameters().Validate(); err != nil {
		return err
	}

	costs, values, err := resolveAssumptions(catalog.DefaultCosts(), catalog.DefaultValues(), conf.Preset, conf.Costs, conf.Values)
	if err != nil {
		return err
	}
	conf.Costs, conf.Values = costs, values

	for i := range conf.Scenarios {
		scenario := &conf.Scenarios[i]
		if strings.TrimSpace(scenario.Name) == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
		costs, values, err := resolveAssumptions(conf.Costs, conf.Values, scenario.Preset, scenario.Costs, scenario.Values)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		scenario.Costs, scenario.Values = costs, values
		if scenario.UseCase == "" {
			scenario.UseCase = conf.UseCase
		}
		if scenario.Optimizer != nil {
			if err := scenario.Optimizer.Validate(conf.Horizon); err != nil {
				return fmt.Errorf("scenario %s: %w", scenario.Name, err)
			}
		}
	}
	return nil
}

func resolveAssumptions(baseCosts, baseValues map[string]float64, preset string, costs, values map[string]float64) (map[string]float64, map[string]float64, error) {
	resolvedCosts := catalog.Merge(baseCosts, nil)
	resolvedValues := catalog.Merge(baseValues, nil)
	if preset != "" {
		p, err := catalog.LookupPreset(preset)
		if err != nil {
			return nil, nil, err
		}
		resolvedCosts = catalog.Merge(resolvedCosts, p.Costs)
		resolvedValues = catalog.Merge(resolvedValues, p.Values)
	}
	return catalog.Merge(resolvedCosts, costs), catalog.Merge(resolvedValues, values), nil
}

// EffectiveParameters returns the default scaling parameters with any
// configured overrides applied.
func (conf *Configuration) EffectiveParameters() projection.Parameters {
	return projection.DefaultParameters().Overlay(conf.Parameters)
}

// Engine builds the projection engine for the configured parameters.
func (conf *Configuration) Engine() (*projection.Engine, error) {
	return projection.NewEngine(conf.EffectiveParameters())
}

// Assumptions returns the typed main assumptions.
func (conf *Configuration) Assumptions() (projection.CostAssumptions, projection.ValueAssumptions) {
	return projection.CostsFromMap(conf.Costs), projection.ValuesFromMap(conf.Values)
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Nothing reported here prevents a projection.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Horizon > constants.MaxRecommendedHorizon {
		warnings = append(warnings, fmt.Sprintf("Horizon of %d years exceeds the recommended maximum of %d", conf.Horizon, constants.MaxRecommendedHorizon))
	}
	if conf.UseCase != "" {
		if _, err := catalog.LookupUseCase(conf.UseCase); err != nil {
			warnings = append(warnings, fmt.Sprintf("Use case '%s' is not in the catalog", conf.UseCase))
		}
	}
	warnings = append(warnings, rangeWarnings("", conf.Costs, conf.Values)...)

	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is inactive and will be skipped", scenario.Name))
			continue
		}
		warnings = append(warnings, rangeWarnings(fmt.Sprintf("Scenario '%s': ", scenario.Name), scenario.Costs, scenario.Values)...)
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

func rangeWarnings(prefix string, maps ...map[string]float64) []string {
	var warnings []string
	for _, m := range maps {
		for _, key := range sortedKeys(m) {
			value := m[key]
			if math.IsNaN(value) || math.IsInf(value, 0) {
				warnings = append(warnings, fmt.Sprintf("%s%s is not a finite number", prefix, key))
				continue
			}
			if w := catalog.CheckRange(key, value); w != "" {
				warnings = append(warnings, prefix+w)
			}
		}
	}
	return warnings
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
