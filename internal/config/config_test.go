package config

import (
	"math"
	"strings"
	"testing"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Test fixture",
			configPath: "testdata/config.yaml",
			wantError:  false,
		},
		{
			name:       "Example config",
			configPath: "../../config.yaml.example",
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationStructure(t *testing.T) {
	config, err := LoadConfiguration("testdata/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if config.Logging.Level != "debug" || config.Logging.Format != "console" {
		t.Errorf("unexpected logging config %+v", config.Logging)
	}
	if config.Output.Format != "csv" {
		t.Errorf("Expected output format csv, got %s", config.Output.Format)
	}
	if config.Horizon != 5 {
		t.Errorf("Expected horizon 5, got %d", config.Horizon)
	}
	if config.UseCase != "customer-support" {
		t.Errorf("Expected use case customer-support, got %s", config.UseCase)
	}
	if config.Costs["training"] != 8000 {
		t.Errorf("Expected custom cost parameter to be kept, got %v", config.Costs)
	}
	if config.Values["cost-reduction"] != 15 {
		t.Errorf("Expected cost-reduction 15, got %v", config.Values["cost-reduction"])
	}

	expectedScenarios := []string{"finance preset", "lean rollout", "shelved"}
	if len(config.Scenarios) != len(expectedScenarios) {
		t.Fatalf("Expected %d scenarios, got %d", len(expectedScenarios), len(config.Scenarios))
	}
	for i, expectedName := range expectedScenarios {
		if config.Scenarios[i].Name != expectedName {
			t.Errorf("Expected scenario name %s, got %s", expectedName, config.Scenarios[i].Name)
		}
	}
	if config.Scenarios[2].Active {
		t.Errorf("Expected scenario shelved to be inactive")
	}
}

func TestResolveLayering(t *testing.T) {
	config, err := LoadConfiguration("testdata/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	finance := config.Scenarios[0]
	if finance.Costs["implementation"] != 120000 {
		t.Errorf("Expected preset implementation cost 120000, got %v", finance.Costs["implementation"])
	}
	if finance.Values["hourly-cost"] != 95 {
		t.Errorf("Expected preset hourly cost 95, got %v", finance.Values["hourly-cost"])
	}
	if finance.Costs["training"] != 8000 {
		t.Errorf("Expected scenario to inherit custom parameters, got %v", finance.Costs)
	}
	if finance.UseCase != "customer-support" {
		t.Errorf("Expected scenario to inherit use case, got %q", finance.UseCase)
	}

	lean := config.Scenarios[1]
	if lean.Costs["implementation"] != 20000 {
		t.Errorf("Expected override 20000, got %v", lean.Costs["implementation"])
	}
	if lean.Costs["api"] != 2000 {
		t.Errorf("Expected inherited api cost 2000, got %v", lean.Costs["api"])
	}
	if lean.Values["employees-impacted"] != 20 {
		t.Errorf("Expected override 20, got %v", lean.Values["employees-impacted"])
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantError bool
		check     func(t *testing.T, c *Configuration)
	}{
		{
			name: "Empty document uses catalog defaults",
			yaml: "",
			check: func(t *testing.T, c *Configuration) {
				if c.Horizon != 5 {
					t.Errorf("Expected default horizon 5, got %d", c.Horizon)
				}
				if c.Output.Format != "pretty" {
					t.Errorf("Expected default output pretty, got %s", c.Output.Format)
				}
				if c.Costs["implementation"] != 50000 || c.Values["hourly-cost"] != 45 {
					t.Errorf("Expected catalog defaults, got %v %v", c.Costs, c.Values)
				}
			},
		},
		{
			name: "Preset then explicit keys",
			yaml: "preset: manufacturing\ncosts:\n  api: 100\n",
			check: func(t *testing.T, c *Configuration) {
				if c.Costs["implementation"] != 85000 {
					t.Errorf("Expected preset implementation 85000, got %v", c.Costs["implementation"])
				}
				if c.Costs["api"] != 100 {
					t.Errorf("Expected explicit api 100, got %v", c.Costs["api"])
				}
			},
		},
		{
			name: "Parameter overrides",
			yaml: "parameters:\n  valueGrowthRate: 0.2\n",
			check: func(t *testing.T, c *Configuration) {
				p := c.EffectiveParameters()
				if p.ValueGrowthRate != 0.2 {
					t.Errorf("Expected value growth 0.2, got %v", p.ValueGrowthRate)
				}
				if p.APIGrowthRate != 0.10 {
					t.Errorf("Expected default API growth, got %v", p.APIGrowthRate)
				}
			},
		},
		{
			name:      "Unknown preset",
			yaml:      "preset: retail\n",
			wantError: true,
		},
		{
			name:      "Invalid horizon",
			yaml:      "horizon: 0\n",
			wantError: true,
		},
		{
			name:      "Negative parameter",
			yaml:      "parameters:\n  hoursPerYear: -1\n",
			wantError: true,
		},
		{
			name:      "Scenario without name",
			yaml:      "scenarios:\n  - active: true\n",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadConfigurationFromReader(strings.NewReader(tt.yaml))
			if tt.wantError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfigurationFromReader() error = %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("ROI_HORIZON", "7")
	t.Setenv("ROI_OUTPUT_FORMAT", "markdown")

	c, err := LoadConfigurationFromReader(strings.NewReader("horizon: 5\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if c.Horizon != 7 {
		t.Errorf("Expected env horizon 7, got %d", c.Horizon)
	}
	if c.Output.Format != "markdown" {
		t.Errorf("Expected env output format markdown, got %s", c.Output.Format)
	}
}

func TestValidateConfiguration(t *testing.T) {
	config, err := LoadConfiguration("testdata/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	warnings := config.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "Scenario 'finance preset': API / Model Usage") || !strings.Contains(warnings[0], "outside the expected range") {
		t.Errorf("Expected range warning for finance preset scenario, got %q", warnings[0])
	}
	if !strings.Contains(warnings[1], "shelved") {
		t.Errorf("Expected inactive scenario warning, got %q", warnings[1])
	}

	config.Horizon = 12
	config.UseCase = "legal"
	config.Values["productivity"] = math.NaN()
	config.Scenarios = nil
	warnings = config.ValidateConfiguration()
	if len(warnings) != 3 {
		t.Fatalf("Expected 3 warnings, got %d: %v", len(warnings), warnings)
	}

	clean := Default()
	if warnings := clean.ValidateConfiguration(); warnings != nil {
		t.Errorf("Expected no warnings for defaults, got %v", warnings)
	}
}

func TestAssumptionsAndEngine(t *testing.T) {
	c := Default()
	costs, values := c.Assumptions()
	if costs.Implementation != 50000 || values.EmployeesImpacted != 50 {
		t.Errorf("unexpected assumptions %+v %+v", costs, values)
	}

	engine, err := c.Engine()
	if err != nil {
		t.Fatalf("Engine() error = %v", err)
	}
	cost, err := engine.YearlyCost(costs, 1)
	if err != nil {
		t.Fatalf("YearlyCost() error = %v", err)
	}
	if cost != 107000 {
		t.Errorf("Expected year 1 cost 107000, got %v", cost)
	}
}
