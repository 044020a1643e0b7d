package forecast

import (
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/ai-roi-forecast/internal/config"
	"github.com/iwvelando/ai-roi-forecast/internal/projection"
)

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-6*math.Max(math.Abs(a), math.Abs(b))
}

func TestGetForecast(t *testing.T) {
	conf, err := config.LoadConfigurationFromReader(strings.NewReader(`
horizon: 5
useCase: marketing
scenarios:
  - name: slow
    active: true
    costs:
      implementation: 100000
      api: 1000
      infrastructure: 500
      maintenance: 5000
    values:
      productivity: 10
      cost-reduction: 0
      revenue-growth: 0
      customer-satisfaction: 0
      employees-impacted: 10
      hourly-cost: 30
  - name: parked
    active: false
  - name: never
    active: true
    costs:
      implementation: 500000
    values:
      productivity: 5
      cost-reduction: 5
      revenue-growth: 1
      customer-satisfaction: 5
      employees-impacted: 10
      hourly-cost: 30
`))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	results, err := GetForecast(nil, *conf)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	expected := []struct {
		name        string
		paybackYear int
		reached     bool
	}{
		{name: BaselineName, paybackYear: 1, reached: true},
		{name: "slow", paybackYear: 3, reached: true},
		{name: "never", reached: false},
	}
	if len(results) != len(expected) {
		t.Fatalf("Expected %d forecasts, got %d", len(expected), len(results))
	}
	for i, want := range expected {
		got := results[i]
		if got.Name != want.name {
			t.Errorf("forecast %d: expected name %s, got %s", i, want.name, got.Name)
		}
		if got.Payback.Reached != want.reached || got.Payback.Year != want.paybackYear {
			t.Errorf("forecast %s: unexpected payback %+v", got.Name, got.Payback)
		}
		if len(got.Yearly) != 5 || len(got.Cumulative) != 5 {
			t.Errorf("forecast %s: expected 5 years, got %d/%d", got.Name, len(got.Yearly), len(got.Cumulative))
		}
		if got.UseCase != "marketing" {
			t.Errorf("forecast %s: expected inherited use case, got %q", got.Name, got.UseCase)
		}
	}

	if results[2].Payback.String() != "more than 5 years" {
		t.Errorf("Expected payback text 'more than 5 years', got %q", results[2].Payback.String())
	}
}

func TestProjectBaseline(t *testing.T) {
	conf := config.Default()
	f, err := Project(nil, projection.Default(), BaselineName, "", conf.Costs, conf.Values, 5)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	costs := []float64{107000, 60150, 63300, 66450, 69600}
	for i, want := range costs {
		if !almostEqual(f.Yearly[i].Cost, want) {
			t.Errorf("year %d: expected cost %v, got %v", i+1, want, f.Yearly[i].Cost)
		}
	}
	if !almostEqual(f.Yearly[0].Value, 2238000) {
		t.Errorf("Expected year 1 value 2238000, got %v", f.Yearly[0].Value)
	}
	if !almostEqual(f.CumulativeROI, 3869.167803547067) {
		t.Errorf("Expected cumulative ROI 3869.1678, got %v", f.CumulativeROI)
	}
	if f.CumulativeROI != f.Final().CumulativeROI {
		t.Errorf("CumulativeROI must match the final cumulative record")
	}

	wantBreakdown := []float64{936000, 702000, 500000, 100000}
	if len(f.Breakdown) != len(wantBreakdown) {
		t.Fatalf("Expected %d breakdown entries, got %d", len(wantBreakdown), len(f.Breakdown))
	}
	for i, want := range wantBreakdown {
		if !almostEqual(f.Breakdown[i].Value, want) {
			t.Errorf("%s: expected %v, got %v", f.Breakdown[i].Name, want, f.Breakdown[i].Value)
		}
	}
	if !almostEqual(f.BreakdownTotal(), 2238000) {
		t.Errorf("Expected breakdown total 2238000, got %v", f.BreakdownTotal())
	}
}

func TestProjectInvalidHorizon(t *testing.T) {
	conf := config.Default()
	_, err := Project(nil, projection.Default(), "zero", "", conf.Costs, conf.Values, 0)
	if err == nil {
		t.Fatal("expected error for zero horizon")
	}
}

func TestFinalEmpty(t *testing.T) {
	var f Forecast
	if f.Final().Year != 0 {
		t.Errorf("expected zero record for an empty forecast")
	}
	if f.BreakdownTotal() != 0 {
		t.Errorf("expected zero breakdown total for an empty forecast")
	}
}
