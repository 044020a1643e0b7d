package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/ai-roi-forecast/internal/config"
	"github.com/iwvelando/ai-roi-forecast/internal/forecast"
	"github.com/iwvelando/ai-roi-forecast/internal/scenario"
	"github.com/iwvelando/ai-roi-forecast/internal/server"
	"github.com/iwvelando/ai-roi-forecast/pkg/output"
	"github.com/iwvelando/ai-roi-forecast/pkg/report"
	"github.com/iwvelando/ai-roi-forecast/pkg/testutil"
	"go.uber.org/zap"
)

const testConfig = "../test_config.yaml"

func loadForecast(t *testing.T, path string) []forecast.Forecast {
	t.Helper()
	conf, err := config.LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	results, err := forecast.GetForecast(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("GetForecast failed: %v", err)
	}
	return results
}

// TestEndToEndProjection runs the configured scenarios through every output.
func TestEndToEndProjection(t *testing.T) {
	results := loadForecast(t, testConfig)

	if len(results) != 3 {
		t.Fatalf("Expected baseline plus 2 active scenarios, got %d", len(results))
	}

	tests := []struct {
		name      string
		useCase   string
		year1Cost float64
		year1Val  float64
	}{
		{name: "Baseline", useCase: "data-analysis", year1Cost: 107000, year1Val: 2238000},
		// 75000 + 3000*12 + 2000*12 + 20000
		{name: "healthcare benchmark", useCase: "data-analysis", year1Cost: 155000, year1Val: 7737600},
		// Value is linear in employees impacted: 2238000 * 15 / 50.
		{name: "pilot team", useCase: "data-analysis", year1Cost: 77000, year1Val: 671400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.FindScenario(results, tt.name)
			if result == nil {
				t.Fatalf("scenario %s not found", tt.name)
			}
			if result.UseCase != tt.useCase {
				t.Errorf("Expected use case %s, got %s", tt.useCase, result.UseCase)
			}
			if len(result.Yearly) != 5 {
				t.Fatalf("Expected 5 yearly records, got %d", len(result.Yearly))
			}
			if !testutil.CurrencyEqual(result.Yearly[0].Cost, tt.year1Cost) {
				t.Errorf("Expected year 1 cost %v, got %v", tt.year1Cost, result.Yearly[0].Cost)
			}
			if !testutil.AlmostEqual(result.Yearly[0].Value, tt.year1Val) {
				t.Errorf("Expected year 1 value %v, got %v", tt.year1Val, result.Yearly[0].Value)
			}
			if !result.Payback.Reached || result.Payback.Year != 1 {
				t.Errorf("Expected payback in year 1, got %+v", result.Payback)
			}
			final := result.Final()
			if !testutil.AlmostEqual(result.CumulativeROI, final.CumulativeROI) {
				t.Errorf("Cumulative ROI %v does not match final record %v", result.CumulativeROI, final.CumulativeROI)
			}
		})
	}

	var csvOut bytes.Buffer
	if err := output.CsvFormat(&csvOut, results); err != nil {
		t.Fatalf("CsvFormat failed: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(csvOut.String()), "\n"); len(lines) != 1+3*5 {
		t.Errorf("Expected 16 CSV lines, got %d", len(lines))
	}

	html, err := report.HTML(report.Report{Forecast: results[1]})
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("Expected rendered tables in HTML report")
	}
}

// TestExampleConfiguration keeps the shipped example loadable.
func TestExampleConfiguration(t *testing.T) {
	results := loadForecast(t, "../../config.yaml.example")
	if len(results) != 3 {
		t.Fatalf("Expected 3 results from the example configuration, got %d", len(results))
	}
	if results[0].Name != forecast.BaselineName {
		t.Errorf("Expected baseline first, got %s", results[0].Name)
	}
}

// TestStatePersistence saves scenarios through a file store and restores
// them into a fresh manager.
func TestStatePersistence(t *testing.T) {
	ctx := context.Background()
	store, err := scenario.OpenStore(config.StoreConfig{Backend: "file", Path: t.TempDir()})
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}

	first := scenario.NewManager(zap.NewNop(), store, scenario.DefaultSnapshot())
	if _, err := first.Add("expansion"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := first.Select(0); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	first.UpdateValues(map[string]float64{"employees-impacted": 500})
	if err := first.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := scenario.NewManager(zap.NewNop(), store, scenario.DefaultSnapshot())
	loaded, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded {
		t.Fatalf("Expected saved state to be found")
	}

	state := second.State()
	if len(state.Scenarios) != 1 || state.Active != 0 {
		t.Fatalf("Unexpected restored state %+v", state)
	}
	if got := second.Current().Values["employees-impacted"]; got != 500 {
		t.Errorf("Expected restored employees-impacted 500, got %v", got)
	}
	if got := second.Current().Costs["implementation"]; got != 50000 {
		t.Errorf("Expected cloned implementation cost 50000, got %v", got)
	}
}

// TestServerRoundTrip serves the API over a real listener.
func TestServerRoundTrip(t *testing.T) {
	cfg, err := server.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	srv := server.New(zap.NewNop(), cfg, nil, "integration")
	defer func() { _ = srv.Shutdown(context.Background()) }()

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	body := strings.NewReader(`{"preset": "Manufacturing", "years": 3}`)
	resp, err := http.Post(ts.URL+"/api/projection", "application/json", body)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var decoded struct {
		Years  int `json:"years"`
		Yearly []struct {
			Cost float64 `json:"cost"`
		} `json:"yearly"`
		KPIs struct {
			Payback string `json:"payback"`
		} `json:"kpis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Years != 3 || len(decoded.Yearly) != 3 {
		t.Fatalf("Expected 3 years, got %d", decoded.Years)
	}
	// 85000 + 2500*12 + 4000*12 + 25000
	if decoded.Yearly[0].Cost != 188000 {
		t.Errorf("Expected year 1 cost 188000, got %v", decoded.Yearly[0].Cost)
	}
	if decoded.KPIs.Payback != "1 Year" {
		t.Errorf("Expected payback 1 Year, got %s", decoded.KPIs.Payback)
	}
}
