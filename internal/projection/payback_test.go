package projection

import "testing"

func TestPaybackPeriod(t *testing.T) {
	tests := []struct {
		name    string
		costs   map[string]float64
		values  map[string]float64
		year    int
		reached bool
		label   string
	}{
		{
			name:    "Default assumptions pay back in the first year",
			costs:   map[string]float64{"implementation": 50000, "api": 2000, "infrastructure": 1500, "maintenance": 15000},
			values:  map[string]float64{"productivity": 20, "cost-reduction": 15, "revenue-growth": 10, "customer-satisfaction": 25, "employees-impacted": 50, "hourly-cost": 45},
			year:    1,
			reached: true,
			label:   "1 Year",
		},
		{
			name:    "Heavy implementation pays back in year three",
			costs:   map[string]float64{"implementation": 100000, "api": 1000, "infrastructure": 500, "maintenance": 5000},
			values:  map[string]float64{"productivity": 10, "cost-reduction": 0, "revenue-growth": 0, "customer-satisfaction": 0, "employees-impacted": 10, "hourly-cost": 30},
			year:    3,
			reached: true,
			label:   "3 Years",
		},
		{
			name:    "No payback within the horizon",
			costs:   map[string]float64{"implementation": 500000, "api": 2000, "infrastructure": 1500, "maintenance": 15000},
			values:  map[string]float64{"productivity": 5, "cost-reduction": 5, "revenue-growth": 1, "customer-satisfaction": 5, "employees-impacted": 10, "hourly-cost": 30},
			year:    0,
			reached: false,
			label:   "more than 5 years",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cumulative, err := CumulativeSeries(CostsFromMap(tt.costs), ValuesFromMap(tt.values), 5)
			if err != nil {
				t.Fatalf("CumulativeSeries() error = %v", err)
			}

			payback := PaybackPeriod(cumulative)
			if payback.Year != tt.year || payback.Reached != tt.reached {
				t.Errorf("PaybackPeriod() = %+v, expected year %d reached %v", payback, tt.year, tt.reached)
			}
			if payback.Horizon != 5 {
				t.Errorf("expected horizon 5, got %d", payback.Horizon)
			}
			if payback.String() != tt.label {
				t.Errorf("String() = %q, expected %q", payback.String(), tt.label)
			}

			again, _ := CumulativeSeries(CostsFromMap(tt.costs), ValuesFromMap(tt.values), 5)
			if PaybackPeriod(again) != payback {
				t.Errorf("payback is not reproducible")
			}
		})
	}
}

func TestPaybackPeriodRequiresStrictlyPositiveNetValue(t *testing.T) {
	cumulative := []CumulativeRecord{
		{Year: 1, CumulativeNetValue: -10},
		{Year: 2, CumulativeNetValue: 0},
		{Year: 3, CumulativeNetValue: 0.5},
	}
	if got := PaybackPeriod(cumulative); got.Year != 3 {
		t.Errorf("expected payback year 3, got %+v", got)
	}

	if got := PaybackPeriod(nil); got.Reached || got.Horizon != 0 {
		t.Errorf("expected empty series to never pay back, got %+v", got)
	}
}
