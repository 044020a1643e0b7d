package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Small", 12.5, "$12.50"},
		{"Thousands", 107000, "$107,000.00"},
		{"Millions", 2238000, "$2,238,000.00"},
		{"Negative", -1234.56, "-$1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		expected string
	}{
		{"One decimal", 3869.167803547067, 1, "3869.2%"},
		{"Negative", -42.04, 1, "-42.0%"},
		{"No decimals", 41.82, 0, "42%"},
		{"Halfway rounds away from zero", 12.25, 1, "12.3%"},
		{"Negative halfway", -12.25, 1, "-12.3%"},
		{"Positive infinity", math.Inf(1), 1, "Infinity%"},
		{"Negative infinity", math.Inf(-1), 1, "-Infinity%"},
		{"NaN", math.NaN(), 1, "NaN%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.value, tt.decimals); got != tt.expected {
				t.Errorf("Percent(%v, %d) = %q, expected %q", tt.value, tt.decimals, got, tt.expected)
			}
		})
	}
}

func TestCompactCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{2238000, "$2.2M"},
		{-45000, "-$45.0K"},
		{1.5e9, "$1.5B"},
		{999, "$999.00"},
	}

	for _, tt := range tests {
		if got := CompactCurrency(tt.amount); got != tt.expected {
			t.Errorf("CompactCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		expected string
	}{
		{"Exact halfway", 0.125, 2, "0.13"},
		{"Negative exact halfway", -0.125, 2, "-0.13"},
		{"Stored below halfway", 2.675, 2, "2.67"},
		{"Stored above halfway", 1.005, 2, "1.00"},
		{"Whole number", 107000, 2, "107000.00"},
		{"Small fraction", 0.004, 2, "0.00"},
		{"Zero decimals halfway", 2.5, 0, "3"},
		{"Negative zero", math.Copysign(0, -1), 2, "0.00"},
		{"Large", 1e21, 2, "1e+21"},
		{"Positive infinity", math.Inf(1), 2, "Infinity"},
		{"NaN", math.NaN(), 2, "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fixed(tt.value, tt.decimals); got != tt.expected {
				t.Errorf("Fixed(%v, %d) = %q, expected %q", tt.value, tt.decimals, got, tt.expected)
			}
		})
	}
}
