// Package projection converts cost and value assumptions for an AI use case
// into year-by-year and cumulative financial series.
//
// Every operation is a pure function of its inputs: nothing is cached and no
// state survives between calls, so an Engine may be shared freely across
// goroutines.
package projection

import (
	"math"
	"sort"
)

// Cost assumption keys as they appear in flat parameter mappings.
const (
	KeyImplementation = "implementation"
	KeyAPI            = "api"
	KeyInfrastructure = "infrastructure"
	KeyMaintenance    = "maintenance"
)

// Value assumption keys as they appear in flat parameter mappings.
const (
	KeyProductivity         = "productivity"
	KeyCostReduction        = "cost-reduction"
	KeyRevenueGrowth        = "revenue-growth"
	KeyCustomerSatisfaction = "customer-satisfaction"
	KeyEmployeesImpacted    = "employees-impacted"
	KeyHourlyCost           = "hourly-cost"
)

// CostKeys lists the required cost keys in display order.
var CostKeys = []string{KeyImplementation, KeyAPI, KeyInfrastructure, KeyMaintenance}

// ValueKeys lists the required value keys in display order.
var ValueKeys = []string{
	KeyProductivity,
	KeyCostReduction,
	KeyRevenueGrowth,
	KeyCustomerSatisfaction,
	KeyEmployeesImpacted,
	KeyHourlyCost,
}

// CostAssumptions holds the cost side of a projection.
type CostAssumptions struct {
	Implementation float64 // one-time, charged in year 1
	API            float64 // per month
	Infrastructure float64 // per month
	Maintenance    float64 // per year

	// Extra carries custom parameters defined by the caller. The engine ignores them.
	Extra map[string]float64
}

// ValueAssumptions holds the value side of a projection. Percentages are
// expressed as 0-100 and are not clamped.
type ValueAssumptions struct {
	Productivity         float64
	CostReduction        float64
	RevenueGrowth        float64
	CustomerSatisfaction float64
	EmployeesImpacted    float64
	HourlyCost           float64

	Extra map[string]float64
}

// CostsFromMap builds CostAssumptions from a flat key-value mapping. Missing
// required keys become NaN so that incomplete input stays visible in every
// derived number instead of being replaced by a default.
func CostsFromMap(m map[string]float64) CostAssumptions {
	return CostAssumptions{
		Implementation: lookup(m, KeyImplementation),
		API:            lookup(m, KeyAPI),
		Infrastructure: lookup(m, KeyInfrastructure),
		Maintenance:    lookup(m, KeyMaintenance),
		Extra:          extras(m, CostKeys),
	}
}

// ValuesFromMap builds ValueAssumptions from a flat key-value mapping. Missing
// required keys become NaN.
func ValuesFromMap(m map[string]float64) ValueAssumptions {
	return ValueAssumptions{
		Productivity:         lookup(m, KeyProductivity),
		CostReduction:        lookup(m, KeyCostReduction),
		RevenueGrowth:        lookup(m, KeyRevenueGrowth),
		CustomerSatisfaction: lookup(m, KeyCustomerSatisfaction),
		EmployeesImpacted:    lookup(m, KeyEmployeesImpacted),
		HourlyCost:           lookup(m, KeyHourlyCost),
		Extra:                extras(m, ValueKeys),
	}
}

// ToMap flattens the assumptions back into a key-value mapping, extras included.
func (c CostAssumptions) ToMap() map[string]float64 {
	m := make(map[string]float64, len(CostKeys)+len(c.Extra))
	for k, v := range c.Extra {
		m[k] = v
	}
	m[KeyImplementation] = c.Implementation
	m[KeyAPI] = c.API
	m[KeyInfrastructure] = c.Infrastructure
	m[KeyMaintenance] = c.Maintenance
	return m
}

// ToMap flattens the assumptions back into a key-value mapping, extras included.
func (v ValueAssumptions) ToMap() map[string]float64 {
	m := make(map[string]float64, len(ValueKeys)+len(v.Extra))
	for k, val := range v.Extra {
		m[k] = val
	}
	m[KeyProductivity] = v.Productivity
	m[KeyCostReduction] = v.CostReduction
	m[KeyRevenueGrowth] = v.RevenueGrowth
	m[KeyCustomerSatisfaction] = v.CustomerSatisfaction
	m[KeyEmployeesImpacted] = v.EmployeesImpacted
	m[KeyHourlyCost] = v.HourlyCost
	return m
}

// ExtraKeys returns the custom parameter keys in sorted order.
func (c CostAssumptions) ExtraKeys() []string {
	return sortedKeys(c.Extra)
}

// ExtraKeys returns the custom parameter keys in sorted order.
func (v ValueAssumptions) ExtraKeys() []string {
	return sortedKeys(v.Extra)
}

func lookup(m map[string]float64, key string) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return math.NaN()
}

func extras(m map[string]float64, required []string) map[string]float64 {
	var out map[string]float64
	for k, v := range m {
		if contains(required, k) {
			continue
		}
		if out == nil {
			out = make(map[string]float64)
		}
		out[k] = v
	}
	return out
}

func contains(list []string, key string) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Category names one of the four fixed value categories.
type Category string

// Value categories, in display order.
const (
	CategoryProductivity         Category = "Productivity"
	CategoryCostReduction        Category = "Cost Reduction"
	CategoryRevenueGrowth        Category = "Revenue Growth"
	CategoryCustomerSatisfaction Category = "Customer Satisfaction"
)

// Categories lists every value category in display order.
var Categories = []Category{
	CategoryProductivity,
	CategoryCostReduction,
	CategoryRevenueGrowth,
	CategoryCustomerSatisfaction,
}

// Breakdown holds one amount per value category. All four categories are
// always present.
type Breakdown struct {
	Productivity         float64
	CostReduction        float64
	RevenueGrowth        float64
	CustomerSatisfaction float64
}

// Get returns the amount for a category, or 0 for an unknown category.
func (b Breakdown) Get(c Category) float64 {
	switch c {
	case CategoryProductivity:
		return b.Productivity
	case CategoryCostReduction:
		return b.CostReduction
	case CategoryRevenueGrowth:
		return b.RevenueGrowth
	case CategoryCustomerSatisfaction:
		return b.CustomerSatisfaction
	}
	return 0
}

// Add returns the category-wise sum of b and o.
func (b Breakdown) Add(o Breakdown) Breakdown {
	return Breakdown{
		Productivity:         b.Productivity + o.Productivity,
		CostReduction:        b.CostReduction + o.CostReduction,
		RevenueGrowth:        b.RevenueGrowth + o.RevenueGrowth,
		CustomerSatisfaction: b.CustomerSatisfaction + o.CustomerSatisfaction,
	}
}

// Sum adds the four categories in display order.
func (b Breakdown) Sum() float64 {
	return b.Productivity + b.CostReduction + b.RevenueGrowth + b.CustomerSatisfaction
}

// Entries returns the breakdown as ordered name/amount pairs.
func (b Breakdown) Entries() []BreakdownEntry {
	entries := make([]BreakdownEntry, 0, len(Categories))
	for _, c := range Categories {
		entries = append(entries, BreakdownEntry{Name: c, Value: b.Get(c)})
	}
	return entries
}

// BreakdownEntry is a single category amount.
type BreakdownEntry struct {
	Name  Category
	Value float64
}

// YearValue is the value produced in one year, in total and per category.
type YearValue struct {
	Total     float64
	Breakdown Breakdown
}

// YearlyRecord is the projection for a single year.
type YearlyRecord struct {
	Year      int
	Cost      float64
	Value     float64
	NetValue  float64
	ROI       float64
	Breakdown Breakdown
}

// CumulativeRecord holds running totals through Year inclusive.
type CumulativeRecord struct {
	Year               int
	CumulativeCost     float64
	CumulativeValue    float64
	CumulativeNetValue float64
	CumulativeROI      float64
	Breakdown          Breakdown
}
