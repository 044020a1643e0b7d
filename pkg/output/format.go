// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/ai-roi-forecast/internal/forecast"
	"github.com/iwvelando/ai-roi-forecast/internal/projection"
	"github.com/iwvelando/ai-roi-forecast/pkg/format"
	"github.com/iwvelando/ai-roi-forecast/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CsvHeader lists the columns of the yearly export.
var CsvHeader = []string{"Year", "Cost", "Value", "Net Value", "ROI", "Productivity", "Cost Reduction", "Revenue Growth", "Customer Satisfaction"}

// FormatROI renders an ROI percentage with one decimal.
func FormatROI(roi float64) string {
	return format.Percent(roi, 1)
}

func amount(v float64) string {
	return format.Fixed(v, 2)
}

func csvRow(r projection.YearlyRecord) []string {
	return []string{
		strconv.Itoa(r.Year),
		amount(r.Cost),
		amount(r.Value),
		amount(r.NetValue),
		FormatROI(r.ROI),
		amount(r.Breakdown.Productivity),
		amount(r.Breakdown.CostReduction),
		amount(r.Breakdown.RevenueGrowth),
		amount(r.Breakdown.CustomerSatisfaction),
	}
}

// CsvString returns the yearly series as comma-separated values, one line per
// year after the header and no trailing newline.
func CsvString(yearly []projection.YearlyRecord) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(CsvHeader)
	for _, r := range yearly {
		_ = w.Write(csvRow(r))
	}
	w.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}

// CsvFormat writes the yearly series of every forecast. With more than one
// forecast a leading Scenario column tells them apart.
func CsvFormat(out io.Writer, results []forecast.Forecast) error {
	if len(results) == 1 {
		_, err := fmt.Fprintln(out, CsvString(results[0].Yearly))
		return err
	}

	w := csv.NewWriter(out)
	if err := w.Write(append([]string{"Scenario"}, CsvHeader...)); err != nil {
		return err
	}
	for _, result := range results {
		for _, r := range result.Yearly {
			if err := w.Write(append([]string{result.Name}, csvRow(r)...)); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(out io.Writer, results []forecast.Forecast) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		_, _ = fmt.Fprintf(out, "--- Results for scenario %s ---\n", result.Name)
		if result.UseCase != "" {
			_, _ = fmt.Fprintf(out, "Use case: %s\n", result.UseCase)
		}
		_, _ = fmt.Fprintf(out, "Year | Cost | Value | Net Value | ROI\n")
		_, _ = fmt.Fprintf(out, "____ | ____ | _____ | _________ | ___\n")
		for _, r := range result.Yearly {
			_, _ = p.Fprintf(out, "%d | $%.2f | $%.2f | $%.2f | %s\n", r.Year, r.Cost, r.Value, r.NetValue, FormatROI(r.ROI))
		}

		final := result.Final()
		_, _ = p.Fprintf(out, "Total cost: $%.2f\n", final.CumulativeCost)
		_, _ = p.Fprintf(out, "Total value: $%.2f\n", final.CumulativeValue)
		_, _ = p.Fprintf(out, "Net value: $%.2f\n", final.CumulativeNetValue)
		_, _ = fmt.Fprintf(out, "%d-year ROI: %s\n", len(result.Cumulative), FormatROI(result.CumulativeROI))
		_, _ = fmt.Fprintf(out, "Payback period: %s\n", result.Payback)

		total := result.BreakdownTotal()
		_, _ = fmt.Fprintf(out, "Year 1 value breakdown:\n")
		for _, entry := range result.Breakdown {
			share := mathutil.CalculatePercentage(entry.Value, total)
			_, _ = p.Fprintf(out, "  %s: $%.2f (%s)\n", entry.Name, entry.Value, format.Percent(share, 0))
		}

		for _, opt := range result.Optimizations {
			status := "converged"
			if !opt.Converged {
				status = "not converged"
			}
			_, _ = fmt.Fprintf(out, "Break-even %s: %s (configured %s, %s after %d iterations)\n",
				opt.Parameter, opt.ValueDisplay, opt.OriginalDisplay, status, opt.Iterations)
			for _, note := range opt.Notes {
				_, _ = fmt.Fprintf(out, "  note: %s\n", note)
			}
		}

		if i < len(results)-1 {
			_, _ = fmt.Fprintf(out, "\n")
		}
	}
}
