// Package report renders a projection as a downloadable Markdown or HTML
// document.
package report

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/iwvelando/ai-roi-forecast/internal/catalog"
	"github.com/iwvelando/ai-roi-forecast/internal/forecast"
	"github.com/iwvelando/ai-roi-forecast/pkg/format"
	"github.com/iwvelando/ai-roi-forecast/pkg/mathutil"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultTitle heads a report without an explicit title.
const DefaultTitle = "AI Value Analysis"

// Report is everything a rendered document shows.
type Report struct {
	Title       string
	Forecast    forecast.Forecast
	GeneratedAt time.Time
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func (r Report) title() string {
	if strings.TrimSpace(r.Title) == "" {
		return DefaultTitle
	}
	return r.Title
}

// Markdown renders the report as GitHub-flavoured Markdown.
func Markdown(r Report) string {
	f := r.Forecast
	final := f.Final()
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(r.title()))
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "_Generated %s_\n\n", r.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
	}
	fmt.Fprintf(&b, "**Scenario:** %s\n\n", escape(f.Name))
	if uc, err := catalog.LookupUseCase(f.UseCase); err == nil {
		fmt.Fprintf(&b, "**Use case:** %s. %s\n\n", uc.Name, uc.Description)
	} else if f.UseCase != "" {
		fmt.Fprintf(&b, "**Use case:** %s\n\n", escape(f.UseCase))
	}

	b.WriteString("## Key figures\n\n")
	fmt.Fprintf(&b, "- **%d-year ROI:** %s\n", len(f.Cumulative), format.Percent(f.CumulativeROI, 1))
	fmt.Fprintf(&b, "- **Total cost:** %s\n", format.CompactCurrency(final.CumulativeCost))
	fmt.Fprintf(&b, "- **Total value:** %s\n", format.CompactCurrency(final.CumulativeValue))
	fmt.Fprintf(&b, "- **Net value:** %s\n", format.CompactCurrency(final.CumulativeNetValue))
	fmt.Fprintf(&b, "- **Payback period:** %s\n\n", f.Payback)

	b.WriteString("## Assumptions\n\n")
	b.WriteString("| Parameter | Value |\n|---|---:|\n")
	writeAssumptions(&b, catalog.CostParameters(), f.Costs)
	writeAssumptions(&b, catalog.ValueParameters(), f.Values)
	b.WriteString("\n")

	b.WriteString("## Yearly projection\n\n")
	b.WriteString("| Year | Cost | Value | Net Value | ROI |\n|---:|---:|---:|---:|---:|\n")
	for _, y := range f.Yearly {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", y.Year,
			format.Currency(y.Cost), format.Currency(y.Value), format.Currency(y.NetValue), format.Percent(y.ROI, 1))
	}
	b.WriteString("\n")

	b.WriteString("## Cumulative projection\n\n")
	b.WriteString("| Year | Cost | Value | Net Value | ROI |\n|---:|---:|---:|---:|---:|\n")
	for _, c := range f.Cumulative {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", c.Year,
			format.Currency(c.CumulativeCost), format.Currency(c.CumulativeValue),
			format.Currency(c.CumulativeNetValue), format.Percent(c.CumulativeROI, 1))
	}
	b.WriteString("\n")

	b.WriteString("## Year 1 value breakdown\n\n")
	b.WriteString("| Category | Value | Share |\n|---|---:|---:|\n")
	total := f.BreakdownTotal()
	for _, e := range f.Breakdown {
		share := mathutil.Round(mathutil.CalculatePercentage(e.Value, total))
		fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Name, format.Currency(e.Value), format.Percent(share, 0))
	}

	return b.String()
}

func writeAssumptions(b *strings.Builder, params []catalog.Parameter, values map[string]float64) {
	for _, p := range params {
		v, ok := values[p.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "| %s | %s |\n", p.Name, withUnit(v, p.Unit))
	}
	for _, key := range customKeys(params, values) {
		fmt.Fprintf(b, "| %s | %v |\n", escape(key), values[key])
	}
}

func withUnit(v float64, unit string) string {
	switch unit {
	case "$":
		return format.Currency(v)
	case "$/month", "$/year", "$/hour":
		return format.Currency(v) + strings.TrimPrefix(unit, "$")
	case "%":
		return format.Percent(v, 0)
	}
	return fmt.Sprintf("%v", v)
}

func customKeys(params []catalog.Parameter, values map[string]float64) []string {
	known := make(map[string]bool, len(params))
	for _, p := range params {
		known[p.ID] = true
	}
	var keys []string
	for k := range values {
		if _, builtIn := catalog.LookupParameter(k); !known[k] && !builtIn {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// HTML renders the report as a standalone HTML document.
func HTML(r Report) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(r)), &body); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&doc, "<title>%s</title>\n", html.EscapeString(r.title()))
	doc.WriteString("</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.String(), nil
}
