package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iwvelando/ai-roi-forecast/internal/catalog"
	"github.com/iwvelando/ai-roi-forecast/pkg/format"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const tabPadding = 2

func newCatalogCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List use cases, adjustable parameters and industry presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if asYAML {
				return yaml.NewEncoder(out).Encode(map[string]interface{}{
					"useCases": catalog.UseCases(),
					"costs":    catalog.CostParameters(),
					"values":   catalog.ValueParameters(),
					"presets":  catalog.Presets(),
				})
			}
			return writeCatalog(out)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalog as YAML")
	return cmd
}

func writeCatalog(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)

	_, _ = fmt.Fprintln(tw, "USE CASE\tNAME\tDESCRIPTION")
	for _, uc := range catalog.UseCases() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", uc.ID, uc.Name, uc.Description)
	}
	_, _ = fmt.Fprintln(tw)

	_, _ = fmt.Fprintln(tw, "PARAMETER\tCATEGORY\tDEFAULT\tRANGE\tUNIT")
	for _, p := range append(catalog.CostParameters(), catalog.ValueParameters()...) {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%v\t%v - %v\t%s\n", p.ID, p.Kind, p.Default, p.Min, p.Max, p.Unit)
	}
	_, _ = fmt.Fprintln(tw)

	_, _ = fmt.Fprintln(tw, "PRESET\tIMPLEMENTATION\tEMPLOYEES\tHOURLY COST")
	for _, p := range catalog.Presets() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", p.Name,
			format.Currency(p.Costs["implementation"]),
			p.Values["employees-impacted"],
			format.Currency(p.Values["hourly-cost"]))
	}
	return tw.Flush()
}
