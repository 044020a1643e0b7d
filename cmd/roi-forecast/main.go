package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/ai-roi-forecast/internal/config"
	"github.com/iwvelando/ai-roi-forecast/internal/forecast"
	"github.com/iwvelando/ai-roi-forecast/internal/logging"
	"github.com/iwvelando/ai-roi-forecast/internal/optimizer"
	"github.com/iwvelando/ai-roi-forecast/pkg/constants"
	"github.com/iwvelando/ai-roi-forecast/pkg/output"
	"github.com/iwvelando/ai-roi-forecast/pkg/report"
	"github.com/iwvelando/ai-roi-forecast/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "roi-forecast",
		Short:        "Project the costs, value and ROI of an AI implementation",
		Version:      ver,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// A missing .env file is normal; ROI_ variables may come from the environment.
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().String("config", constants.DefaultConfigFile, "path to configuration file")
	cmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(newProjectCmd(), newValidateCmd(), newCatalogCmd(), newServeCmd(ver))
	return cmd
}

// loadConfig loads the configuration named by --config and builds the
// logger it describes.
func loadConfig(cmd *cobra.Command) (*config.Configuration, *zap.Logger, error) {
	configLocation, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")

	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}

	logger, err := logging.New(conf.Logging, logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return conf, logger, nil
}

func logWarnings(logger *zap.Logger, conf *config.Configuration) {
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
}

func newProjectCmd() *cobra.Command {
	var outputFormatFlag, title string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Compute the projection for the configured assumptions and scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			// CLI override takes precedence over config.
			outputFormat := conf.Output.Format
			if outputFormatFlag != "" {
				outputFormat = outputFormatFlag
			}
			if outputFormat == "" {
				outputFormat = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			logWarnings(logger, conf)

			results, err := forecast.GetForecast(logger, *conf)
			if err != nil {
				logger.Error("failed to compute forecast",
					zap.String("op", "main"),
					zap.Error(err),
				)
				return err
			}

			runner, err := optimizer.NewRunner(logger, conf)
			if err != nil {
				return err
			}
			optimized, err := runner.Run()
			if err != nil {
				logger.Error("failed to run optimizer",
					zap.String("op", "main"),
					zap.Error(err),
				)
				return err
			}
			optimized.Apply(results)

			return writeResults(cmd.OutOrStdout(), outputFormat, title, results)
		},
	}

	cmd.Flags().StringVar(&outputFormatFlag, "output-format", "", "type of output override: pretty, csv, markdown, html")
	cmd.Flags().StringVar(&title, "title", "", "report title for markdown and html output")
	return cmd
}

func writeResults(out io.Writer, outputFormat, title string, results []forecast.Forecast) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(out, results)
	case constants.OutputFormatCSV:
		return output.CsvFormat(out, results)
	case constants.OutputFormatMarkdown, constants.OutputFormatHTML:
		for i, result := range results {
			doc := report.Report{Title: reportTitle(title, result, len(results)), Forecast: result}
			var body string
			if outputFormat == constants.OutputFormatMarkdown {
				body = report.Markdown(doc)
			} else {
				var err error
				if body, err = report.HTML(doc); err != nil {
					return err
				}
			}
			if i > 0 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(out, body); err != nil {
				return err
			}
		}
	}
	return nil
}

func reportTitle(title string, result forecast.Forecast, count int) string {
	if title == "" {
		title = report.DefaultTitle
	}
	if count > 1 {
		return fmt.Sprintf("%s: %s", title, result.Name)
	}
	return title
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configuration and report any warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			out := cmd.OutOrStdout()
			warnings := conf.ValidateConfiguration()
			for _, warning := range warnings {
				_, _ = fmt.Fprintf(out, "warning: %s\n", warning)
			}
			_, _ = fmt.Fprintf(out, "configuration OK: %d scenarios, %d warnings\n", len(conf.Scenarios), len(warnings))
			return nil
		},
	}
}
