// Package constants provides shared constants for the ai-roi-forecast application.
package constants

// Projection constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// HoursPerYear is the number of working hours in a year (52 weeks * 40 hours)
	HoursPerYear = 2080

	// APIGrowthRate is the yearly linear increase applied to API usage cost
	APIGrowthRate = 0.10

	// MaintenanceGrowthRate is the yearly linear increase applied to maintenance cost
	MaintenanceGrowthRate = 0.05

	// ValueGrowthRate is the yearly linear increase in value realization as adoption matures
	ValueGrowthRate = 0.15

	// RevenuePerEmployee is the revenue attributed to each impacted employee
	RevenuePerEmployee = 100000.0

	// SatisfactionRevenueShare is the share of revenue sensitive to customer satisfaction
	SatisfactionRevenueShare = 0.08

	// DefaultHorizon is the default number of projected years
	DefaultHorizon = 5

	// MaxRecommendedHorizon is the horizon above which the linear scaling curves stop being meaningful
	MaxRecommendedHorizon = 10

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Rounding and comparison constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatMarkdown is the markdown report format
	OutputFormatMarkdown = "markdown"

	// OutputFormatHTML is the rendered HTML report format
	OutputFormatHTML = "html"

	// ExportFileName is the file name suggested for CSV downloads
	ExportFileName = "ai_value_analysis.csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment overrides (ROI_HORIZON, ROI_OUTPUT_FORMAT, ...)
	EnvPrefix = "ROI"
)

// State snapshot constants
const (
	// SnapshotKey is the key under which the application state snapshot is stored
	SnapshotKey = "aiValueAnalysis"

	// MainScenarioIndex marks the main assumption set as active rather than a named scenario
	MainScenarioIndex = -1
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultRateLimit is the default number of requests per client per refill window
	DefaultRateLimit = 60

	// DefaultRateWindow is the default refill window, in seconds
	DefaultRateWindow = 60
)
