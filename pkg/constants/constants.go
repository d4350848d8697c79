// Package constants provides shared constants for the emi-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Default calculator inputs
const (
	// DefaultPrincipal is the loan amount shown when a session starts
	DefaultPrincipal = 100000.0

	// DefaultAnnualRatePercent is the annual interest rate shown when a session starts
	DefaultAnnualRatePercent = 8.0

	// DefaultTermMonths is the loan term shown when a session starts
	DefaultTermMonths = 12
)

// Slider ranges for the three inputs
const (
	PrincipalMin  = 0.0
	PrincipalMax  = 1000000.0
	PrincipalStep = 10000.0

	RateMin  = 0.0
	RateMax  = 30.0
	RateStep = 0.25

	TermMin  = 0.0
	TermMax  = 360.0
	TermStep = 1.0
)

// Input field names, used in validation errors and API payloads
const (
	FieldPrincipal = "principal"
	FieldRate      = "annualRatePercent"
	FieldTerm      = "termMonths"
)

// Invalid input policies
const (
	// InputPolicyReject surfaces unparsable input as a validation error
	InputPolicyReject = "reject"

	// InputPolicyZero coerces unparsable input to zero, as the browser widget did
	InputPolicyZero = "zero"
)

// Display constants
const (
	// DefaultLocale is the BCP 47 tag used for currency formatting
	DefaultLocale = "en-IN"

	// DefaultCurrency is the ISO 4217 code of the displayed currency
	DefaultCurrency = "INR"

	// DefaultThemeMode is the presentation mode used when none is configured
	DefaultThemeMode = "light"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum JSON request body size (16 KB)
	DefaultMaxRequestSizeBytes int64 = 16 * 1024

	// DefaultShutdownTimeout is the default graceful shutdown window
	DefaultShutdownTimeout = "10s"
)
