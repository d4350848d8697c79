// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/emi"
	"github.com/iwvelando/emi-calculator/pkg/format"
	"github.com/iwvelando/emi-calculator/pkg/input"
	"github.com/iwvelando/emi-calculator/pkg/presentation"
	"github.com/iwvelando/emi-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. EMI_DISPLAY_THEME=dark.
const EnvPrefix = "EMI"

// Configuration holds all configuration for emi-calculator.
type Configuration struct {
	Defaults Defaults      `yaml:"defaults,omitempty"`
	Display  DisplayConfig `yaml:"display,omitempty"`
	Input    InputConfig   `yaml:"input,omitempty"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// Defaults holds the inputs a new calculator starts with.
type Defaults struct {
	Principal         float64 `yaml:"principal,omitempty"`
	AnnualRatePercent float64 `yaml:"annualRatePercent,omitempty"`
	TermMonths        int     `yaml:"termMonths,omitempty"`
}

// DisplayConfig holds presentation options. None of them affect computed values.
type DisplayConfig struct {
	Locale   string `yaml:"locale,omitempty"`   // BCP 47, e.g. en-IN
	Currency string `yaml:"currency,omitempty"` // ISO 4217, e.g. INR
	Decimals int    `yaml:"decimals,omitempty"`
	Theme    string `yaml:"theme,omitempty"` // light, dark
}

// InputConfig holds options for direct-entry parsing.
type InputConfig struct {
	InvalidPolicy string `yaml:"invalidPolicy,omitempty"` // reject, zero
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	in := emi.DefaultInputs()
	return &Configuration{
		Defaults: Defaults{
			Principal:         in.Principal,
			AnnualRatePercent: in.AnnualRatePercent,
			TermMonths:        in.TermMonths,
		},
		Display: DisplayConfig{
			Locale:   constants.DefaultLocale,
			Currency: constants.DefaultCurrency,
			Theme:    constants.DefaultThemeMode,
		},
		Input:  InputConfig{InvalidPolicy: constants.InputPolicyReject},
		Output: OutputConfig{Format: constants.OutputFormatPretty},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("defaults.principal", d.Defaults.Principal)
	v.SetDefault("defaults.annualRatePercent", d.Defaults.AnnualRatePercent)
	v.SetDefault("defaults.termMonths", d.Defaults.TermMonths)
	v.SetDefault("display.locale", d.Display.Locale)
	v.SetDefault("display.currency", d.Display.Currency)
	v.SetDefault("display.decimals", d.Display.Decimals)
	v.SetDefault("display.theme", d.Display.Theme)
	v.SetDefault("input.invalidPolicy", d.Input.InvalidPolicy)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks every option that has a fixed set of legal values.
func (c *Configuration) Validate() error {
	if err := emi.Validate(c.DefaultInputs()); err != nil {
		return fmt.Errorf("invalid default inputs: %w", err)
	}
	if _, err := c.CurrencyFormatter(); err != nil {
		return err
	}
	if _, err := c.ThemeMode(); err != nil {
		return err
	}
	if _, err := c.InputPolicy(); err != nil {
		return err
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			return err
		}
	}
	return nil
}

// DefaultInputs converts the configured defaults into engine inputs.
func (c *Configuration) DefaultInputs() emi.Inputs {
	return emi.Inputs{
		Principal:         c.Defaults.Principal,
		AnnualRatePercent: c.Defaults.AnnualRatePercent,
		TermMonths:        c.Defaults.TermMonths,
	}
}

// CurrencyFormatter builds the formatter described by the display options.
func (c *Configuration) CurrencyFormatter() (*format.Currency, error) {
	return format.NewCurrency(c.Display.Locale, c.Display.Currency, c.Display.Decimals)
}

// ThemeMode returns the configured display mode.
func (c *Configuration) ThemeMode() (presentation.Mode, error) {
	return presentation.ParseMode(c.Display.Theme)
}

// InputPolicy returns the configured policy for unparsable text.
func (c *Configuration) InputPolicy() (input.Policy, error) {
	return input.ParsePolicy(c.Input.InvalidPolicy)
}

// ValidateConfiguration returns non-fatal warnings about the configuration.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	sliders := input.DefaultSliders()
	if !sliders.Principal.Contains(c.Defaults.Principal) {
		warnings = append(warnings, fmt.Sprintf("default principal %.2f is outside the slider range %.0f-%.0f",
			c.Defaults.Principal, sliders.Principal.Min, sliders.Principal.Max))
	}
	if !sliders.Rate.Contains(c.Defaults.AnnualRatePercent) {
		warnings = append(warnings, fmt.Sprintf("default annual rate %.2f%% is outside the slider range %.0f-%.0f",
			c.Defaults.AnnualRatePercent, sliders.Rate.Min, sliders.Rate.Max))
	}
	if !sliders.Term.Contains(float64(c.Defaults.TermMonths)) {
		warnings = append(warnings, fmt.Sprintf("default term %d months is outside the slider range %.0f-%.0f",
			c.Defaults.TermMonths, sliders.Term.Min, sliders.Term.Max))
	}
	if c.Input.InvalidPolicy == constants.InputPolicyZero {
		warnings = append(warnings, "input policy 'zero' silently replaces unparsable entries with 0")
	}
	return warnings
}
