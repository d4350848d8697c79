package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iwvelando/emi-calculator/internal/calculator"
	"github.com/iwvelando/emi-calculator/internal/config"
	"github.com/iwvelando/emi-calculator/internal/server"
	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/output"
	"github.com/iwvelando/emi-calculator/pkg/presentation"
	"github.com/iwvelando/emi-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// loadConfiguration reads the calculator config. A missing file is only an
// error when the path was given explicitly.
func loadConfiguration(path string, explicit bool) (*config.Configuration, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
	}
	return config.LoadConfiguration(path)
}

type calcOptions struct {
	principal    string
	rate         string
	term         string
	outputFormat string
	theme        string
}

func runCalc(logger *zap.Logger, conf *config.Configuration, opts calcOptions, w io.Writer) error {
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	mode, err := conf.ThemeMode()
	if err != nil {
		return err
	}
	if opts.theme != "" {
		if mode, err = presentation.ParseMode(opts.theme); err != nil {
			return err
		}
	}

	policy, err := conf.InputPolicy()
	if err != nil {
		return err
	}
	currency, err := conf.CurrencyFormatter()
	if err != nil {
		return err
	}

	session := calculator.New(logger, conf.DefaultInputs(), policy)
	if opts.principal != "" {
		if err := session.SetPrincipalText(opts.principal); err != nil {
			return err
		}
	}
	if opts.rate != "" {
		if err := session.SetRateText(opts.rate); err != nil {
			return err
		}
	}
	if opts.term != "" {
		if err := session.SetTermText(opts.term); err != nil {
			return err
		}
	}
	if err := session.Err(); err != nil {
		return err
	}

	result, _ := session.Result()
	logger.Debug("installment computed",
		zap.String("op", "main.runCalc"),
		zap.Float64("monthlyInstallment", result.MonthlyInstallment),
	)
	return output.Write(w, outputFormat, presentation.Summarize(result, currency, mode))
}

func runServe(ctx context.Context, logger *zap.Logger, conf *config.Configuration, srvConf *server.Config) error {
	handler, err := server.NewHandler(logger, server.Options{
		MaxRequestSize: srvConf.RequestSizeBytes(),
		Version:        version,
		Calculator:     conf,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: srvConf.Address, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web server",
			zap.String("op", "main.runServe"),
			zap.String("address", srvConf.Address),
			zap.Int64("maxRequestSize", srvConf.RequestSizeBytes()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srvConf.ShutdownTimeoutDuration())
	defer cancel()
	logger.Info("shutting down web server",
		zap.String("op", "main.runServe"),
		zap.Duration("timeout", srvConf.ShutdownTimeoutDuration()),
	)
	return srv.Shutdown(shutdownCtx)
}

func newRootCommand() *cobra.Command {
	var (
		configLocation string
		logLevel       string
		calc           calcOptions
		serverConfig   string
		address        string
	)

	setup := func(cmd *cobra.Command, logging func(*config.Configuration) config.LoggingConfig) (*config.Configuration, *zap.Logger, error) {
		conf, err := loadConfiguration(configLocation, cmd.Flags().Changed("config"))
		if err != nil {
			return nil, nil, err
		}
		logger, err := initializeLogger(logging(conf), logLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		for _, warning := range conf.ValidateConfiguration() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}
		return conf, logger, nil
	}

	root := &cobra.Command{
		Use:           "emi-calculator",
		Short:         "Loan EMI calculator (CLI or web)",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the monthly installment, total interest and total payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := setup(cmd, func(c *config.Configuration) config.LoggingConfig { return c.Logging })
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()
			return runCalc(logger, conf, calc, cmd.OutOrStdout())
		},
	}
	calcCmd.Flags().StringVarP(&calc.principal, "principal", "p", "", "loan amount, grouping commas allowed (default from config)")
	calcCmd.Flags().StringVarP(&calc.rate, "rate", "r", "", "annual interest rate in percent (default from config)")
	calcCmd.Flags().StringVarP(&calc.term, "term", "t", "", "loan term in months (default from config)")
	calcCmd.Flags().StringVar(&calc.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	calcCmd.Flags().StringVar(&calc.theme, "theme", "", "display mode override: light, dark")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			srvConf, err := server.LoadConfig(serverConfig)
			if err != nil {
				return err
			}
			if address != "" {
				srvConf.Address = address
			}

			// Server config logging takes precedence over the calculator config.
			conf, logger, err := setup(cmd, func(c *config.Configuration) config.LoggingConfig {
				if srvConf.Logging != (config.LoggingConfig{}) {
					return srvConf.Logging
				}
				return c.Logging
			})
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, logger, conf, srvConf)
		},
	}
	serveCmd.Flags().StringVar(&serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")

	root.AddCommand(calcCmd, serveCmd)
	return root
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"%v\"}\n", err)
		os.Exit(1)
	}
}
