package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/config"
	log "github.com/pkgci/pkgci/pkg/logger"
	"github.com/pkgci/pkgci/pkg/schema"
	"github.com/pkgci/pkgci/pkg/version"
)

// settings are resolved in PersistentPreRunE before any subcommand runs.
var settings = &schema.Settings{}

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "pkgci",
	Short: "Continuous integration helper for Python packages",
	Long: `pkgci detects the CI platform it runs on, installs dependencies, builds and installs the package,
runs the tests and uploads coverage, all driven by a ci.ini file in the project root.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Help keeps cobra's usage output.
		if cmd.Name() == "help" || cmd.Flags().Changed("help") {
			cmd.SilenceUsage = false
			cmd.SilenceErrors = false
		} else {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
		}
		return setup(cmd)
	},
}

// setup loads the settings and configures logging and crash reporting.
func setup(cmd *cobra.Command) error {
	loaded, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}
	settings = loaded

	logger, err := log.NewFromLevelName(settings.Logs.Level, settings.Logs.File)
	if err != nil {
		return err
	}
	previous := log.Default()
	log.SetDefault(logger)
	if err := previous.Close(); err != nil {
		log.Warn("Failed to close previous log file", "error", err)
	}

	if settings.Sentry.Release == "" {
		settings.Sentry.Release = version.Version
	}
	if err := errUtils.InitializeSentry(&settings.Sentry); err != nil {
		log.Warn("Crash reporting disabled", "error", err)
	}

	log.Debug("Settings loaded", "logs_level", logger.GetLevelString(), "config", settings.ConfigPath)
	return nil
}

// Execute runs the root command with ctx. It is called by main.main().
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// Cleanup releases resources held by the process before it exits.
func Cleanup() {
	errUtils.CloseSentry()
	if err := log.Default().Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
}

func init() {
	RootCmd.PersistentFlags().String("logs-level", "Info", "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off. If the log level is set to Off, pkgci will not log any messages")
	RootCmd.PersistentFlags().String("logs-file", "/dev/stderr", "The file to write pkgci logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
}
