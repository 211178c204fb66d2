// Package cmd defines command-line interface commands for buildsh.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/buildsh/internal/errors"
	"github.com/wellmaintained/buildsh/internal/ui"
)

var version string

var rootCmd = &cobra.Command{
	Use:   "buildsh",
	Short: "Helpers for build scripts",
	Long:  "buildsh prints build status lines, runs build commands and provisions shared output directories",
	// Errors are reported once, by ExitOnError, with their mapped exit code.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root CLI command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

// ExitOnError reports err and terminates the process with its exit code.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	os.Exit(reportError(err))
}

// reportError prints err to stderr and returns the exit code it maps to.
// Command failures are printed as-is; everything else gets an "Error:" prefix.
func reportError(err error) int {
	if _, ok := errors.AsCommandError(err); ok {
		ui.Error("%v\n", err)
	} else {
		ui.Error("Error: %v\n", err)
	}
	return errors.GetExitCode(err)
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewValidationError("invalid flags for "+cmd.CommandPath(), err)
	})

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(shCmd)
	rootCmd.AddCommand(mkdirCmd)
}
