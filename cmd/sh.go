package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/buildsh/internal/errors"
	"github.com/wellmaintained/buildsh/internal/shell"
	"github.com/wellmaintained/buildsh/internal/ui"
)

var shCmd = &cobra.Command{
	Use:   "sh <command> [args...]",
	Short: "Log and run a command, failing loudly",
	Long: `Log a command line as a status line, then run the command.

Arguments are passed to the command directly, without a shell. If the
command exits non-zero or cannot be started, buildsh prints
"*** Command failed with code <N>" (or "unknown") and exits 1.`,
	Example: `  # Run make with arguments
  buildsh sh make -j4 all

  # Separate buildsh flags from command flags explicitly
  buildsh sh -- ls --color=never`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.NewValidationError("a command is required", nil)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSh(args)
	},
}

func runSh(args []string) error {
	runner := shell.NewRunner(ui.NewLogger(os.Stdout))
	return runner.Run(args[0], args[1:]...)
}

func init() {
	// Everything after the command name belongs to the command.
	shCmd.Flags().SetInterspersed(false)
}
