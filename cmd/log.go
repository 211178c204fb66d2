package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/buildsh/internal/errors"
	"github.com/wellmaintained/buildsh/internal/ui"
)

var logCmd = &cobra.Command{
	Use:   "log <message>...",
	Short: "Print a status line",
	Long: `Print a "# "-prefixed status line on stdout.

The line is bold when stdout is a terminal and plain when it is redirected
or NO_COLOR is set.`,
	Example: `  # Announce a build step
  buildsh log building documentation`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.NewValidationError("a message is required", nil)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		runLog(os.Stdout, args)
	},
}

func runLog(w io.Writer, args []string) {
	ui.NewLogger(w).Log(strings.Join(args, " "))
}
