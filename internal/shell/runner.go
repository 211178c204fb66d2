// Package shell runs external commands for build scripts.
//
// Every command is logged as a status line before it starts and executed
// with an explicit argument vector, never through a shell. A non-zero exit
// is reported as an *errors.CommandError; MustRun turns that into process
// termination.
package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/wellmaintained/buildsh/internal/errors"
	"github.com/wellmaintained/buildsh/internal/ui"
)

// Runner executes commands, logging each invocation first.
type Runner struct {
	Logger *ui.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Exit terminates the process after MustRun reports a failure.
	Exit func(code int)
}

// NewRunner returns a Runner wired to the process's standard streams.
func NewRunner(logger *ui.Logger) *Runner {
	return &Runner{
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exit:   os.Exit,
	}
}

// CommandLine renders name and args as the single line shown in the log.
// It is for display only and is never handed to a shell.
func CommandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// Run logs and executes name with args, blocking until it exits.
func (r *Runner) Run(name string, args ...string) error {
	r.Logger.Log(CommandLine(name, args))

	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	code := errors.UnknownExitCode
	if ee, ok := err.(*exec.ExitError); ok {
		// ExitCode is -1 when the process was killed by a signal.
		code = ee.ExitCode()
	}
	return errors.NewCommandError(name, args, code, err)
}

// MustRun is Run for library callers whose build cannot continue after a
// failed step: on failure it prints the diagnostic to Stderr and calls Exit.
// The buildsh CLI uses Run and reports the error from its single exit path.
func (r *Runner) MustRun(name string, args ...string) {
	if err := r.Run(name, args...); err != nil {
		fmt.Fprintln(r.Stderr, err)
		r.Exit(errors.GetExitCode(err))
	}
}
