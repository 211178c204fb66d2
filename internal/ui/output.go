// Package ui provides user interface utilities for buildsh, including the
// status-line Logger and colored diagnostics that respect NO_COLOR and TTY detection.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger prints "# "-prefixed status lines, bold when its writer is a terminal.
type Logger struct {
	out      io.Writer
	terminal func(io.Writer) bool
}

// NewLogger returns a Logger writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{out: w, terminal: isTerminal}
}

// Log prints message as a status line.
// The terminal check runs on every call so redirections made after the
// Logger was created are honored.
func (l *Logger) Log(message string) {
	line := "# " + message
	if l.terminal(l.out) && !noColor() {
		bold := color.New(color.Bold)
		bold.EnableColor()
		line = bold.Sprint(line)
	}
	fmt.Fprintln(l.out, line)
}

// Log prints message as a status line on stdout.
func Log(message string) {
	NewLogger(os.Stdout).Log(message)
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Warning prints a yellow-colored message to stderr.
// Colored only when stderr is a terminal and NO_COLOR is unset.
func Warning(format string, args ...interface{}) {
	fprintColor(os.Stderr, color.FgYellow, format, args...)
}

// Error prints a red-colored message to stderr.
// Colored only when stderr is a terminal and NO_COLOR is unset.
func Error(format string, args ...interface{}) {
	fprintColor(os.Stderr, color.FgRed, format, args...)
}

// fprintColor decides on color from w itself; color's package default
// only looks at stdout.
func fprintColor(w io.Writer, attr color.Attribute, format string, args ...interface{}) {
	c := color.New(attr)
	if isTerminal(w) && !noColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintf(w, format, args...)
}
