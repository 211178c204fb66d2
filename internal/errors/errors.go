// Package errors provides a typed error system for exit code handling.
//
// Build steps either fail on bad input, fail at runtime (filesystem and
// similar), or fail because an external command did. Each kind maps to an
// exit code so the top-level caller can terminate the process consistently.
//
// Exit code conventions:
//   - 1: Runtime errors and failed external commands
//   - 2: Validation/usage errors (e.g., invalid flags, malformed input)
//
// Example usage:
//
//	if err := runner.Run("make", "all"); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(errors.GetExitCode(err))
//	}
package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// UnknownExitCode marks a CommandError whose process never reported a status,
// either because it could not be started or because it was killed by a signal.
const UnknownExitCode = -1

// ValidationError represents a validation or usage error.
// These errors indicate improper input or configuration and should result in exit code 2.
type ValidationError struct {
	Message string
	Cause   error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// RuntimeError represents a runtime error.
// These errors indicate failures during execution (filesystem, I/O) and should result in exit code 1.
type RuntimeError struct {
	Message string
	Cause   error
}

// Error implements the error interface for RuntimeError.
func (e *RuntimeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *RuntimeError) Unwrap() error {
	return e.Cause
}

// CommandError reports an external command that exited non-zero or could not
// be started. It is fatal: callers are expected to abort with its message.
type CommandError struct {
	Command string
	Args    []string
	Code    int
	Cause   error
}

// Status returns the exit status as text, or "unknown" when there is none.
func (e *CommandError) Status() string {
	if e.Code == UnknownExitCode {
		return "unknown"
	}
	return strconv.Itoa(e.Code)
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	return "*** Command failed with code " + e.Status()
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError with the given message and cause.
// Returns an error interface to support standard Go error handling.
func NewValidationError(msg string, cause error) error {
	return &ValidationError{
		Message: msg,
		Cause:   cause,
	}
}

// NewRuntimeError creates a new RuntimeError with the given message and cause.
// Returns an error interface to support standard Go error handling.
func NewRuntimeError(msg string, cause error) error {
	return &RuntimeError{
		Message: msg,
		Cause:   cause,
	}
}

// NewCommandError creates a CommandError for the given invocation.
// Pass UnknownExitCode as code when the process reported no status.
func NewCommandError(command string, args []string, code int, cause error) error {
	return &CommandError{
		Command: command,
		Args:    args,
		Code:    code,
		Cause:   cause,
	}
}

// AsCommandError finds the first CommandError in err's chain.
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}

// GetExitCode extracts the appropriate exit code from an error.
// Returns:
//   - 2 for ValidationError
//   - 1 for CommandError and RuntimeError
//   - 1 for unknown errors
func GetExitCode(err error) int {
	var validationErr *ValidationError

	if errors.As(err, &validationErr) {
		return 2
	}
	return 1
}
