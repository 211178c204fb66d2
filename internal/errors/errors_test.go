package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		cause   error
		want    string
	}{
		{
			name:    "validation error with cause",
			message: "invalid mode",
			cause:   errors.New("not octal"),
			want:    "invalid mode: not octal",
		},
		{
			name:    "validation error without cause",
			message: "invalid mode",
			cause:   nil,
			want:    "invalid mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.message, tt.cause)
			if err.Error() != tt.want {
				t.Errorf("got %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestRuntimeError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		cause   error
		want    string
	}{
		{
			name:    "runtime error with cause",
			message: "failed to create directory",
			cause:   errors.New("permission denied"),
			want:    "failed to create directory: permission denied",
		},
		{
			name:    "runtime error without cause",
			message: "failed to create directory",
			cause:   nil,
			want:    "failed to create directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRuntimeError(tt.message, tt.cause)
			if err.Error() != tt.want {
				t.Errorf("got %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestCommandError(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{name: "exit status one", code: 1, want: "*** Command failed with code 1"},
		{name: "exit status 127", code: 127, want: "*** Command failed with code 127"},
		{name: "no status", code: UnknownExitCode, want: "*** Command failed with code unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCommandError("false", nil, tt.code, nil)
			if err.Error() != tt.want {
				t.Errorf("got %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error returns code 2",
			err:      NewValidationError("bad input", nil),
			wantCode: 2,
		},
		{
			name:     "wrapped validation error returns code 2",
			err:      fmt.Errorf("mkdir: %w", NewValidationError("bad input", nil)),
			wantCode: 2,
		},
		{
			name:     "runtime error returns code 1",
			err:      NewRuntimeError("runtime failure", errors.New("i/o error")),
			wantCode: 1,
		},
		{
			name:     "command error returns code 1 regardless of status",
			err:      NewCommandError("make", []string{"all"}, 2, nil),
			wantCode: 1,
		},
		{
			name:     "unknown error returns code 1",
			err:      errors.New("unknown error"),
			wantCode: 1,
		},
		{
			name:     "nil error returns code 1",
			err:      nil,
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := GetExitCode(tt.err)
			if code != tt.wantCode {
				t.Errorf("got code %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	err := NewRuntimeError("failed to create directory", os.ErrExist)
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("runtime error does not unwrap to its cause")
	}

	cause := errors.New("exec: not found")
	err = NewCommandError("missing", nil, UnknownExitCode, cause)
	if !errors.Is(err, cause) {
		t.Errorf("command error does not unwrap to its cause")
	}
}

func TestAsCommandError(t *testing.T) {
	wrapped := fmt.Errorf("provision: %w", NewCommandError("chmod", []string{"g+s", "/out"}, 1, nil))

	cmdErr, ok := AsCommandError(wrapped)
	if !ok {
		t.Fatalf("AsCommandError() did not find the command error")
	}
	if cmdErr.Command != "chmod" || cmdErr.Code != 1 {
		t.Errorf("got %q code %d, want chmod code 1", cmdErr.Command, cmdErr.Code)
	}

	if _, ok := AsCommandError(NewRuntimeError("boom", nil)); ok {
		t.Errorf("AsCommandError() matched a runtime error")
	}
}
