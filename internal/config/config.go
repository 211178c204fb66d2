// Package config provides configuration management for buildsh.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wellmaintained/buildsh/internal/errors"
)

// DefaultDirMode is the permission set for provisioned output directories:
// read-write-execute for owner and group, read-execute for others.
const DefaultDirMode os.FileMode = 0775

type Config struct {
	DirMode os.FileMode
	Within  string
}

// LoadConfig loads the buildsh configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{DirMode: DefaultDirMode}

	if s := os.Getenv("BUILDSH_DIR_MODE"); s != "" {
		mode, err := ParseMode(s)
		if err != nil {
			return nil, errors.NewValidationError("invalid BUILDSH_DIR_MODE", err)
		}
		cfg.DirMode = mode
	}
	cfg.Within = os.Getenv("BUILDSH_WITHIN")

	return cfg, nil
}

// ParseMode parses an octal permission string such as "0775" or "775".
func ParseMode(s string) (os.FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not an octal mode", s)
	}
	if n > 0777 {
		return 0, fmt.Errorf("%q has bits outside 0777", s)
	}
	return os.FileMode(n), nil
}
