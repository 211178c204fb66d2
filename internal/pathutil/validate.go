// Package pathutil keeps provisioned paths inside a designated base directory.
// Paths are compared after cleaning and symlink resolution so neither ".."
// segments nor symlinked ancestors can lead outside the base (CWE-22).
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutsideBase is returned when a path resolves outside the base directory.
var ErrOutsideBase = errors.New("path escapes base directory")

// Within returns nil when path, resolved against baseDir if relative, lies
// inside baseDir or is baseDir itself. Missing trailing components are
// allowed, since the path is usually about to be created.
func Within(path, baseDir string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if baseDir == "" {
		return fmt.Errorf("baseDir cannot be empty")
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("cannot resolve baseDir to absolute path: %w", err)
	}
	if base, err = resolve(base); err != nil {
		return err
	}

	target := filepath.Clean(path)
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	if target, err = resolve(target); err != nil {
		return err
	}

	if target == base || strings.HasPrefix(target, base+string(filepath.Separator)) {
		return nil
	}
	return fmt.Errorf("%w: %s is not within %s", ErrOutsideBase, path, baseDir)
}

// resolve evaluates symlinks in the longest existing prefix of path and
// re-appends the components that do not exist yet. Only missing components
// are skipped; any other lookup failure is returned.
func resolve(path string) (string, error) {
	var rest []string
	dir := path
	for {
		_, err := os.Lstat(dir)
		if err == nil {
			break
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("cannot inspect %s: %w", dir, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return path, nil
		}
		rest = append([]string{filepath.Base(dir)}, rest...)
		dir = parent
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", dir, err)
	}
	return filepath.Join(append([]string{resolved}, rest...)...), nil
}
