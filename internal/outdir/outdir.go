// Package outdir provisions shared build output directories.
//
// Every directory it creates is group-writable and carries the set-group-ID
// bit, so files written later inherit the directory's group and a service
// account in that group can write into the tree.
package outdir

import (
	"os"
	"path/filepath"

	"github.com/wellmaintained/buildsh/internal/errors"
	"github.com/wellmaintained/buildsh/internal/ui"
)

// Commander runs an external command. *shell.Runner satisfies it.
type Commander interface {
	Run(name string, args ...string) error
}

// Provisioner creates output directory trees.
type Provisioner struct {
	logger *ui.Logger
	runner Commander
	mode   os.FileMode
}

// New returns a Provisioner creating directories with mode, logging through
// logger and setting the setgid bit through runner.
func New(logger *ui.Logger, runner Commander, mode os.FileMode) *Provisioner {
	return &Provisioner{logger: logger, runner: runner, mode: mode.Perm()}
}

// MissingAncestors returns path and each of its ancestors that do not exist,
// shallowest first. The walk stops at the first existing directory or at the
// filesystem root. An existing path yields an empty list.
func MissingAncestors(path string) ([]string, error) {
	var dirs []string

	dir := filepath.Clean(path)
	for !isRoot(dir) {
		exists, err := pathExists(dir)
		if err != nil {
			return nil, err
		}
		if exists {
			break
		}
		dirs = append(dirs, dir)

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs, nil
}

// MakeOutputSubdir creates path and any missing ancestors, parent first.
// Each new directory gets the Provisioner's mode and the setgid bit; "chmod
// g+s" is only run when the bit was not inherited from the parent.
func (p *Provisioner) MakeOutputSubdir(path string) error {
	dirs, err := MissingAncestors(path)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		p.logger.Log("mkdir " + dir)
		if err := os.Mkdir(dir, p.mode); err != nil {
			return errors.NewRuntimeError("failed to create directory", err)
		}

		info, err := p.restoreMode(dir)
		if err != nil {
			return err
		}

		if info.Mode()&os.ModeSetgid == 0 {
			if err := p.runner.Run("chmod", "g+s", dir); err != nil {
				return err
			}
		}
	}
	return nil
}

// restoreMode puts back permission bits the umask removed from a freshly
// created directory, keeping an inherited setgid bit.
func (p *Provisioner) restoreMode(dir string) (os.FileInfo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.NewRuntimeError("failed to stat directory", err)
	}
	if info.Mode().Perm() == p.mode {
		return info, nil
	}

	if err := os.Chmod(dir, p.mode|info.Mode()&os.ModeSetgid); err != nil {
		return nil, errors.NewRuntimeError("failed to set directory mode", err)
	}
	return os.Stat(dir)
}

func isRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.NewRuntimeError("failed to check "+path, err)
}
