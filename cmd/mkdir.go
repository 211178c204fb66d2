package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/buildsh/internal/config"
	"github.com/wellmaintained/buildsh/internal/errors"
	"github.com/wellmaintained/buildsh/internal/outdir"
	"github.com/wellmaintained/buildsh/internal/pathutil"
	"github.com/wellmaintained/buildsh/internal/shell"
	"github.com/wellmaintained/buildsh/internal/ui"
)

var (
	mkdirMode   string
	mkdirWithin string
	mkdirDryRun bool
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>... [flags]",
	Short: "Create shared output directories",
	Long: `Create each directory and its missing ancestors, parent first.

Every new directory gets mode 0775 (or --mode) and the set-group-ID bit,
so files created inside inherit the directory's group. Existing directories
are left untouched, so running the command twice is harmless.

Defaults can be set with BUILDSH_DIR_MODE and BUILDSH_WITHIN.`,
	Example: `  # Create an output tree
  buildsh mkdir /srv/builds/out/linux/amd64

  # Show what would be created
  buildsh mkdir --dry-run /srv/builds/out/docs

  # Refuse paths outside the builds area
  buildsh mkdir --within /srv/builds /srv/builds/out/../../etc`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		var errs []error

		if len(args) == 0 {
			errs = append(errs, fmt.Errorf("at least one directory is required"))
		}

		if mkdirMode != "" {
			if _, err := config.ParseMode(mkdirMode); err != nil {
				errs = append(errs, fmt.Errorf("--mode is invalid: %v (use an octal mode such as 0775)", err))
			}
		}

		if len(errs) > 0 {
			combined := "Validation errors:\n"
			for _, err := range errs {
				combined += fmt.Sprintf("  - %s\n", err)
			}
			return errors.NewValidationError(combined, nil)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMkdir(os.Stdout, args)
	},
}

func loadMkdirConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if mkdirMode != "" {
		mode, err := config.ParseMode(mkdirMode)
		if err != nil {
			return nil, errors.NewValidationError("invalid --mode", err)
		}
		cfg.DirMode = mode
	}
	if mkdirWithin != "" {
		cfg.Within = mkdirWithin
	}
	return cfg, nil
}

func runMkdir(w io.Writer, dirs []string) error {
	cfg, err := loadMkdirConfig()
	if err != nil {
		return err
	}

	targets := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return errors.NewRuntimeError("failed to resolve "+dir, err)
		}
		if cfg.Within != "" {
			if err := pathutil.Within(abs, cfg.Within); err != nil {
				return errors.NewValidationError("refusing to create "+dir, err)
			}
		}
		targets = append(targets, abs)
	}

	if mkdirDryRun {
		return planMkdir(w, targets)
	}

	logger := ui.NewLogger(w)
	provisioner := outdir.New(logger, shell.NewRunner(logger), cfg.DirMode)
	for _, dir := range targets {
		if err := provisioner.MakeOutputSubdir(dir); err != nil {
			return err
		}
	}
	return nil
}

func planMkdir(w io.Writer, targets []string) error {
	var rows [][]string
	seen := make(map[string]bool)
	for _, dir := range targets {
		missing, err := outdir.MissingAncestors(dir)
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			ui.Warning("%s already exists, nothing to create\n", dir)
			continue
		}
		// Targets sharing a missing ancestor only create it once.
		for _, m := range missing {
			if seen[m] {
				continue
			}
			seen[m] = true
			rows = append(rows, []string{strconv.Itoa(len(rows) + 1), m})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return ui.PrintTable(w, []string{"Step", "Directory"}, rows)
}

func init() {
	mkdirCmd.Flags().StringVar(&mkdirMode, "mode", "", "Octal permission bits for new directories (default 0775)")
	mkdirCmd.Flags().StringVar(&mkdirWithin, "within", "", "Refuse directories outside this base directory")
	mkdirCmd.Flags().BoolVar(&mkdirDryRun, "dry-run", false, "Show directories that would be created without creating them")
}
