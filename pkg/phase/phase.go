// Package phase executes the ordered command steps of a rendered recipe
// phase (build or test).
//
// Failure handling is deliberately thin: the first non-zero exit aborts the
// phase, and there is no retry or rollback.  Anything smarter belongs to the
// commands themselves.
package phase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"

	"github.com/bob-devel/recipetool/pkg/recipe"
)

// A Phase runs a list of recipe steps strictly in order.
type Phase struct {
	// Name is used for logging and error messages; conventionally "build"
	// or "test".
	Name string
	// Dir is the initial working directory; "" means the process's.
	Dir string
	// Env is the environment for the commands; nil means inherit.
	Env []string
	// Platform is the selector platform; "" means the host platform.
	Platform string
}

// Run executes the steps.  Steps whose selector excludes the platform are
// skipped.  A step of the form "cd DIR" changes the working directory for the
// steps after it; every other step runs through `sh -c`.  Run returns the
// first error and does not continue past it; between steps it also honors
// context cancellation.
func (ph Phase) Run(ctx context.Context, steps []recipe.Step) error {
	platform := ph.Platform
	if platform == "" {
		platform = recipe.HostPlatform()
	}
	dir := ph.Dir

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		enabled, err := step.Enabled(platform)
		if err != nil {
			return fmt.Errorf("%s step %d: %w", ph.Name, i+1, err)
		}
		if !enabled {
			dlog.Infof(ctx, "%s: skipping %q (selector [%s], platform %s)",
				ph.Name, step.Run, step.Selector, platform)
			continue
		}

		if newDir, ok := chdirStep(step.Run); ok {
			if !filepath.IsAbs(newDir) {
				newDir = filepath.Join(dir, newDir)
			}
			info, err := os.Stat(newDir)
			if err != nil {
				return fmt.Errorf("%s step %d: %w", ph.Name, i+1, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s step %d: cd %s: not a directory", ph.Name, i+1, newDir)
			}
			dlog.Infof(ctx, "%s: entering %s", ph.Name, newDir)
			dir = newDir
			continue
		}

		dlog.Infof(ctx, "%s: $ %s", ph.Name, step.Run)
		cmd := dexec.CommandContext(ctx, "sh", "-c", step.Run)
		cmd.Dir = dir
		if ph.Env != nil {
			cmd.Env = ph.Env
		}
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s step %d (%q): %w", ph.Name, i+1, step.Run, err)
		}
	}
	return nil
}

// chdirStep recognizes the "cd DIR" steps that recipes use to move from the
// recipe directory to the project checkout.  It has to be handled in-process
// because each remaining step gets its own shell.
func chdirStep(run string) (string, bool) {
	fields := strings.Fields(run)
	if len(fields) == 2 && fields[0] == "cd" {
		return fields[1], true
	}
	return "", false
}
