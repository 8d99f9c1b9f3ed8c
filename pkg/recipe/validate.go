package recipe

import (
	"fmt"
	"strings"
)

// Validate checks the cross-field consistency of a rendered recipe.  The load
// bearing invariant is that the declared package name matches the import name
// exercised by the test phase and the directory referenced by the
// documentation builds; a mismatch means the recipe would happily package one
// thing and test another.
func (r *Recipe) Validate() error {
	name := r.Package.Name
	if name == "" {
		return fmt.Errorf("recipe: package name is empty")
	}
	if r.Package.Version == "" {
		return fmt.Errorf("recipe %s: package version is empty", name)
	}
	if len(r.Build.Script) == 0 {
		return fmt.Errorf("recipe %s: build script is empty", name)
	}

	imported := false
	for _, imp := range r.Test.Imports {
		if imp == name {
			imported = true
			break
		}
	}
	if !imported {
		return fmt.Errorf("recipe %s: test imports %v do not include the package itself",
			name, r.Test.Imports)
	}

	for _, step := range r.Test.Commands {
		if strings.Contains(step.Run, "sphinx-build") && !strings.Contains(step.Run, name) {
			return fmt.Errorf("recipe %s: documentation build %q does not reference the package directory",
				name, step.Run)
		}
	}

	for _, export := range r.Build.RunExports {
		if export != name && !strings.HasPrefix(export, name+" ") {
			return fmt.Errorf("recipe %s: run_exports entry %q does not pin this package",
				name, export)
		}
	}

	for _, steps := range [][]Step{r.Build.Script, r.Test.Commands} {
		for _, step := range steps {
			if step.Selector == "" {
				continue
			}
			if err := CheckSelector(step.Selector); err != nil {
				return fmt.Errorf("recipe %s: %w", name, err)
			}
		}
	}
	return nil
}
