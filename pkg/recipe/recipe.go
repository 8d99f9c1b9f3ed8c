// Package recipe implements the declarative build-recipe documents that
// recipetool renders, validates, and executes.
//
// A recipe source file is a Go text/template that expands to a YAML document;
// template variables are resolved from an environment snapshot and a
// dependency pinning table, once, with no state retained afterwards.
package recipe

import (
	"encoding/json"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// A Recipe is the fully rendered form of a recipe document.  All fields are
// resolved and immutable; re-rendering is the only way to get different
// values.
type Recipe struct {
	Package      Package      `json:"package"`
	Build        Build        `json:"build"`
	Requirements Requirements `json:"requirements"`
	Test         Test         `json:"test"`
	About        About        `json:"about,omitempty"`
}

type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Build struct {
	Number intstr.IntOrString `json:"number"`
	// RunExports lists version constraints that downstream consumers of the
	// built package inherit at run time.
	RunExports []string `json:"run_exports,omitempty"`
	Script     []Step   `json:"script"`
}

type Requirements struct {
	// Host dependencies are needed while building; Run dependencies are
	// needed by the installed package.  Entries are "name" or
	// "name constraint".
	Host []string `json:"host"`
	Run  []string `json:"run"`
}

type Test struct {
	Imports  []string `json:"imports,omitempty"`
	Requires []string `json:"requires,omitempty"`
	Commands []Step   `json:"commands"`
}

type About struct {
	Home          string `json:"home,omitempty"`
	License       string `json:"license,omitempty"`
	LicenseFamily string `json:"license_family,omitempty"`
	Summary       string `json:"summary,omitempty"`
}

// A Step is one ordered shell command, with an optional platform selector
// written as a trailing comment in the conda style:
//
//	conda inspect linkages -p $PREFIX bob.db.atnt  # [not win]
type Step struct {
	Run      string
	Selector string
}

// ParseStep splits the trailing "# [selector]" annotation, if any, off of a
// command line.
func ParseStep(line string) (Step, error) {
	run := line
	var selector string
	if i := strings.LastIndex(line, "#"); i >= 0 {
		tail := strings.TrimSpace(line[i+1:])
		if strings.HasPrefix(tail, "[") {
			if !strings.HasSuffix(tail, "]") {
				return Step{}, fmt.Errorf("step %q: unterminated selector", line)
			}
			selector = strings.TrimSpace(tail[1 : len(tail)-1])
			if selector == "" {
				return Step{}, fmt.Errorf("step %q: empty selector", line)
			}
			run = line[:i]
		}
	}
	run = strings.TrimSpace(run)
	if run == "" {
		return Step{}, fmt.Errorf("step %q: no command", line)
	}
	return Step{Run: run, Selector: selector}, nil
}

// String renders the step back to its source form.
func (step Step) String() string {
	if step.Selector == "" {
		return step.Run
	}
	return fmt.Sprintf("%s  # [%s]", step.Run, step.Selector)
}

// Enabled reports whether the step applies on the given platform ("linux",
// "osx", or "win").  Steps with no selector apply everywhere.
func (step Step) Enabled(platform string) (bool, error) {
	if step.Selector == "" {
		return true, nil
	}
	return EvalSelector(step.Selector, platform)
}

// UnmarshalJSON implements json.Unmarshaler.  Steps appear in recipe YAML as
// plain strings.
func (step *Step) UnmarshalJSON(data []byte) error {
	var line string
	if err := json.Unmarshal(data, &line); err != nil {
		return err
	}
	parsed, err := ParseStep(line)
	if err != nil {
		return err
	}
	*step = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (step Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(step.String())
}

// NamePrefix is the naming-convention prefix of dataset-access packages; the
// dataset a package wraps is named by whatever follows it.
const NamePrefix = "bob.db."

// DatasetName returns the name of the dataset that the package wraps: the
// package name with the NamePrefix stripped.
func (r *Recipe) DatasetName() string {
	return strings.TrimPrefix(r.Package.Name, NamePrefix)
}
