package recipe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"sigs.k8s.io/yaml"

	"github.com/bob-devel/recipetool/pkg/pin"
)

// An Environ is an immutable snapshot of environment variables.  Rendering
// consults the snapshot rather than the live environment so that a render is
// a pure function of its inputs.
type Environ map[string]string

// OSEnviron snapshots the current process environment.
func OSEnviron() Environ {
	env := make(Environ)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

// Get returns the value of the named variable, or "" if it is unset.
func (env Environ) Get(name string) string {
	return env[name]
}

// GetOr returns the value of the named variable, or fallback if it is unset
// or empty.
func (env Environ) GetOr(name, fallback string) string {
	if val := env[name]; val != "" {
		return val
	}
	return fallback
}

// Render evaluates the recipe template src against the environment snapshot
// and the pinning table, and decodes the result.  name is used for error
// messages only.
//
// Template functions:
//
//	env NAME                          variable value, or "" when unset
//	envOr NAME DEFAULT                variable value, with a literal fallback
//	pin NAME                          constraint from the pinning table
//	pinSubpackage NAME VERSION [MAX]  run_exports constraint (see pin.Subpackage)
//	datasetName NAME                  NAME with the "bob.db." prefix stripped
//	projectDir                        parent directory of $RECIPE_DIR, or "."
func Render(name string, src []byte, env Environ, pins *pin.Table) (*Recipe, error) {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"env":   env.Get,
		"envOr": env.GetOr,
		"pin": func(depName string) (string, error) {
			constraint, ok := pins.Get(depName)
			if !ok {
				return "", fmt.Errorf("no pin for dependency %q", depName)
			}
			return constraint, nil
		},
		"pinSubpackage": func(pkgName, version string, maxPin ...string) (string, error) {
			max := ""
			switch len(maxPin) {
			case 0:
			case 1:
				max = maxPin[0]
			default:
				return "", fmt.Errorf("pinSubpackage: too many arguments")
			}
			return pin.Subpackage(pkgName, version, max)
		},
		"datasetName": func(pkgName string) string {
			return strings.TrimPrefix(pkgName, NamePrefix)
		},
		"projectDir": func() string {
			if dir := env.Get("RECIPE_DIR"); dir != "" {
				return filepath.Dir(filepath.Clean(dir))
			}
			return "."
		},
	}).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("recipe %s: %w", name, err)
	}

	var ret Recipe
	if err := yaml.UnmarshalStrict(buf.Bytes(), &ret); err != nil {
		return nil, fmt.Errorf("recipe %s: %w", name, err)
	}
	return &ret, nil
}

// RenderFile is Render for a recipe directory: it reads DIR/meta.yaml.tmpl
// and DIR/pins.yaml and renders the former against the latter.
func RenderFile(recipeDir string, env Environ) (*Recipe, error) {
	metaFile := filepath.Join(recipeDir, "meta.yaml.tmpl")
	src, err := os.ReadFile(metaFile)
	if err != nil {
		return nil, err
	}
	pinsBytes, err := os.ReadFile(filepath.Join(recipeDir, "pins.yaml"))
	if err != nil {
		return nil, err
	}
	pins, err := pin.ParseTable(pinsBytes)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", recipeDir, err)
	}
	return Render(metaFile, src, env, pins)
}
