package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bob-devel/recipetool/pkg/recipe"
)

func goodRecipe() *recipe.Recipe {
	return &recipe.Recipe{
		Package: recipe.Package{Name: "bob.db.atnt", Version: "0.0.1"},
		Build: recipe.Build{
			RunExports: []string{"bob.db.atnt >=0.0.1,<0.1"},
			Script:     []recipe.Step{{Run: "python -m pip install . -vv"}},
		},
		Test: recipe.Test{
			Imports: []string{"bob.db.atnt"},
			Commands: []recipe.Step{
				{Run: "sphinx-build -aEW ${PREFIX}/share/doc/bob.db.atnt/doc sphinx"},
				{Run: "conda inspect linkages -p $PREFIX bob.db.atnt", Selector: "not win"},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, goodRecipe().Validate())

	breakages := map[string]func(*recipe.Recipe){
		"empty-name":    func(r *recipe.Recipe) { r.Package.Name = "" },
		"empty-version": func(r *recipe.Recipe) { r.Package.Version = "" },
		"empty-script":  func(r *recipe.Recipe) { r.Build.Script = nil },
		"import-mismatch": func(r *recipe.Recipe) {
			r.Test.Imports = []string{"bob.db.mobio"}
		},
		"docs-mismatch": func(r *recipe.Recipe) {
			r.Test.Commands[0].Run = "sphinx-build -aEW ${PREFIX}/share/doc/bob.db.mobio/doc sphinx"
		},
		"foreign-run-export": func(r *recipe.Recipe) {
			r.Build.RunExports = []string{"bob.db.mobio >=1.0,<1.1"}
		},
		"bad-selector": func(r *recipe.Recipe) {
			r.Test.Commands[1].Selector = "plan9"
		},
	}
	for tcName, breakage := range breakages {
		breakage := breakage
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			r := goodRecipe()
			breakage(r)
			assert.Error(t, r.Validate())
		})
	}
}
