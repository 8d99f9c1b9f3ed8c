package main

import (
	"io/fs"
	"path/filepath"

	"github.com/bob-devel/recipetool/pkg/recipe"
)

// renderRecipe renders the recipe in recipeDir against the live environment.
// RECIPE_DIR defaults to recipeDir itself when the caller's environment
// doesn't set it, and is made absolute either way so that the `cd
// {{ projectDir }}` step lands in the right place no matter where the tool
// was started from.
func renderRecipe(recipeDir string) (*recipe.Recipe, error) {
	env := recipe.OSEnviron()
	if env["RECIPE_DIR"] == "" {
		env["RECIPE_DIR"] = recipeDir
	}
	if abs, err := filepath.Abs(env["RECIPE_DIR"]); err == nil {
		env["RECIPE_DIR"] = abs
	}
	ret, err := recipe.RenderFile(recipeDir, env)
	if err != nil {
		return nil, &fs.PathError{
			Op:   "render recipe",
			Path: recipeDir,
			Err:  err,
		}
	}
	return ret, nil
}
