package main

import (
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/bob-devel/recipetool/pkg/cliutil"
)

func init() {
	cmd := &cobra.Command{
		Use:   "render [flags] RECIPE_DIR >OUT_RECIPE.yml",
		Short: "Render a recipe against the current environment",
		Long: "Resolve a recipe's template variables from the current environment " +
			"and its pinning table, and print the resulting document.  Rendering " +
			"happens exactly once; nothing is remembered between runs, so the " +
			"output is a pure function of the recipe sources and the environment." +
			"\n\n" +
			"Recognized environment variables include BOB_PACKAGE_VERSION " +
			"(default 0.0.1), BOB_BUILD_NUMBER (default 0), BUILD_EGG (adds the " +
			"source-distribution step when set), and RECIPE_DIR.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := renderRecipe(args[0])
			if err != nil {
				return err
			}
			bs, err := yaml.Marshal(r)
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(bs); err != nil {
				return err
			}
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
