package main

import (
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/bob-devel/recipetool/pkg/cliutil"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lint [flags] RECIPE_DIR",
		Short: "Check a recipe for consistency",
		Long: "Render a recipe and verify its cross-field invariants: the declared " +
			"package name has to match the import name exercised by the test phase " +
			"and the directory referenced by the documentation builds, run_exports " +
			"may only pin the package itself, and every platform selector has to " +
			"be well-formed.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := renderRecipe(args[0])
			if err != nil {
				return err
			}
			if err := r.Validate(); err != nil {
				return err
			}
			dlog.Infof(cmd.Context(), "%s: recipe for %s version %s is consistent",
				args[0], r.Package.Name, r.Package.Version)
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
