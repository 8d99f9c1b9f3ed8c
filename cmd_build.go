package main

import (
	"github.com/spf13/cobra"

	"github.com/bob-devel/recipetool/pkg/cliutil"
	"github.com/bob-devel/recipetool/pkg/phase"
)

func init() {
	var argPlatform string
	cmd := &cobra.Command{
		Use:   "build [flags] RECIPE_DIR",
		Short: "Run a recipe's build phase",
		Long: "Render the recipe and execute its build script in order: the " +
			"optional source-distribution step, the package install, and the " +
			"dataset download.  The first failing command aborts the build; there " +
			"is no retry and no rollback.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := renderRecipe(args[0])
			if err != nil {
				return err
			}
			if err := r.Validate(); err != nil {
				return err
			}
			ph := phase.Phase{
				Name:     "build",
				Dir:      args[0],
				Platform: argPlatform,
			}
			return ph.Run(cmd.Context(), r.Build.Script)
		},
	}
	cmd.Flags().StringVar(&argPlatform, "platform", "",
		"Evaluate selectors for `PLATFORM` (linux, osx, win) instead of the host")
	argparser.AddCommand(cmd)
}
