package main

import (
	"github.com/spf13/cobra"

	"github.com/bob-devel/recipetool/pkg/cliutil"
	"github.com/bob-devel/recipetool/pkg/phase"
)

func init() {
	var argPlatform string
	cmd := &cobra.Command{
		Use:   "test [flags] RECIPE_DIR",
		Short: "Run a recipe's test phase",
		Long: "Render the recipe and execute its test commands in order: the unit " +
			"tests with coverage, the documentation and doctest builds, and the " +
			"platform-conditional linkage inspections.  The commands are " +
			"independent, but the first failure still aborts the phase.",
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
				Name:     "test",
				Dir:      args[0],
				Platform: argPlatform,
			}
			return ph.Run(cmd.Context(), r.Test.Commands)
		},
	}
	cmd.Flags().StringVar(&argPlatform, "platform", "",
		"Evaluate selectors for `PLATFORM` (linux, osx, win) instead of the host")
	argparser.AddCommand(cmd)
}
