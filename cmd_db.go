package main

import (
	"github.com/spf13/cobra"

	"github.com/bob-devel/recipetool/pkg/cliutil"
)

var argparserDB = &cobra.Command{
	Use:   "db {[flags]|SUBCOMMAND...}",
	Short: "Query the AT&T/ORL face database",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserDB)
}
