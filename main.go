// Command recipetool renders, lints, and runs the build recipes of dataset
// packages, and answers queries about the AT&T/ORL face database that the
// reference recipe packages.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bob-devel/recipetool/pkg/cliutil"
)

var argparser = &cobra.Command{
	Use:   "recipetool {[flags]|SUBCOMMAND...}",
	Short: "Render and run dataset-package build recipes",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,

	SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
	SilenceUsage:  true, // our FlagErrorFunc will handle it
}

var logger = logrus.New()

func init() {
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().Var(&logLevelFlag{Level: logrus.InfoLevel, logger: logger}, "log-level",
		"Log `LEVEL` (error, warn, info, debug)")
}

func main() {
	logger.SetLevel(logrus.InfoLevel)
	dlog.SetFallbackLogger(dlog.WrapLogrus(logger))
	ctx := context.Background()

	if err := argparser.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(argparser.ErrOrStderr(), "%s: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
