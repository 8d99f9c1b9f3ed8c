// Package cliutil holds the cobra plumbing shared by all recipetool
// subcommands: GNU-ish usage-error reporting and a help template that wraps
// to the terminal width.
package cliutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// OnlySubcommands is a cobra.PositionalArgs like cobra.NoArgs, but with an
// error message that names the offending argument and suggests corrections.
func OnlySubcommands(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	err := fmt.Errorf("invalid subcommand %q", args[0])
	if cmd.SuggestionsMinimumDistance <= 0 {
		cmd.SuggestionsMinimumDistance = 2
	}
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		err = fmt.Errorf("%w\nDid you mean one of these?\n\t%s",
			err, strings.Join(suggestions, "\n\t"))
	}
	return cmd.FlagErrorFunc()(cmd, err)
}

// RunSubcommands is a cobra.Command.RunE for commands that exist only to
// group subcommands.  Reaching it means the user didn't name a subcommand,
// which is a usage error, not a success.
func RunSubcommands(cmd *cobra.Command, args []string) error {
	cmd.SetOutput(cmd.ErrOrStderr())
	cmd.HelpFunc()(cmd, args)
	os.Exit(2)
	return nil
}

// WrapPositionalArgs routes a cobra.PositionalArgs' errors through
// FlagErrorFunc, so that positional-argument mistakes and flag mistakes are
// reported the same way.
func WrapPositionalArgs(inner cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return FlagErrorFunc(cmd, inner(cmd, args))
	}
}

// FlagErrorFunc is for (*cobra.Command).SetFlagErrorFunc.  It prints the
// usage error with a "See --help" pointer and exits 2 without returning, so
// that every error that does come out of (*cobra.Command).Execute is an
// execution error.
func FlagErrorFunc(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	errStr := strings.TrimRight(err.Error(), "\n")
	if strings.Contains(errStr, "\n") {
		// Multi-line error; insert a blank line before the "See --help".
		errStr += "\n"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\nSee '%s --help' for more information.\n",
		cmd.CommandPath(), errStr, cmd.CommandPath())
	os.Exit(2)
	return nil
}
