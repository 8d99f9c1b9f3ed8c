package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bob-devel/recipetool/pkg/atnt"
	"github.com/bob-devel/recipetool/pkg/cliutil"
)

func init() {
	var flags struct {
		Directory string
		Extension string
		Groups    []string
		Purposes  []string
		SelfTest  bool
	}
	cmd := &cobra.Command{
		Use:   "dumplist [flags]",
		Short: "Dump a list of database files matching your criteria",
		Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var db atnt.Database
			files, err := db.Objects(atnt.Query{
				Groups:   toGroups(flags.Groups),
				Purposes: toPurposes(flags.Purposes),
			})
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if flags.SelfTest {
				out = io.Discard
			}
			for _, file := range files {
				fmt.Fprintln(out, file.MakePath(flags.Directory, flags.Extension))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.Directory, "directory", "d", "",
		"Prepend `DIR` to every entry returned")
	cmd.Flags().StringVarP(&flags.Extension, "extension", "e", "",
		"Append `EXT` to every entry returned")
	cmd.Flags().StringSliceVarP(&flags.Groups, "groups", "g", nil,
		"Limit the output to these `GROUPS` (world, dev)")
	cmd.Flags().StringSliceVarP(&flags.Purposes, "purposes", "p", nil,
		"Limit the output to these `PURPOSES` (enrol, probe)")
	cmd.Flags().BoolVar(&flags.SelfTest, "self-test", false, "")
	if err := cmd.Flags().MarkHidden("self-test"); err != nil {
		panic(err)
	}
	argparserDB.AddCommand(cmd)
}

func toGroups(strs []string) []atnt.Group {
	ret := make([]atnt.Group, len(strs))
	for i, str := range strs {
		ret[i] = atnt.Group(str)
	}
	return ret
}

func toPurposes(strs []string) []atnt.Purpose {
	ret := make([]atnt.Purpose, len(strs))
	for i, str := range strs {
		ret[i] = atnt.Purpose(str)
	}
	return ret
}
