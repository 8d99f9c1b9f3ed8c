package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bob-devel/recipetool/pkg/atnt"
	"github.com/bob-devel/recipetool/pkg/cliutil"
)

func init() {
	var flags struct {
		Directory string
		Extension string
		SelfTest  bool
	}
	cmd := &cobra.Command{
		Use:   "checkfiles [flags]",
		Short: "Check that the database image files exist on disk",
		Long: "Go through the whole database and report every image file that is " +
			"missing from the given directory.  Missing files are reported, not " +
			"fatal: the command only errors when it cannot look at the directory " +
			"at all.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var db atnt.Database
			files, err := db.Objects(atnt.Query{})
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if flags.SelfTest {
				out = io.Discard
			}
			missing := 0
			for _, file := range files {
				path := file.MakePath(flags.Directory, flags.Extension)
				if _, err := os.Stat(path); err != nil {
					fmt.Fprintf(out, "Cannot find file %q\n", path)
					missing++
				}
			}
			if missing > 0 {
				fmt.Fprintf(out, "%d files (out of %d) were not found at %q\n",
					missing, len(files), flags.Directory)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.Directory, "directory", "d", "",
		"The `DIR` holding the database images")
	cmd.Flags().StringVarP(&flags.Extension, "extension", "e", ".pgm",
		"The filename `EXT` of the database images")
	cmd.Flags().BoolVar(&flags.SelfTest, "self-test", false, "")
	if err := cmd.Flags().MarkHidden("self-test"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("directory"); err != nil {
		panic(err)
	}
	argparserDB.AddCommand(cmd)
}
