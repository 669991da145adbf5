package cmd

import (
	"fmt"

	"textutils/pkg/textio"
	"textutils/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd builds "textutils version", which prints the build banner
// or, with --short, the bare version number.
func newVersionCmd() *cobra.Command {
	var short bool
	c := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Long:  `Print the version, commit, build time and Go toolchain of the textutils binaries.`,
		Args:  validArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			line := info.String(cmd.Root().Name())
			if short {
				line = info.Version
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return textio.NewError(textio.IOError, "", "", err)
		},
	}
	c.Flags().BoolVarP(&short, "short", "s", false, "print the version number only")
	return c
}
