package cmd

import (
	"textutils/pkg/head"

	"github.com/spf13/cobra"
)

func newHeadCmd(a *app, use string) *cobra.Command {
	lines := newPositiveInt(head.DefaultLines, "line count")
	bytes := newPositiveInt(0, "byte count")

	c := &cobra.Command{
		Use:   use + " [-n LINES | -c BYTES] [FILE...]",
		Short: "Print the first lines of files",
		Long: `Print the first LINES lines (10 by default) or the first BYTES bytes of
each FILE. With no FILE, or when FILE is -, read standard input. With more
than one FILE, each is preceded by a "==> FILE <==" header.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := head.Config{Files: args, Lines: lines.value}
			if cmd.Flags().Changed("bytes") {
				cfg.Bytes = bytes.value
			}
			return head.Run(cfg, head.Streams{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}, a.logger)
		},
	}
	c.Flags().VarP(lines, "lines", "n", "number of lines to print")
	c.Flags().VarP(bytes, "bytes", "c", "number of bytes to print")
	c.MarkFlagsMutuallyExclusive("lines", "bytes")
	return c
}
