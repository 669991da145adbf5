package cmd

import (
	"textutils/pkg/textio"
	"textutils/pkg/uniq"

	"github.com/spf13/cobra"
)

func newUniqCmd(a *app, use string) *cobra.Command {
	var cfg uniq.Config

	c := &cobra.Command{
		Use:   use + " [-c] [INPUT [OUTPUT]]",
		Short: "Collapse adjacent duplicate lines",
		Long: `Read INPUT (standard input when omitted or -) and write each run of
identical adjacent lines once, to OUTPUT when given or standard output.
With -c, prefix each line with the length of its run.`,
		Args: validArgs(cobra.MaximumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Input = textio.Stdin
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if len(args) > 1 {
				cfg.Output = args[1]
			}
			return uniq.Run(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
		},
	}
	c.Flags().BoolVarP(&cfg.Count, "count", "c", false, "prefix lines with the number of occurrences")
	return c
}
