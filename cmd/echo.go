package cmd

import (
	"textutils/pkg/echo"

	"github.com/spf13/cobra"
)

func newEchoCmd(_ *app, use string) *cobra.Command {
	var cfg echo.Config

	c := &cobra.Command{
		Use:   use + " [-n] TEXT...",
		Short: "Print text",
		Long:  `Print the TEXT arguments separated by single spaces, followed by a newline unless -n is given.`,
		Args:  validArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Text = args
			return echo.Run(cfg, cmd.OutOrStdout())
		},
	}
	c.Flags().BoolVarP(&cfg.OmitNewline, "no-newline", "n", false, "do not print the trailing newline")
	return c
}
