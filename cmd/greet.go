package cmd

import (
	"textutils/pkg/greet"

	"github.com/spf13/cobra"
)

func newHelloCmd(_ *app, use string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Print a greeting",
		Args:  validArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return greet.Hello(cmd.OutOrStdout())
		},
	}
}

func newTrueCmd(_ *app, use string) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              "Do nothing, successfully",
		DisableFlagParsing: true,
		RunE: func(*cobra.Command, []string) error {
			return greet.True()
		},
	}
}

func newFalseCmd(_ *app, use string) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              "Do nothing, unsuccessfully",
		DisableFlagParsing: true,
		RunE: func(*cobra.Command, []string) error {
			return &ExitError{Code: 1, Err: greet.False()}
		},
	}
}
