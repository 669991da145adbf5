package cmd

import (
	"textutils/pkg/wc"

	"github.com/spf13/cobra"
)

func newWcCmd(a *app, use string) *cobra.Command {
	var cfg wc.Config

	c := &cobra.Command{
		Use:   use + " [-lwcm] [FILE...]",
		Short: "Count lines, words, bytes and characters",
		Long: `Print newline, word and byte counts for each FILE, and a total row when
more than one FILE is given. With no FILE, or when FILE is -, read standard
input. Selecting any of -l, -w, -c or -m prints only those counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Files = args
			_, err := wc.Run(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
			return err
		},
	}
	c.Flags().BoolVarP(&cfg.Lines, "lines", "l", false, "print the newline count")
	c.Flags().BoolVarP(&cfg.Words, "words", "w", false, "print the word count")
	c.Flags().BoolVarP(&cfg.Bytes, "bytes", "c", false, "print the byte count")
	c.Flags().BoolVarP(&cfg.Chars, "chars", "m", false, "print the character count")
	c.MarkFlagsMutuallyExclusive("bytes", "chars")
	return c
}
