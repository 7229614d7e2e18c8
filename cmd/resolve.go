package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <notes...>",
	Short: "Names the chord formed by notes",
	Long:  `Names the chord formed by notes, e.g. "chordex resolve 64 67 72" prints C/E.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}
		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		f, acc, err := newFormatter()
		if err != nil {
			return err
		}

		c, ok := dict.Find(notes)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no match")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), f.ToString(c, acc))
		return nil
	},
}
