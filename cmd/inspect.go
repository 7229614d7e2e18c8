package cmd

import (
	"fmt"

	"github.com/jsphweid/chordex/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <notes...>",
	Short: "Shows every chord sharing the notes' pitch classes",
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

		key := chord.CreateChordKey(notes)
		fmt.Fprintf(cmd.OutOrStdout(), "key: %v\n", key)
		for i, c := range dict.Lookup(key) {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %v (bass %v)\n", i, f.ToString(c, acc), c.Bass)
		}
		return nil
	},
}
