package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordex/note"
	"github.com/spf13/cobra"
)

var withOctave bool

func init() {
	nameCmd.Flags().BoolVarP(&withOctave, "octave", "o", false, "append the octave number")
	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:   "name <note>",
	Short: "Spells a note number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		f, acc, err := newFormatter()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), f.Namer.Name(note.Note(n), withOctave, acc))
		return nil
	},
}
