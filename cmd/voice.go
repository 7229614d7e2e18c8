package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	voiceOut   string
	voiceTicks uint32
)

func init() {
	voiceCmd.Flags().StringVarP(&voiceOut, "out", "o", "chords.mid", "midi file to write")
	voiceCmd.Flags().Uint32Var(&voiceTicks, "ticks", constants.DefaultTicksPerChord, "length of each chord in ticks")
	rootCmd.AddCommand(voiceCmd)
}

var voiceCmd = &cobra.Command{
	Use:   "voice <chord> [chord...]",
	Short: "Writes chords to a midi file",
	Long:  `Writes chords to a midi file. Each argument is one chord given as comma separated note numbers, e.g. "chordex voice 60,64,67 64,67,72".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var chords []note.Set
		for _, arg := range args {
			notes, err := parseNotes([]string{arg})
			if err != nil {
				return err
			}
			chords = append(chords, notes)
		}

		f, err := os.Create(voiceOut)
		if err != nil {
			return errors.Wrap(err, "Couldn't open file")
		}
		defer f.Close()

		if err := sample.Write(f, chords, voiceTicks); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v chords to %v\n", len(chords), voiceOut)
		return nil
	},
}
