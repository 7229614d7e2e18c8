package cmd

import (
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/catalog"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/config"
	"github.com/jsphweid/chordex/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cfg config.Config

var accidentalFlag string

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Names chords",
	Long:  `Names the chord formed by a set of notes, validates voicings and scans MIDI files for chords.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if accidentalFlag != "" {
			cfg.Accidental = accidentalFlag
		}
		_, err = cfg.AccidentalPreference()
		return err
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&accidentalFlag, "accidental", "a", "", "sharp, flat or either (default from CHORDEX_ACCIDENTAL)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func loadDictionary() (*chord.Dictionary, error) {
	templates, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return chord.NewDictionary(templates), nil
}

// formatterFor spells Either with a randomly seeded chooser, like the
// practice app does.
func formatterFor(acc note.Accidental) (chord.Formatter, error) {
	if acc != note.Either {
		return chord.Formatter{Namer: note.DefaultNamer}, nil
	}
	seed, err := note.RandomSeed()
	if err != nil {
		return chord.Formatter{}, err
	}
	return chord.Formatter{Namer: note.Namer{Chooser: note.NewRandomChooser(seed)}}, nil
}

func newFormatter() (chord.Formatter, note.Accidental, error) {
	acc, err := cfg.AccidentalPreference()
	if err != nil {
		return chord.Formatter{}, acc, err
	}
	f, err := formatterFor(acc)
	return f, acc, err
}

// parseNotes accepts note numbers separated by spaces or commas.
func parseNotes(args []string) (note.Set, error) {
	var res note.Set
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return note.Set{}, errors.Errorf("%q is not a note number", field)
			}
			res.Add(note.Note(n))
		}
	}
	return res, nil
}
