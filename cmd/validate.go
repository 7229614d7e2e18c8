package cmd

import (
	"fmt"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	validateRoot    int
	validateBass    int
	validateQuality string
	validateStrict  bool
	validateAdd9    bool
)

func init() {
	validateCmd.Flags().IntVarP(&validateRoot, "root", "r", 0, "root pitch class")
	validateCmd.Flags().IntVarP(&validateBass, "bass", "b", -1, "bass pitch class (default the root)")
	validateCmd.Flags().StringVarP(&validateQuality, "quality", "q", string(model.Major), "chord quality")
	validateCmd.Flags().BoolVar(&validateAdd9, "add9", false, "use the chord with an added ninth")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", true, "always check the bass note (default from CHORDEX_STRICT)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <notes...>",
	Short: "Checks notes against a chord",
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

		bass := validateBass
		if bass < 0 {
			bass = validateRoot
		}
		var extensions note.Set
		if validateAdd9 {
			extensions.Add(note.Note(validateRoot + 14))
		}
		c, ok := dict.ChordWith(note.Note(validateRoot), model.Quality(validateQuality), note.Note(bass), extensions)
		if !ok {
			return errors.Errorf("no %v chord on %v with bass %v and extensions %v in the catalog", validateQuality, validateRoot, bass, extensions)
		}

		strict := cfg.Strict
		if cmd.Flags().Changed("strict") {
			strict = validateStrict
		}

		f, acc, err := newFormatter()
		if err != nil {
			return err
		}
		verdict := "invalid"
		if chord.Validate(c, notes, strict) {
			verdict = "valid"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", f.ToString(c, acc), verdict)
		return nil
	},
}
