package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/catalog"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/spf13/cobra"
)

var (
	practiceOnly   bool
	withInversions bool
	withTensions   bool
)

func init() {
	catalogCmd.Flags().BoolVarP(&practiceOnly, "practice", "p", false, "only the default practice set")
	catalogCmd.Flags().BoolVarP(&withInversions, "inversions", "i", false, "list inversions too")
	catalogCmd.Flags().BoolVarP(&withTensions, "tensions", "t", false, "include chords with tensions")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists the known chords",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return err
		}
		f, acc, err := newFormatter()
		if err != nil {
			return err
		}

		sel := catalog.Selection{}
		if practiceOnly {
			sel = catalog.DefaultSelection()
		}
		sel.AddInversion = withInversions
		sel.AddTensions = withTensions

		for _, c := range sel.Chords(templates) {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d %-10s %v\n", chord.QualityNumber(c.Quality), f.ToString(c, acc), describe(c))
		}
		return nil
	},
}

func describe(c model.Chord) string {
	names := note.Map(c.Tones, func(n note.Note) string {
		return note.Name(n, false, note.Sharp)
	})
	res := strings.Join(names, " ")
	if c.Extensions.Len() > 0 {
		res += " + " + strings.Join(note.Map(c.Extensions, func(n note.Note) string {
			return note.Name(n, false, note.Sharp)
		}), " ")
	}
	return res
}
