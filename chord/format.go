package chord

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
)

// QualitySymbol is the glyph written after the root. Major is written as
// nothing when skipMajor is set.
func QualitySymbol(q model.Quality, skipMajor bool) string {
	switch q {
	case model.Major:
		if skipMajor {
			return ""
		}
		return "Δ"
	case model.Minor:
		return "-"
	case model.Diminished:
		return "°"
	case model.Augmented:
		return "+"
	case model.Suspended4:
		return "sus4"
	case model.Suspended2:
		return "sus2"

	case model.Major7:
		return "Δ7"
	case model.Dominant7:
		return "7"
	case model.Minor7:
		return "-7"
	case model.HalfDiminished7:
		return "ø7"
	case model.Diminished7:
		return "o7"
	case model.MinorMajor7:
		return "−Δ7"
	case model.Augmented7:
		return "+7"
	case model.AugmentedMajor7:
		return "+Δ7"
	case model.Suspended7:
		return "sus7"

	case model.Major6:
		return "6"
	case model.Minor6:
		return "-6"
	}
	return ""
}

// QualityNumber is a stable ordinal for sorting and serialization, -1 for
// an unknown quality.
func QualityNumber(q model.Quality) int {
	switch q {
	case model.Major:
		return 0
	case model.Minor:
		return 1
	case model.Diminished:
		return 2
	case model.Augmented:
		return 3
	case model.Suspended4:
		return 4
	case model.Suspended2:
		return 5

	case model.Major7:
		return 6
	case model.Dominant7:
		return 7
	case model.Minor7:
		return 8
	case model.HalfDiminished7:
		return 9
	case model.Diminished7:
		return 10
	case model.MinorMajor7:
		return 11
	case model.Augmented7:
		return 12
	case model.AugmentedMajor7:
		return 13
	case model.Suspended7:
		return 14

	case model.Major6:
		return 15
	case model.Minor6:
		return 16
	}
	return -1
}

// Formatter renders chord symbols with a chosen note naming strategy.
type Formatter struct {
	Namer note.Namer
}

func (f Formatter) ToString(c model.Chord, acc note.Accidental) string {
	symbol := f.Namer.Name(c.Root, false, acc)
	symbol += QualitySymbol(c.Quality, true)
	if c.IsInversion() {
		symbol += "/" + f.Namer.Name(c.Bass, false, acc)
	}
	if isAdd9(c) {
		symbol += "add9"
	}
	return symbol
}

// ToString renders c with note.DefaultNamer.
func ToString(c model.Chord, acc note.Accidental) string {
	return Formatter{Namer: note.DefaultNamer}.ToString(c, acc)
}

// a single extension whose pitch class, lifted an octave, sits 14
// semitones above the root. Bb and B roots never qualify.
func isAdd9(c model.Chord) bool {
	if c.Extensions.Len() != 1 {
		return false
	}
	ext, _ := c.Extensions.Bottom()
	return int(ext.Class())+12-int(c.Root) == 14
}
