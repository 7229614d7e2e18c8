package model

import "github.com/jsphweid/chordex/note"

type Quality string

const (
	Major           Quality = "major"
	Minor           Quality = "minor"
	Diminished      Quality = "diminished"
	Augmented       Quality = "augmented"
	Suspended4      Quality = "suspended4"
	Suspended2      Quality = "suspended2"
	Major7          Quality = "major7"
	Dominant7       Quality = "dominant7"
	Minor7          Quality = "minor7"
	HalfDiminished7 Quality = "half-diminished7"
	Diminished7     Quality = "diminished7"
	MinorMajor7     Quality = "minor-major7"
	Augmented7      Quality = "augmented7"
	AugmentedMajor7 Quality = "augmented-major7"
	Suspended7      Quality = "suspended7"
	Major6          Quality = "major6"
	Minor6          Quality = "minor6"
)

// AllQualities in ordinal order.
var AllQualities = []Quality{
	Major, Minor, Diminished, Augmented, Suspended4, Suspended2,
	Major7, Dominant7, Minor7, HalfDiminished7, Diminished7,
	MinorMajor7, Augmented7, AugmentedMajor7, Suspended7,
	Major6, Minor6,
}

func (q Quality) Valid() bool {
	for _, v := range AllQualities {
		if q == v {
			return true
		}
	}
	return false
}

// ChordTemplate is a catalog entry. Tones are stored as a root position
// voicing; compare them by pitch class.
type ChordTemplate struct {
	Tones      note.Set
	Quality    Quality
	Root       note.Note
	Extensions note.Set
}

// Chord is a template with the pitch class meant to sound lowest.
// Chords handed out by a dictionary share their sets and must not be mutated.
type Chord struct {
	ChordTemplate
	Bass note.Note
}

func (c Chord) IsInversion() bool {
	return c.Bass != c.Root
}
