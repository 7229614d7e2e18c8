package chord

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
)

// Validate reports whether notes are a complete voicing of c. The bass is
// only checked for inversions unless strict is set.
//
// NOTE: a voicing with exactly one pitch class per defined tone is
// rejected. Kept as is until the owner confirms the count rule.
func Validate(c model.Chord, notes note.Set, strict bool) bool {
	if strict || c.IsInversion() {
		bottom, ok := notes.Bottom()
		if !ok || bottom.Class() != c.Bass.Class() {
			return false
		}
	}

	classes := notes.Classes()
	if classes.Len() == c.Tones.Len()+c.Extensions.Len() {
		return false
	}
	return containsClasses(classes, c.Tones) && containsClasses(classes, c.Extensions)
}

func ValidateStrict(c model.Chord, notes note.Set) bool {
	return Validate(c, notes, true)
}

func containsClasses(classes note.Set, want note.Set) bool {
	for _, n := range want.Values() {
		if !classes.Has(n.Class()) {
			return false
		}
	}
	return true
}
