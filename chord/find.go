package chord

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
)

// Find resolves the played notes to a single catalog chord. When the pitch
// classes are ambiguous the lowest played note picks the voicing.
func (d *Dictionary) Find(notes note.Set) (model.Chord, bool) {
	bottom, ok := notes.Bottom()
	if !ok {
		return model.Chord{}, false
	}

	chords := d.entries[CreateChordKey(notes)]
	if len(chords) == 0 {
		return model.Chord{}, false
	}
	if len(chords) == 1 {
		return chords[0], true
	}

	for _, c := range chords {
		if c.Bass.Class() == bottom.Class() {
			return c, true
		}
	}
	return model.Chord{}, false
}
