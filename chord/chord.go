package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
)

// CreateChordKey renders the pitch classes of notes as "0-4-7". Octaves and
// order do not matter.
func CreateChordKey(notes note.Set) string {
	classes := note.Map(notes.Classes(), func(n note.Note) string {
		return fmt.Sprintf("%v", int(n))
	})
	return strings.Join(classes, "-")
}

// Signature is the dictionary key for a template: tones and extensions
// together.
func Signature(t model.ChordTemplate) string {
	key := t.Tones.Classes()
	t.Extensions.Each(func(n note.Note) {
		key.Add(n.Class())
	})
	return CreateChordKey(key)
}

// Dictionary maps signatures to every chord sharing them. It is immutable
// once built and safe for concurrent readers.
type Dictionary struct {
	templates []model.ChordTemplate
	entries   map[string][]model.Chord
}

// NewDictionary indexes templates. Each bucket holds root position chords
// first, then inversions, both in catalog order.
func NewDictionary(templates []model.ChordTemplate) *Dictionary {
	d := &Dictionary{
		templates: templates,
		entries:   make(map[string][]model.Chord),
	}

	for _, t := range templates {
		d.add(t, t.Root)
	}

	for _, t := range templates {
		t.Tones.Each(func(n note.Note) {
			if n.Class() != t.Root {
				d.add(t, n.Class())
			}
		})
	}

	return d
}

func (d *Dictionary) add(t model.ChordTemplate, bass note.Note) {
	key := Signature(t)
	d.entries[key] = append(d.entries[key], model.Chord{ChordTemplate: t, Bass: bass})
}

// Lookup returns the bucket for key. The slice must not be modified.
func (d *Dictionary) Lookup(key string) []model.Chord {
	return d.entries[key]
}

func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len is the number of distinct signatures.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

func (d *Dictionary) Templates() []model.ChordTemplate {
	return d.templates
}

// Chord returns the catalog chord with the given root and quality and no
// extensions, voiced over bass.
func (d *Dictionary) Chord(root note.Note, q model.Quality, bass note.Note) (model.Chord, bool) {
	return d.ChordWith(root, q, bass, note.Set{})
}

// ChordWith is Chord for the template whose extensions reduce to the same
// pitch classes as extensions.
func (d *Dictionary) ChordWith(root note.Note, q model.Quality, bass note.Note, extensions note.Set) (model.Chord, bool) {
	root, bass = root.Class(), bass.Class()
	want := extensions.Classes()
	for _, t := range d.templates {
		if t.Root != root || t.Quality != q || !t.Extensions.Classes().Equal(want) {
			continue
		}
		if bass != root && !t.Tones.Classes().Has(bass) {
			return model.Chord{}, false
		}
		return model.Chord{ChordTemplate: t, Bass: bass}, true
	}
	return model.Chord{}, false
}
