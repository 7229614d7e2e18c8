package catalog

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"golang.org/x/exp/slices"
)

// Selection picks a practice subset of the catalog.
type Selection struct {
	Qualities    []model.Quality
	Roots        []note.Note
	AddInversion bool
	AddTensions  bool
}

// DefaultSelection is major triads on the natural roots, root position only.
func DefaultSelection() Selection {
	return Selection{
		Qualities: []model.Quality{model.Major},
		Roots:     []note.Note{0, 2, 4, 5, 7, 9, 11},
	}
}

// Select returns the indexes of templates matching sel. An empty
// Qualities or Roots list matches everything.
func Select(templates []model.ChordTemplate, sel Selection) []int {
	var res []int
	for i, t := range templates {
		if len(sel.Qualities) > 0 && !slices.Contains(sel.Qualities, t.Quality) {
			continue
		}
		if len(sel.Roots) > 0 && !slices.Contains(sel.Roots, t.Root) {
			continue
		}
		if !sel.AddTensions && t.Extensions.Len() > 0 {
			continue
		}
		res = append(res, i)
	}
	return res
}

// Chords expands the selected templates, adding one chord per inversion
// when AddInversion is set.
func (sel Selection) Chords(templates []model.ChordTemplate) []model.Chord {
	var res []model.Chord
	for _, i := range Select(templates, sel) {
		t := templates[i]
		res = append(res, model.Chord{ChordTemplate: t, Bass: t.Root})
		if !sel.AddInversion {
			continue
		}
		t.Tones.Each(func(n note.Note) {
			if n.Class() != t.Root {
				res = append(res, model.Chord{ChordTemplate: t, Bass: n.Class()})
			}
		})
	}
	return res
}
