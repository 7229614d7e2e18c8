package note

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Note is an absolute pitch number. Middle C (C4) is 60.
type Note int

// Class reduces the note to a pitch class in 0..11.
func (n Note) Class() Note {
	return ((n % 12) + 12) % 12
}

// Octave follows the convention that octave 4 begins at 60.
func (n Note) Octave() int {
	o := int(n) / 12
	if n < 0 && n%12 != 0 {
		o--
	}
	return o - 1
}

// Set is an ascending, duplicate-free collection of notes.
// The zero value is an empty set ready to use.
type Set struct {
	notes []Note
}

func NewSet(notes ...Note) Set {
	var s Set
	for _, n := range notes {
		s.Add(n)
	}
	return s
}

// Add inserts n keeping the set sorted. Adding an existing note is a no-op.
func (s *Set) Add(n Note) *Set {
	i, found := slices.BinarySearch(s.notes, n)
	if !found {
		s.notes = slices.Insert(s.notes, i, n)
	}
	return s
}

func (s Set) Has(n Note) bool {
	_, found := slices.BinarySearch(s.notes, n)
	return found
}

// Delete removes n and reports whether it was present.
func (s *Set) Delete(n Note) bool {
	i, found := slices.BinarySearch(s.notes, n)
	if !found {
		return false
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return true
}

func (s *Set) Clear() {
	s.notes = nil
}

func (s Set) Len() int {
	return len(s.notes)
}

// Values returns the notes in ascending order. The slice is a copy.
func (s Set) Values() []Note {
	return slices.Clone(s.notes)
}

func (s Set) Each(fn func(n Note)) {
	for _, n := range s.notes {
		fn(n)
	}
}

func (s Set) Filter(pred func(n Note) bool) []Note {
	var res []Note
	for _, n := range s.notes {
		if pred(n) {
			res = append(res, n)
		}
	}
	return res
}

// Map applies fn to every note of s in ascending order.
func Map[T any](s Set, fn func(n Note) T) []T {
	res := make([]T, 0, len(s.notes))
	for _, n := range s.notes {
		res = append(res, fn(n))
	}
	return res
}

// Bottom returns the lowest note, or false when the set is empty.
func (s Set) Bottom() (Note, bool) {
	if len(s.notes) == 0 {
		return 0, false
	}
	return s.notes[0], true
}

// Top returns the highest note, or false when the set is empty.
func (s Set) Top() (Note, bool) {
	if len(s.notes) == 0 {
		return 0, false
	}
	return s.notes[len(s.notes)-1], true
}

// Classes returns the set of pitch classes sounding in s.
func (s Set) Classes() Set {
	var res Set
	for _, n := range s.notes {
		res.Add(n.Class())
	}
	return res
}

func (s Set) Clone() Set {
	return Set{notes: slices.Clone(s.notes)}
}

func (s Set) Equal(other Set) bool {
	return slices.Equal(s.notes, other.notes)
}

func (s Set) String() string {
	parts := Map(s, func(n Note) string { return fmt.Sprint(int(n)) })
	return "Set(" + strings.Join(parts, ", ") + ")"
}

func (s Set) MarshalJSON() ([]byte, error) {
	ints := Map(s, func(n Note) int { return int(n) })
	return json.Marshal(ints)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	s.Clear()
	for _, v := range ints {
		s.Add(Note(v))
	}
	return nil
}
