package midi

import (
	"sort"

	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Sonority is the set of notes held at one instant of a file.
type Sonority struct {
	// microseconds from the start of the file
	Offset int64
	Notes  note.Set
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	key       uint8
}

func getNotes(pressed map[uint8]int64) note.Set {
	var res note.Set
	for key := range pressed {
		res.Add(note.Note(key))
	}
	return res
}

// GetSonorities merges all tracks and returns the held notes after every
// instant where something changed. Silent instants are dropped.
func GetSonorities(s *smf.SMF) []Sonority {
	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			msg := gomidi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					offset: s.TimeAt(absTicks),
					key:    key,
				})
			case msg.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: true,
					key:       key,
				})
			}
		}
	}

	// earlier first, note offs before note ons at the same instant
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].offset != reducedEvents[j].offset {
			return reducedEvents[i].offset < reducedEvents[j].offset
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	offsetToNotes := make(map[int64]note.Set)
	pressed := make(map[uint8]int64)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = evt.offset
		}
		offsetToNotes[evt.offset] = getNotes(pressed)
	}

	var res []Sonority
	for _, offset := range util.GetKeysSorted(offsetToNotes) {
		notes := offsetToNotes[offset]
		if notes.Len() > 0 {
			res = append(res, Sonority{Offset: offset, Notes: notes})
		}
	}
	return res
}
