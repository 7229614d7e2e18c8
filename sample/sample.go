package sample

import (
	"io"

	"github.com/jsphweid/chordex/note"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 960

// Create writes each chord as a block of notes lasting ticksPerChord.
// Notes outside the MIDI range are left out.
func Create(chords []note.Set, ticksPerChord uint32, velocity uint8) *smf.SMF {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var track smf.Track
	for _, c := range chords {
		keys := playable(c)
		if len(keys) == 0 {
			continue
		}
		for _, key := range keys {
			track.Add(0, midi.NoteOn(0, key, velocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = ticksPerChord
			}
			track.Add(delta, midi.NoteOff(0, key))
		}
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return res
}

func Write(w io.Writer, chords []note.Set, ticksPerChord uint32) error {
	s := Create(chords, ticksPerChord, 100)
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}

func playable(notes note.Set) []uint8 {
	var res []uint8
	notes.Each(func(n note.Note) {
		if n >= 0 && n <= 127 {
			res = append(res, uint8(n))
		}
	})
	return res
}
