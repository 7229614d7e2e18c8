// Package bucket tallies the chords found while scanning MIDI files.
package bucket

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/util"
)

type Entry struct {
	Symbol  string
	Quality model.Quality
	Count   int
	// files the chord was heard in, ascending
	FileNums []uint32
}

type Buckets struct {
	dict    *chord.Dictionary
	acc     note.Accidental
	entries map[string]*Entry

	NumSonorities int
	NumUnmatched  int
}

func New(dict *chord.Dictionary, acc note.Accidental) *Buckets {
	return &Buckets{
		dict:    dict,
		acc:     acc,
		entries: make(map[string]*Entry),
	}
}

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// MaybePutChordInBuckets resolves notes and counts the chord. It reports
// whether the notes were counted.
func (b *Buckets) MaybePutChordInBuckets(fileNum uint32, notes note.Set) bool {
	// ignore really short or really long chords
	if notes.Len() < constants.MinChordSize || notes.Len() > constants.MaxChordSize {
		return false
	}

	b.NumSonorities += 1
	c, ok := b.dict.Find(notes)
	if !ok {
		b.NumUnmatched += 1
		return false
	}

	symbol := chord.ToString(c, b.acc)
	e, ok := b.entries[symbol]
	if !ok {
		e = &Entry{Symbol: symbol, Quality: c.Quality}
		b.entries[symbol] = e
	}
	e.Count += 1
	if n := len(e.FileNums); n == 0 || e.FileNums[n-1] != fileNum {
		e.FileNums = append(e.FileNums, fileNum)
	}
	return true
}

func (b *Buckets) ProcessMidiFile(fileNum uint32, path string) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	for _, s := range midi.GetSonorities(parsed) {
		b.MaybePutChordInBuckets(fileNum, s.Notes)
	}
	return nil
}

// ProcessAllMidiFiles scans files in file number order. Unreadable files
// are reported and skipped.
func (b *Buckets) ProcessAllMidiFiles(m model.FileNumToMidiPath) {
	keys := util.GetKeysSorted(m)
	for i, num := range keys {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(keys))
		if err := b.ProcessMidiFile(num, m[num]); err != nil {
			fmt.Printf("Skipping %v because: %v\n", m[num], err)
		}
	}
}

// RankSortEntries puts the most heard chords first, then orders by
// quality and symbol.
func RankSortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if qa, qb := chord.QualityNumber(a.Quality), chord.QualityNumber(b.Quality); qa != qb {
			return qa < qb
		}
		return a.Symbol < b.Symbol
	})
}

func (b *Buckets) Ranked() []Entry {
	res := make([]Entry, 0, len(b.entries))
	for _, e := range b.entries {
		res = append(res, *e)
	}
	RankSortEntries(res)
	return res
}
