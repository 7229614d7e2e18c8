// Package catalog loads the ordered list of chord templates that the
// dictionary is built from.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/pkg/errors"
)

//go:embed chords.json
var defaultChords []byte

// Record is one catalog entry as it appears in the data file.
type Record struct {
	Tones      []note.Note   `json:"tones"`
	Quality    model.Quality `json:"quality"`
	Root       note.Note     `json:"root"`
	Extensions []note.Note   `json:"extensions"`
}

type file struct {
	AllChords []Record `json:"allChords"`
}

func (r Record) Template() model.ChordTemplate {
	return model.ChordTemplate{
		Tones:      note.NewSet(r.Tones...),
		Quality:    r.Quality,
		Root:       r.Root.Class(),
		Extensions: note.NewSet(r.Extensions...),
	}
}

// Load reads templates in file order. Only the quality is checked, the
// rest of the data is trusted.
func Load(r io.Reader) ([]model.ChordTemplate, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "could not decode catalog")
	}

	res := make([]model.ChordTemplate, 0, len(f.AllChords))
	for i, rec := range f.AllChords {
		if !rec.Quality.Valid() {
			return nil, errors.Errorf("catalog entry %d has unknown quality %q", i, rec.Quality)
		}
		res = append(res, rec.Template())
	}
	return res, nil
}

func LoadFile(path string) ([]model.ChordTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open catalog %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded catalog.
func Default() []model.ChordTemplate {
	res, err := Load(bytes.NewReader(defaultChords))
	if err != nil {
		panic("embedded catalog is broken: " + err.Error())
	}
	return res
}

// Open loads path, or the embedded catalog when path is empty.
func Open(path string) ([]model.ChordTemplate, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
