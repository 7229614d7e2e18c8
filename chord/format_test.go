package chord

import (
	"strings"
	"testing"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/stretchr/testify/assert"
)

func TestQualitySymbol(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", QualitySymbol(model.Major, true))
	assert.Equal("Δ", QualitySymbol(model.Major, false))
	assert.Equal("-", QualitySymbol(model.Minor, true))
	assert.Equal("ø7", QualitySymbol(model.HalfDiminished7, true))
	assert.Equal("−Δ7", QualitySymbol(model.MinorMajor7, true))
	assert.Equal("", QualitySymbol(model.Quality("power"), true))
}

func TestQualityNumberIsOrdinal(t *testing.T) {
	for i, q := range model.AllQualities {
		assert.Equal(t, i, QualityNumber(q), string(q))
	}
	assert.Equal(t, -1, QualityNumber(model.Quality("power")))
}

func TestToStringAdd9(t *testing.T) {
	cases := []struct {
		tmpl model.ChordTemplate
		acc  note.Accidental
		want string
	}{
		{template(model.Major, 0, []note.Note{0, 4, 7}, 14), note.Sharp, "Cadd9"},
		{template(model.Minor, 9, []note.Note{9, 12, 16}, 23), note.Sharp, "A-add9"},
		{template(model.Major, 10, []note.Note{10, 14, 17}, 24), note.Flat, "Bb"},
		{template(model.Minor, 11, []note.Note{11, 14, 18}, 25), note.Sharp, "B-"},
		{template(model.Major, 9, []note.Note{9, 13, 16}, 23), note.Sharp, "Aadd9"},
		{template(model.Major, 0, []note.Note{0, 4, 7}, 17), note.Sharp, "C"},
		{template(model.Major, 0, []note.Note{0, 4, 7}, 14, 21), note.Sharp, "C"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			chord := model.Chord{ChordTemplate: c.tmpl, Bass: c.tmpl.Root}
			assert.Equal(t, c.want, ToString(chord, c.acc))
		})
	}
}

func TestToStringSlash(t *testing.T) {
	c, ok := dict.Chord(1, model.Dominant7, 8)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal("C#7/G#", ToString(c, note.Sharp))
	assert.Equal("Db7/Ab", ToString(c, note.Flat))
}

func TestFormatterUsesNamer(t *testing.T) {
	c, _ := dict.Chord(3, model.Minor7, 10)
	f := Formatter{Namer: note.Namer{Chooser: note.FixedChooser(note.Flat)}}
	assert.Equal(t, "Eb-7/Bb", f.ToString(c, note.Either))
	assert.Equal(t, "D#-7/A#", ToString(c, note.Either))
}

func TestToStringAdd9AcrossCatalog(t *testing.T) {
	for _, tmpl := range dict.Templates() {
		if tmpl.Extensions.Len() != 1 {
			continue
		}
		ext, _ := tmpl.Extensions.Bottom()
		c := model.Chord{ChordTemplate: tmpl, Bass: tmpl.Root}
		symbol := ToString(c, note.Sharp)

		want := int(ext.Class())+12-int(tmpl.Root) == 14
		assert.Equal(t, want, strings.HasSuffix(symbol, "add9"), "%v %v: %v", tmpl.Root, tmpl.Quality, symbol)
		assert.Equal(t, tmpl.Root < 10, want, "%v %v", tmpl.Root, tmpl.Quality)
	}
}
