package note

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameNaturals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Name(60, false, Sharp))
	assert.Equal("C4", Name(60, true, Sharp))
	assert.Equal("B3", Name(59, true, Flat))
	assert.Equal("F", Name(5, false, Either))
}

func TestNameAccidentals(t *testing.T) {
	cases := []struct {
		note Note
		acc  Accidental
		want string
	}{
		{61, Sharp, "C#"},
		{61, Flat, "Db"},
		{70, Sharp, "A#"},
		{70, Flat, "Bb"},
		{66, Flat, "Gb"},
		{-2, Flat, "Bb"},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%d %v", c.note, c.acc)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, Name(c.note, false, c.acc))
		})
	}
}

func TestNameOmitsNegativeOctave(t *testing.T) {
	assert.Equal(t, "C", Name(0, true, Sharp))
	assert.Equal(t, "C#0", Name(13, true, Sharp))
}

func TestEitherUsesChooser(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", Name(1, false, Either))

	flat := Namer{Chooser: FixedChooser(Flat)}
	assert.Equal("Db", flat.Name(1, false, Either))

	var none Namer
	assert.Equal("C#", none.Name(1, false, Either))
}

func TestRandomChooserIsReproducibleBySeed(t *testing.T) {
	a := Namer{Chooser: NewRandomChooser(42)}
	b := Namer{Chooser: NewRandomChooser(42)}
	for i := 0; i < 16; i++ {
		got := a.Name(3, false, Either)
		assert.Contains(t, []string{"D#", "Eb"}, got)
		assert.Equal(t, got, b.Name(3, false, Either))
	}
}

func TestParseAccidental(t *testing.T) {
	assert := assert.New(t)
	for in, want := range map[string]Accidental{"sharp": Sharp, "#": Sharp, "b": Flat, "Flat": Flat, "random": Either, "either": Either} {
		got, err := ParseAccidental(in)
		assert.Nil(err)
		assert.Equal(want, got)
	}
	_, err := ParseAccidental("natural")
	assert.NotNil(err)
}
