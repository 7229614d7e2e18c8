package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/chordex/catalog"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/note"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--accidental", "sharp"))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestParseNotes(t *testing.T) {
	notes, err := parseNotes([]string{"67", "60,64", " 72 "})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal([]note.Note{60, 64, 67, 72}, notes.Values())

	_, err = parseNotes([]string{"C4"})
	assert.NotNil(err)
}

func TestResolveCommand(t *testing.T) {
	assert.Equal(t, "C/E\n", run(t, "resolve", "64", "67", "72"))
	assert.Equal(t, "no match\n", run(t, "resolve", "60", "61", "62"))
}

func TestNameCommand(t *testing.T) {
	assert.Equal(t, "C#4\n", run(t, "name", "61", "--octave"))
}

func TestValidateCommand(t *testing.T) {
	assert.Equal(t, "C/E: valid\n", run(t, "validate", "--root", "0", "--bass", "4", "--add9=false", "64", "67", "72", "74"))
	assert.Equal(t, "A-: invalid\n", run(t, "validate", "--root", "9", "--bass=-1", "--quality", "minor", "--add9=false", "57", "60", "64"))
}

func TestValidateAdd9Command(t *testing.T) {
	args := []string{"validate", "--root", "0", "--bass=-1", "--quality", "major", "--strict", "--add9"}
	assert.Equal(t, "Cadd9: valid\n", run(t, append(args, "60", "62", "64", "67", "71")...))
	assert.Equal(t, "Cadd9: invalid\n", run(t, append(args, "60", "64", "67", "71")...))
	assert.Equal(t, "C: valid\n", run(t, "validate", "--root", "0", "--bass=-1", "--quality", "major", "--strict", "--add9=false", "60", "64", "67", "69"))
}

func TestCatalogCommand(t *testing.T) {
	out := run(t, "catalog", "--practice")
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert := assert.New(t)
	assert.Len(lines, 7)
	assert.True(strings.HasPrefix(lines[0], " 0 C "))
	assert.True(strings.HasSuffix(lines[0], "C E G"))
}

func TestInspectCommand(t *testing.T) {
	out := run(t, "inspect", "60", "64", "67", "69")

	assert := assert.New(t)
	assert.Contains(out, "key: 0-4-7-9")
	assert.Contains(out, "0: A-7 (bass 9)")
	assert.Contains(out, "1: C6 (bass 0)")
}

func TestVoiceAndScan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mid")

	assert := assert.New(t)
	assert.Equal("Wrote 3 chords to "+path+"\n", run(t, "voice", "60,64,67", "64,67,72", "60,64,67", "--out", path))

	_, err := os.Stat(path)
	assert.Nil(err)

	out := run(t, "scan", dir, "--top", "1")
	assert.Contains(out, "files: 1")
	assert.Contains(out, "sonorities: 3")
	assert.Contains(out, "distinct chords: 2")
	assert.Contains(out, "2  C")
	assert.NotContains(out, "C/E ")
}

func TestHeldNotes(t *testing.T) {
	h := newHeldNotes(chord.NewDictionary(catalog.Default()), chord.Formatter{Namer: note.DefaultNamer}, note.Sharp)
	var out bytes.Buffer

	h.press(64)
	h.press(67)
	h.print(&out)
	h.press(72)
	h.print(&out)
	h.print(&out)
	h.release(64)
	h.release(67)
	h.release(72)
	h.print(&out)

	assert.Equal(t, "?\nC/E\n-\n", out.String())
}
