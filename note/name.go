package note

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// Accidental selects how chromatic pitch classes are spelled.
type Accidental int

const (
	Sharp Accidental = iota
	Flat
	Either
)

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "sharp"
	case Flat:
		return "flat"
	case Either:
		return "either"
	}
	return fmt.Sprintf("Accidental(%d)", int(a))
}

func ParseAccidental(s string) (Accidental, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sharp", "#", "":
		return Sharp, nil
	case "flat", "b":
		return Flat, nil
	case "either", "random":
		return Either, nil
	}
	return Sharp, fmt.Errorf("unknown accidental %q", s)
}

// natural letters by pitch class, blank where an accidental is needed
const letters = "C D EF G A B"

// Chooser picks Sharp or Flat when a note is named with Either.
type Chooser interface {
	Choose() Accidental
}

// FixedChooser always answers with the same accidental.
type FixedChooser Accidental

func (f FixedChooser) Choose() Accidental {
	return Accidental(f)
}

// RandomChooser flips between Sharp and Flat. Safe for concurrent use.
type RandomChooser struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomChooser(seed int64) *RandomChooser {
	return &RandomChooser{rnd: rand.New(rand.NewSource(seed))}
}

func (r *RandomChooser) Choose() Accidental {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rnd.Intn(2) == 0 {
		return Sharp
	}
	return Flat
}

// RandomSeed reads a seed for NewRandomChooser from crypto/rand.
func RandomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Namer turns notes into letter names. A nil Chooser behaves as Sharp.
type Namer struct {
	Chooser Chooser
}

// DefaultNamer is deterministic: Either is always spelled with a sharp.
var DefaultNamer = Namer{Chooser: FixedChooser(Sharp)}

func (nm Namer) Name(n Note, includeOctave bool, acc Accidental) string {
	pc := n.Class()
	name := string(letters[pc])
	if name == " " {
		if acc == Either {
			acc = nm.choose()
		}
		if acc == Flat {
			name = string(letters[(pc+1).Class()]) + "b"
		} else {
			name = string(letters[(pc-1).Class()]) + "#"
		}
	}
	if includeOctave {
		if octave := n.Octave(); octave >= 0 {
			name += strconv.Itoa(octave)
		}
	}
	return name
}

func (nm Namer) choose() Accidental {
	if nm.Chooser == nil {
		return Sharp
	}
	if a := nm.Chooser.Choose(); a == Flat {
		return Flat
	}
	return Sharp
}

// Name spells n with DefaultNamer.
func Name(n Note, includeOctave bool, acc Accidental) string {
	return DefaultNamer.Name(n, includeOctave, acc)
}
