package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/note"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a midi keyboard",
	Long:  `Names chords played on a midi keyboard. The input port comes from CHORDEX_MIDI_IN_PORT.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		f, acc, err := newFormatter()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return listen(ctx, cmd.OutOrStdout(), newHeldNotes(dict, f, acc))
	},
}

// heldNotes tracks the keys currently down and prints the chord they form
// whenever it changes.
type heldNotes struct {
	dict *chord.Dictionary
	f    chord.Formatter
	acc  note.Accidental

	mu   sync.Mutex
	on   note.Set
	last string
}

func newHeldNotes(dict *chord.Dictionary, f chord.Formatter, acc note.Accidental) *heldNotes {
	return &heldNotes{dict: dict, f: f, acc: acc}
}

func (h *heldNotes) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.on.Add(note.Note(key))
}

func (h *heldNotes) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.on.Delete(note.Note(key))
}

// current names the held notes. It returns false when nothing changed
// since the last call.
func (h *heldNotes) current() (string, bool) {
	h.mu.Lock()
	notes := h.on.Clone()
	h.mu.Unlock()

	symbol := ""
	if c, ok := h.dict.Find(notes); ok {
		symbol = h.f.ToString(c, h.acc)
	} else if notes.Len() > 0 {
		symbol = "?"
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if symbol == h.last {
		return symbol, false
	}
	h.last = symbol
	return symbol, true
}

func (h *heldNotes) print(w io.Writer) {
	symbol, changed := h.current()
	if !changed {
		return
	}
	if symbol == "" {
		fmt.Fprintln(w, "-")
		return
	}
	fmt.Fprintln(w, symbol)
}

func listen(ctx context.Context, w io.Writer, h *heldNotes) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(cfg.MidiInPort)
	if err != nil {
		return fmt.Errorf("can't find midi input %v: %w", cfg.MidiInPort, err)
	}

	// chords are rarely struck at exactly the same time
	debounced := debounce.New(cfg.Debounce)

	stopListening, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			h.press(key)
		case msg.GetNoteEnd(&ch, &key):
			h.release(key)
		default:
			return
		}
		debounced(func() { h.print(w) })
	})
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer stopListening()

	log.Printf("listening on %v", in)
	<-ctx.Done()
	return nil
}
