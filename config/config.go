package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jsphweid/chordex/note"
)

type Config struct {
	// empty means the embedded catalog
	CatalogPath string        `env:"CHORDEX_CATALOG_PATH"`
	Accidental  string        `env:"CHORDEX_ACCIDENTAL" envDefault:"sharp"`
	Strict      bool          `env:"CHORDEX_STRICT" envDefault:"true"`
	Addr        string        `env:"CHORDEX_ADDR" envDefault:":8080"`
	MidiInPort  int           `env:"CHORDEX_MIDI_IN_PORT" envDefault:"0"`
	Debounce    time.Duration `env:"CHORDEX_DEBOUNCE" envDefault:"60ms"`

	MediaDir         string `env:"MEDIA_PATH"`
	MetadataEndpoint string `env:"METADATA_ENDPOINT" envDefault:"http://localhost:8000"`
	MetadataRegion   string `env:"METADATA_REGION" envDefault:"localhost"`
	MetadataTable    string `env:"METADATA_TABLE" envDefault:"harmondex-metadata"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.AccidentalPreference(); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) AccidentalPreference() (note.Accidental, error) {
	return note.ParseAccidental(c.Accidental)
}
