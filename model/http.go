package model

import "github.com/jsphweid/chordex/note"

type ResolveRequestBody struct {
	Notes      []note.Note `json:"notes"`
	Accidental string      `json:"accidental"`
}

type ChordView struct {
	Symbol     string    `json:"symbol"`
	Quality    Quality   `json:"quality"`
	Number     int       `json:"number"`
	Root       note.Note `json:"root"`
	Bass       note.Note `json:"bass"`
	Tones      note.Set  `json:"tones"`
	Extensions note.Set  `json:"extensions"`
}

type ValidateRequestBody struct {
	Notes      []note.Note `json:"notes"`
	Root       note.Note   `json:"root"`
	Bass       *note.Note  `json:"bass,omitempty"`
	Quality    Quality     `json:"quality"`
	Extensions []note.Note `json:"extensions,omitempty"`
	Strict     *bool       `json:"strict,omitempty"`
}

type ValidateResponse struct {
	Valid bool       `json:"valid"`
	Chord *ChordView `json:"chord,omitempty"`
}

type NameRequestBody struct {
	Note       note.Note `json:"note"`
	Octave     bool      `json:"octave"`
	Accidental string    `json:"accidental"`
}

type NameResponse struct {
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
