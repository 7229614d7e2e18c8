package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/catalog"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		s := &Server{Dict: dict, Strict: cfg.Strict}
		s.Accidental, _ = cfg.AccidentalPreference()

		log.Printf("serving %v chords on %v", len(dict.Templates()), cfg.Addr)
		log.Fatal(http.ListenAndServe(cfg.Addr, NewRouter(s)))
		return nil
	},
}

// Server holds what the handlers share. Dict is read only.
type Server struct {
	Dict       *chord.Dictionary
	Accidental note.Accidental
	Strict     bool
}

// NewServer builds a Server over the embedded catalog.
func NewServer() *Server {
	return &Server{Dict: chord.NewDictionary(catalog.Default()), Strict: true}
}

func NewRouter(s *Server) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/resolve", s.HandleResolve).Methods("POST")
	router.HandleFunc("/validate", s.HandleValidate).Methods("POST")
	router.HandleFunc("/name", s.HandleName).Methods("POST")
	router.HandleFunc("/catalog", s.HandleCatalog).Methods("GET")
	return cors.Default().Handler(router)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(constants.RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(constants.RequestIDHeader, id)
		log.Printf("%v %v %v", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeBody(r *http.Request, v any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(reqBody, v)
}

func (s *Server) formatter(accidental string) (chord.Formatter, note.Accidental, error) {
	acc := s.Accidental
	if accidental != "" {
		var err error
		if acc, err = note.ParseAccidental(accidental); err != nil {
			return chord.Formatter{}, acc, err
		}
	}
	f, err := formatterFor(acc)
	return f, acc, err
}

func view(f chord.Formatter, acc note.Accidental, c model.Chord) *model.ChordView {
	return &model.ChordView{
		Symbol:     f.ToString(c, acc),
		Quality:    c.Quality,
		Number:     chord.QualityNumber(c.Quality),
		Root:       c.Root,
		Bass:       c.Bass,
		Tones:      c.Tones,
		Extensions: c.Extensions,
	}
}

func (s *Server) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body: "+err.Error())
		return
	}
	f, acc, err := s.formatter(input.Accidental)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, ok := s.Dict.Find(note.NewSet(input.Notes...))
	if !ok {
		writeError(w, http.StatusNotFound, "no matching chord")
		return
	}
	writeJSON(w, http.StatusOK, view(f, acc, c))
}

func (s *Server) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var input model.ValidateRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body: "+err.Error())
		return
	}

	bass := input.Root
	if input.Bass != nil {
		bass = *input.Bass
	}
	c, ok := s.Dict.ChordWith(input.Root, input.Quality, bass, note.NewSet(input.Extensions...))
	if !ok {
		writeError(w, http.StatusNotFound, "no such chord in the catalog")
		return
	}
	strict := s.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	f, acc, _ := s.formatter("")
	writeJSON(w, http.StatusOK, model.ValidateResponse{
		Valid: chord.Validate(c, note.NewSet(input.Notes...), strict),
		Chord: view(f, acc, c),
	})
}

func (s *Server) HandleName(w http.ResponseWriter, r *http.Request) {
	var input model.NameRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body: "+err.Error())
		return
	}
	f, acc, err := s.formatter(input.Accidental)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.NameResponse{Name: f.Namer.Name(input.Note, input.Octave, acc)})
}

func (s *Server) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	f, acc, _ := s.formatter("")
	res := make([]*model.ChordView, 0, len(s.Dict.Templates()))
	for _, t := range s.Dict.Templates() {
		res = append(res, view(f, acc, model.Chord{ChordTemplate: t, Bass: t.Root}))
	}
	writeJSON(w, http.StatusOK, res)
}
