package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/stretchr/testify/assert"
)

var testServer = NewServer()

func post(t *testing.T, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	NewRouter(testServer).ServeHTTP(w, req)
	return w.Result()
}

func decode[A any](t *testing.T, resp *http.Response) A {
	var res A
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, &res); err != nil {
		t.Fatalf("could not decode %s: %v", respBody, err)
	}
	return res
}

func TestResolveInversion(t *testing.T) {
	resp := post(t, "/resolve", model.ResolveRequestBody{Notes: []note.Note{64, 67, 72}})

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get(constants.RequestIDHeader))

	v := decode[model.ChordView](t, resp)
	assert.Equal("C/E", v.Symbol)
	assert.Equal(model.Major, v.Quality)
	assert.Equal(0, v.Number)
	assert.Equal([]note.Note{0, 4, 7}, v.Tones.Values())
}

func TestResolveFlat(t *testing.T) {
	resp := post(t, "/resolve", model.ResolveRequestBody{Notes: []note.Note{58, 62, 65}, Accidental: "flat"})
	v := decode[model.ChordView](t, resp)
	assert.Equal(t, "Bb", v.Symbol)
}

func TestResolveNoMatch(t *testing.T) {
	resp := post(t, "/resolve", model.ResolveRequestBody{})

	assert := assert.New(t)
	assert.Equal(http.StatusNotFound, resp.StatusCode)
	assert.Equal("no matching chord", decode[model.ErrorResponse](t, resp).Error)
}

func TestResolveBadAccidental(t *testing.T) {
	resp := post(t, "/resolve", model.ResolveRequestBody{Notes: []note.Note{60, 64, 67}, Accidental: "natural"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResolveBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/resolve", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	NewRouter(testServer).ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestValidateHandler(t *testing.T) {
	bass := note.Note(4)
	loose := false
	cases := []struct {
		body model.ValidateRequestBody
		want bool
	}{
		{model.ValidateRequestBody{Notes: []note.Note{48, 64, 67, 69}, Root: 0, Quality: model.Major}, true},
		{model.ValidateRequestBody{Notes: []note.Note{64, 67, 72, 74}, Root: 0, Quality: model.Major}, false},
		{model.ValidateRequestBody{Notes: []note.Note{64, 67, 72, 74}, Root: 0, Quality: model.Major, Strict: &loose}, true},
		{model.ValidateRequestBody{Notes: []note.Note{64, 67, 72, 74}, Root: 0, Bass: &bass, Quality: model.Major}, true},
	}

	for _, c := range cases {
		resp := post(t, "/validate", c.body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, c.want, decode[model.ValidateResponse](t, resp).Valid, "%+v", c.body)
	}
}

func TestValidateAdd9Handler(t *testing.T) {
	body := model.ValidateRequestBody{Notes: []note.Note{60, 62, 64, 67, 71}, Root: 0, Quality: model.Major, Extensions: []note.Note{2}}
	resp := post(t, "/validate", body)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	res := decode[model.ValidateResponse](t, resp)
	assert.True(res.Valid)
	assert.Equal("Cadd9", res.Chord.Symbol)

	body.Extensions = []note.Note{5}
	assert.Equal(http.StatusNotFound, post(t, "/validate", body).StatusCode)
}

func TestValidateUnknownChord(t *testing.T) {
	resp := post(t, "/validate", model.ValidateRequestBody{Notes: []note.Note{60}, Root: 0, Quality: "power"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNameHandler(t *testing.T) {
	resp := post(t, "/name", model.NameRequestBody{Note: 61, Octave: true, Accidental: "b"})
	assert.Equal(t, "Db4", decode[model.NameResponse](t, resp).Name)
}

func TestCatalogHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.Header.Set(constants.RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	NewRouter(testServer).ServeHTTP(w, req)
	resp := w.Result()

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("abc", resp.Header.Get(constants.RequestIDHeader))
	views := decode[[]model.ChordView](t, resp)
	assert.Len(views, len(testServer.Dict.Templates()))
	assert.Equal("C", views[0].Symbol)
	assert.Equal("Cadd9", views[17*12].Symbol)
}
