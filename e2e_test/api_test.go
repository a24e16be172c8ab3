//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/djlansom/chord-engine/cmd"
	"github.com/djlansom/chord-engine/model"
)

func doRequest(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)
	return w
}

func decode[A any](t *testing.T, w *httptest.ResponseRecorder) A {
	t.Helper()
	var v A
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestConfigEndpoint(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/config", nil)

	assert := assert.New(t)
	assert.Equal(200, w.Code)

	res := decode[model.ConfigResponse](t, w)
	assert.Contains(res.Keys, "C")
	assert.Contains(res.Scales, "ionian")
	assert.Contains(res.Voicings, "sevenths")
	assert.Equal([]string{"raw", "smooth"}, res.Modes)
	assert.Contains(res.Lengths, 8)
}

func TestProgressionEndpointIsSeedDeterministic(t *testing.T) {
	const target = "/progression?seed=42424&mutation=0&count=8"
	first := decode[model.ProgressionResponse](t, doRequest(t, http.MethodGet, target, nil))
	second := decode[model.ProgressionResponse](t, doRequest(t, http.MethodGet, target, nil))

	assert := assert.New(t)
	assert.Len(first.Chords, 8)
	assert.NotEmpty(first.SessionId)
	assert.NotEqual(first.SessionId, second.SessionId)
	for i := range first.Chords {
		assert.Equal(first.Chords[i].Symbol, second.Chords[i].Symbol, "chord %d", i)
	}
	assert.Equal(first.RegisterState, second.RegisterState)
	assert.Equal(42424, *first.Seed)
}

func TestProgressionEndpointRejectsUnknownScale(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/progression?scale=nonexistent", nil)
	assert.Equal(t, 400, w.Code)
	res := decode[model.ErrorResponse](t, w)
	assert.Contains(t, res.Error, "unknown scale")
}

func TestSessionLifecycle(t *testing.T) {
	assert := assert.New(t)

	seed := 0xA5C3
	mutation := 0.0
	created := decode[model.SessionResponse](t, doRequest(t, http.MethodPost, "/sessions",
		model.CreateSessionRequest{Seed: &seed, Mutation: &mutation}))
	assert.NotEmpty(created.SessionId)
	assert.Equal(0xA5C3, created.State.RegisterState)

	// first step matches the register bit trace
	step := decode[model.StepResponse](t, doRequest(t, http.MethodPost,
		fmt.Sprintf("/sessions/%v/step", created.SessionId), nil))
	assert.Equal(0xE1, step.Chord.RegisterValue)
	assert.Equal(0xA5E1, step.State.RegisterState)

	// generate appends to the same evolving sequence
	gen := decode[model.ProgressionResponse](t, doRequest(t, http.MethodPost,
		fmt.Sprintf("/sessions/%v/generate?count=4", created.SessionId), nil))
	assert.Len(gen.Chords, 4)

	// state endpoint agrees
	got := decode[model.SessionResponse](t, doRequest(t, http.MethodGet,
		"/sessions/"+created.SessionId, nil))
	assert.Equal(gen.RegisterState, got.State.RegisterState)

	w := doRequest(t, http.MethodDelete, "/sessions/"+created.SessionId, nil)
	assert.Equal(200, w.Code)
	w = doRequest(t, http.MethodGet, "/sessions/"+created.SessionId, nil)
	assert.Equal(404, w.Code)
}

func TestConfigurePreservesRegister(t *testing.T) {
	assert := assert.New(t)

	seed := 0x1234
	created := decode[model.SessionResponse](t, doRequest(t, http.MethodPost, "/sessions",
		model.CreateSessionRequest{Seed: &seed}))

	key := "Eb"
	scale := "dorian"
	length := 4
	res := decode[model.SessionResponse](t, doRequest(t, http.MethodPost,
		fmt.Sprintf("/sessions/%v/configure", created.SessionId),
		model.ConfigureRequest{Key: &key, Scale: &scale, Length: &length}))

	assert.Equal("Eb", res.State.Key)
	assert.Equal("dorian", res.State.Scale)
	assert.Equal(4, res.State.Length)
	assert.Equal(0x1234, res.State.RegisterState)
}

func TestConfigureUnknownScaleFails(t *testing.T) {
	created := decode[model.SessionResponse](t, doRequest(t, http.MethodPost, "/sessions", nil))
	scale := "nonexistent"
	w := doRequest(t, http.MethodPost,
		fmt.Sprintf("/sessions/%v/configure", created.SessionId),
		model.ConfigureRequest{Scale: &scale})
	assert.Equal(t, 400, w.Code)
}

func TestRestoreMasksRegisterState(t *testing.T) {
	created := decode[model.SessionResponse](t, doRequest(t, http.MethodPost, "/sessions", nil))
	res := decode[model.SessionResponse](t, doRequest(t, http.MethodPost,
		fmt.Sprintf("/sessions/%v/restore", created.SessionId),
		model.RestoreRequest{RegisterState: 0x1A5C3}))
	assert.Equal(t, 0xA5C3, res.State.RegisterState)
}

func TestUnknownSessionIs404(t *testing.T) {
	for _, target := range []string{
		"/sessions/nope",
		"/sessions/nope/step",
		"/sessions/nope/generate",
	} {
		method := http.MethodPost
		if target == "/sessions/nope" {
			method = http.MethodGet
		}
		w := doRequest(t, method, target, nil)
		assert.Equal(t, 404, w.Code, target)
	}
}
