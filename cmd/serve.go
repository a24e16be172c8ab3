package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/djlansom/chord-engine/constants"
	"github.com/djlansom/chord-engine/model"
	"github.com/djlansom/chord-engine/progression"
	"github.com/djlansom/chord-engine/session"
	"github.com/djlansom/chord-engine/theory"
)

var sessions = session.NewManager()

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the chord engine HTTP API",
	Long:  `Runs the chord engine HTTP API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, model.ErrorResponse{Error: err.Error()})
}

// optionsFromQuery reads the one-shot /progression query parameters.
// Unknown names fail later at generator construction; numeric ranges are
// clamped by the engine, never rejected here.
func optionsFromQuery(q url.Values) (progression.Options, *int, int, error) {
	opts := progression.DefaultOptions()
	count := constants.DefaultCount
	var seed *int

	if v := q.Get("key"); v != "" {
		opts.Key = v
	}
	if v := q.Get("scale"); v != "" {
		opts.Scale = v
	}
	if v := q.Get("voicing"); v != "" {
		opts.Voicing = v
	}
	if v := q.Get("mode"); v != "" {
		opts.Mode = v
	}
	if v := q.Get("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, nil, 0, err
		}
		opts.Length = n
	}
	if v := q.Get("mutation"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, nil, 0, err
		}
		opts.Mutation = f
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, nil, 0, err
		}
		opts.Seed = n
		seed = &n
	}
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, nil, 0, err
		}
		if n > 0 {
			count = n
		}
	}
	return opts, seed, count, nil
}

// HandleConfig lists the available keys, scales, voicings, modes, and
// loop length options.
func HandleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, model.ConfigResponse{
		Keys:     constants.AllKeys,
		Scales:   theory.ScaleNames(),
		Voicings: constants.Voicings,
		Modes:    constants.Modes,
		Lengths:  constants.LoopLengths,
	})
}

// HandleProgression generates a progression in one shot, creating a new
// session the caller can keep stepping.
func HandleProgression(w http.ResponseWriter, r *http.Request) {
	opts, seed, count, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, 400, err)
		return
	}

	gen, err := progression.NewGenerator(opts)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	chords, err := gen.Generate(count)
	if err != nil {
		writeError(w, 500, err)
		return
	}

	s := sessions.Create(gen)
	state := gen.State()
	writeJSON(w, 200, model.ProgressionResponse{
		SessionId:     s.Id,
		Chords:        chords,
		RegisterState: state.RegisterState,
		Seed:          seed,
		Settings:      state,
	})
}

// HandleCreateSession creates a generator without stepping it.
func HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSessionRequest
	// an empty body means all defaults
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, 400, err)
		return
	}

	opts := progression.DefaultOptions()
	if req.Key != nil {
		opts.Key = *req.Key
	}
	if req.Scale != nil {
		opts.Scale = *req.Scale
	}
	if req.Voicing != nil {
		opts.Voicing = *req.Voicing
	}
	if req.Mode != nil {
		opts.Mode = *req.Mode
	}
	if req.Length != nil {
		opts.Length = *req.Length
	}
	if req.Mutation != nil {
		opts.Mutation = *req.Mutation
	}
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}

	gen, err := progression.NewGenerator(opts)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	s := sessions.Create(gen)
	writeJSON(w, 200, model.SessionResponse{SessionId: s.Id, State: gen.State()})
}

func getSession(w http.ResponseWriter, r *http.Request) *session.Session {
	id := mux.Vars(r)["id"]
	s, err := sessions.Get(id)
	if err != nil {
		writeError(w, 404, err)
		return nil
	}
	return s
}

// HandleGetSession returns the session's resumable state.
func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	var state model.GeneratorState
	err := s.Do(func(gen *progression.Generator) error {
		state = gen.State()
		return nil
	})
	if err != nil {
		writeError(w, 500, err)
		return
	}
	writeJSON(w, 200, model.SessionResponse{SessionId: s.Id, State: state})
}

// HandleStep advances one step and returns the chord plus new state.
func HandleStep(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	var chord model.Chord
	var state model.GeneratorState
	err := s.Do(func(gen *progression.Generator) error {
		var err error
		chord, err = gen.Step()
		state = gen.State()
		return err
	})
	if err != nil {
		writeError(w, 500, err)
		return
	}
	writeJSON(w, 200, model.StepResponse{SessionId: s.Id, Chord: chord, State: state})
}

// HandleGenerate advances count steps on an existing session.
func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	count := constants.DefaultCount
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, 400, err)
			return
		}
		if n > 0 {
			count = n
		}
	}

	var chords []model.Chord
	var state model.GeneratorState
	err := s.Do(func(gen *progression.Generator) error {
		var err error
		chords, err = gen.Generate(count)
		state = gen.State()
		return err
	})
	if err != nil {
		writeError(w, 500, err)
		return
	}
	writeJSON(w, 200, model.ProgressionResponse{
		SessionId:     s.Id,
		Chords:        chords,
		RegisterState: state.RegisterState,
		Settings:      state,
	})
}

// HandleConfigure applies partial settings without resetting the register.
func HandleConfigure(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	var req model.ConfigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, err)
		return
	}

	var state model.GeneratorState
	err := s.Do(func(gen *progression.Generator) error {
		if req.Key != nil {
			if err := gen.SetKey(*req.Key); err != nil {
				return err
			}
		}
		if req.Scale != nil {
			if err := gen.SetScale(*req.Scale); err != nil {
				return err
			}
		}
		if req.Voicing != nil {
			gen.SetVoicing(*req.Voicing)
		}
		if req.Mode != nil {
			gen.SetMode(*req.Mode)
		}
		if req.Length != nil {
			gen.SetLength(*req.Length)
		}
		if req.Mutation != nil {
			gen.SetMutation(*req.Mutation)
		}
		state = gen.State()
		return nil
	})
	if err != nil {
		writeError(w, 400, err)
		return
	}
	writeJSON(w, 200, model.SessionResponse{SessionId: s.Id, State: state})
}

// HandleRestore overwrites the register with a saved state blob.
func HandleRestore(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	var req model.RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, err)
		return
	}
	var state model.GeneratorState
	err := s.Do(func(gen *progression.Generator) error {
		gen.SetRegisterState(req.RegisterState)
		state = gen.State()
		return nil
	})
	if err != nil {
		writeError(w, 500, err)
		return
	}
	writeJSON(w, 200, model.SessionResponse{SessionId: s.Id, State: state})
}

// HandleDeleteSession drops a session.
func HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sessions.Delete(id)
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

// NewRouter wires all API routes.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/config", HandleConfig).Methods("GET")
	router.HandleFunc("/progression", HandleProgression).Methods("GET")
	router.HandleFunc("/sessions", HandleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", HandleGetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}", HandleDeleteSession).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/step", HandleStep).Methods("POST")
	router.HandleFunc("/sessions/{id}/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/sessions/{id}/configure", HandleConfigure).Methods("POST")
	router.HandleFunc("/sessions/{id}/restore", HandleRestore).Methods("POST")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	addr := constants.GetListenAddr()
	log.Printf("chord engine listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
