// Package progression ties the shift register to diatonic harmony.
//
// Two modes:
//   - raw: register output -> scale degree -> chord
//   - smooth: transition weights bias toward musical movements (ii-V-I etc.)
package progression

import (
	"math/rand"
	"time"

	"github.com/djlansom/chord-engine/constants"
	"github.com/djlansom/chord-engine/model"
	"github.com/djlansom/chord-engine/register"
	"github.com/djlansom/chord-engine/theory"
)

type transition struct {
	target int
	weight float64
}

// transitionWeights maps a source degree to weighted targets. Higher weight
// = more likely destination in smooth mode. Slice order matters: the
// weighted choice scans cumulatively in table order.
var transitionWeights = map[int][]transition{
	0: {{3, 3}, {4, 3}, {5, 2}, {1, 1}, {2, 1}, {6, 0.5}}, // I -> IV, V preferred
	1: {{4, 3}, {0, 2}, {3, 1}, {5, 1}},                   // ii -> V strongly preferred
	2: {{5, 3}, {3, 2}, {0, 1}},                           // iii -> vi, IV
	3: {{4, 3}, {0, 2}, {1, 2}, {6, 1}},                   // IV -> V, I, ii
	4: {{0, 4}, {5, 2}, {3, 1}},                           // V -> I very strongly
	5: {{3, 3}, {4, 2}, {1, 2}, {2, 1}},                   // vi -> IV, V, ii
	6: {{0, 3}, {4, 2}, {5, 1}},                           // vii -> I, V
}

// weightedChoice picks a degree biased by transition weights, using the
// register-derived candidate degree as the entropy source: it selects a
// point in the cumulative distribution instead of drawing fresh randomness,
// so the whole progression stays reproducible from the register alone.
func weightedChoice(weights []transition, candidate, numDegrees int) int {
	var total float64
	for _, w := range weights {
		total += w.weight
	}

	point := (float64(candidate) / float64(numDegrees)) * total
	var cumulative float64
	for _, w := range weights {
		cumulative += w.weight
		if point < cumulative {
			return w.target
		}
	}
	return weights[len(weights)-1].target
}

// Options configures a new Generator. Zero-value string/int fields fall
// back to the package defaults; Seed < 0 draws a random register seed.
type Options struct {
	Key      string
	Scale    string
	Voicing  string
	Mode     string
	Length   int
	Mutation float64
	Seed     int

	// Rand is the entropy source owned by the register. nil gets a
	// time-seeded source; supply equal-seeded sources to reproduce
	// mutating sequences across runs.
	Rand *rand.Rand
}

// DefaultOptions mirrors the API's query parameter defaults.
func DefaultOptions() Options {
	return Options{
		Key:      constants.DefaultKey,
		Scale:    constants.DefaultScale,
		Voicing:  constants.DefaultVoicing,
		Mode:     constants.DefaultMode,
		Length:   constants.DefaultLoopLength,
		Mutation: constants.DefaultMutation,
		Seed:     -1,
	}
}

// Generator produces chord progressions driven by a Turing Machine style
// register. Not safe for concurrent use; callers serialize access (the
// session layer wraps each generator in a lock).
type Generator struct {
	key     string
	scale   string
	voicing string
	mode    string

	reg        *register.Register
	scaleNotes []string
	lastDegree int
	history    []model.Chord
}

// NewGenerator builds a generator. Fails only for unknown key or scale
// names; numeric ranges are clamped, never rejected.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Key == "" {
		opts.Key = constants.DefaultKey
	}
	if opts.Scale == "" {
		opts.Scale = constants.DefaultScale
	}
	if opts.Voicing == "" {
		opts.Voicing = constants.DefaultVoicing
	}
	if opts.Mode == "" {
		opts.Mode = constants.DefaultMode
	}
	if opts.Length == 0 {
		opts.Length = constants.DefaultLoopLength
	}

	notes, err := theory.GetScaleNotes(opts.Key, opts.Scale)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var reg *register.Register
	if opts.Seed >= 0 {
		reg = register.NewSeeded(uint16(opts.Seed), opts.Length, rng)
	} else {
		reg = register.New(opts.Length, rng)
	}
	reg.SetProbability(opts.Mutation)

	return &Generator{
		key:        opts.Key,
		scale:      opts.Scale,
		voicing:    opts.Voicing,
		mode:       opts.Mode,
		reg:        reg,
		scaleNotes: notes,
	}, nil
}

// SetKey changes the key and recomputes the scale notes. The register and
// history are untouched so the evolving sequence is reinterpreted, not
// reset.
func (g *Generator) SetKey(key string) error {
	notes, err := theory.GetScaleNotes(key, g.scale)
	if err != nil {
		return err
	}
	g.key = key
	g.scaleNotes = notes
	return nil
}

// SetScale changes the scale and recomputes the scale notes.
func (g *Generator) SetScale(scale string) error {
	notes, err := theory.GetScaleNotes(g.key, scale)
	if err != nil {
		return err
	}
	g.scale = scale
	g.scaleNotes = notes
	return nil
}

func (g *Generator) SetVoicing(voicing string) {
	g.voicing = voicing
}

func (g *Generator) SetMode(mode string) {
	g.mode = mode
}

func (g *Generator) SetMutation(mutation float64) {
	g.reg.SetProbability(mutation)
}

func (g *Generator) SetLength(length int) {
	g.reg.SetLength(length)
}

// SetRegisterState restores a saved register value (masked to 16 bits).
func (g *Generator) SetRegisterState(state int) {
	g.reg.SetState(state)
}

// Step advances one clock step and returns the resulting chord.
func (g *Generator) Step() (model.Chord, error) {
	rawValue := g.reg.Step()
	rawDegree := rawValue % len(g.scaleNotes)

	degree := rawDegree
	if g.mode == "smooth" {
		if weights, ok := transitionWeights[g.lastDegree]; ok {
			degree = weightedChoice(weights, rawDegree, len(g.scaleNotes))
		}
	}

	chord, err := theory.GetDiatonicChord(g.scale, degree, g.voicing, g.scaleNotes, g.key)
	if err != nil {
		return chord, err
	}
	chord.RegisterValue = rawValue
	chord.Mutated = rawDegree != degree

	g.lastDegree = degree
	g.history = append(g.history, chord)
	return chord, nil
}

// Generate advances count steps in order. Each step depends on the prior
// register state and degree, so there is no batching.
func (g *Generator) Generate(count int) ([]model.Chord, error) {
	chords := make([]model.Chord, 0, count)
	for i := 0; i < count; i++ {
		chord, err := g.Step()
		if err != nil {
			return chords, err
		}
		chords = append(chords, chord)
	}
	return chords, nil
}

// State returns everything needed to resume this sequence exactly.
func (g *Generator) State() model.GeneratorState {
	return model.GeneratorState{
		RegisterState: g.reg.State(),
		Key:           g.key,
		Scale:         g.scale,
		Voicing:       g.voicing,
		Mode:          g.mode,
		Length:        g.reg.Length(),
		Mutation:      g.reg.Probability(),
	}
}

// History returns the chords emitted so far, oldest first.
func (g *Generator) History() []model.Chord {
	return g.history
}

// ScaleNotes returns the active scale's note names.
func (g *Generator) ScaleNotes() []string {
	return g.scaleNotes
}
