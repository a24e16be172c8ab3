// Package register implements a 16-bit shift register with probabilistic
// feedback, after Music Thing Modular's Turing Machine by Tom Whitwell.
// It produces looping byte sequences that gradually mutate — not random,
// not fixed, but evolving.
package register

import (
	"math/rand"
	"time"

	"github.com/djlansom/chord-engine/constants"
	"github.com/djlansom/chord-engine/util"
)

// Register holds a 16-bit value whose bottom `length` bits form a circular
// loop. On each step the bit about to fall off the right end is read, maybe
// flipped, and written back at the top of the loop. Bits above the loop are
// preserved unchanged. With probability 0 the loop repeats with period
// exactly `length`.
//
// The injected *rand.Rand is the only source of nondeterminism: it draws
// the default seed and decides the per-step feedback flip. Two registers
// sharing equal-seeded sources reproduce each other even at probability > 0.
type Register struct {
	value       int
	length      int
	probability float64
	rng         *rand.Rand
}

// New creates a register with a random 16-bit seed drawn from rng.
func New(length int, rng *rand.Rand) *Register {
	r := newRegister(length, rng)
	r.value = r.rng.Intn(constants.RegisterMask + 1)
	return r
}

// NewSeeded creates a register with an explicit seed.
func NewSeeded(seed uint16, length int, rng *rand.Rand) *Register {
	r := newRegister(length, rng)
	r.value = int(seed)
	return r
}

func newRegister(length int, rng *rand.Rand) *Register {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Register{
		length:      util.Clamp(length, constants.MinLoopLength, constants.MaxLoopLength),
		probability: 0.0,
		rng:         rng,
	}
}

// Step advances one clock step and returns the 8-bit output (0-255).
func (r *Register) Step() int {
	loopMask := (1 << r.length) - 1
	loopBits := r.value & loopMask

	// the bit about to fall off the right end
	feedback := loopBits & 1

	if r.rng.Float64() < r.probability {
		feedback ^= 1
	}

	loopBits >>= 1
	loopBits |= feedback << (r.length - 1)

	r.value = (r.value &^ loopMask) | loopBits
	r.value &= constants.RegisterMask

	return r.value & constants.OutputMask
}

// ScaleDegree maps the current 8-bit output to a degree index without
// advancing the register.
func (r *Register) ScaleDegree(numDegrees int) int {
	return (r.value & constants.OutputMask) % numDegrees
}

// State returns the full 16-bit register value for save/restore.
func (r *Register) State() int {
	return r.value
}

// SetState restores a saved register value, masked to 16 bits.
func (r *Register) SetState(state int) {
	r.value = state & constants.RegisterMask
}

// SetProbability sets the mutation probability, clamped to [0, 1].
// 0 = locked loop, 1 = feedback flipped every step.
func (r *Register) SetProbability(p float64) {
	r.probability = util.Clamp(p, 0.0, 1.0)
}

// SetLength sets the loop length, clamped to [2, 16]. Takes effect on the
// next step; bits crossing the old loop boundary are not renormalized.
func (r *Register) SetLength(length int) {
	r.length = util.Clamp(length, constants.MinLoopLength, constants.MaxLoopLength)
}

func (r *Register) Length() int {
	return r.length
}

func (r *Register) Probability() float64 {
	return r.probability
}
