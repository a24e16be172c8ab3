// Package midi renders generated progressions to Standard MIDI Files.
package midi

import (
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/djlansom/chord-engine/model"
	"github.com/djlansom/chord-engine/theory"
)

const (
	ticksPerQuarter = 960
	channel         = 0
	velocity        = 90
	baseOctave      = 3
)

// NoteNumber converts a note name and octave to a MIDI key (C4 = 60).
func NoteNumber(name string, octave int) (uint8, error) {
	idx, err := theory.NoteIndex(name)
	if err != nil {
		return 0, err
	}
	key := (octave+1)*12 + idx
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("note %v%d out of MIDI range", name, octave)
	}
	return uint8(key), nil
}

// chordPitches stacks the chord's notes ascending from the base octave.
func chordPitches(chord model.Chord) ([]uint8, error) {
	pitches := make([]uint8, 0, len(chord.Notes))
	prev := -1
	for _, name := range chord.Notes {
		idx, err := theory.NoteIndex(name)
		if err != nil {
			return nil, err
		}
		key := (baseOctave+1)*12 + idx
		for key <= prev {
			key += 12
		}
		if key > 127 {
			return nil, fmt.Errorf("chord %v exceeds MIDI range", chord.Symbol)
		}
		pitches = append(pitches, uint8(key))
		prev = key
	}
	return pitches, nil
}

// RenderProgression builds a single-track SMF of block chords. durations
// holds beats per chord and is cycled if shorter than the progression;
// nil means a whole bar (4 beats) per chord.
func RenderProgression(chords []model.Chord, durations []float64, bpm float64) (*smf.SMF, error) {
	if len(chords) == 0 {
		return nil, fmt.Errorf("no chords to render")
	}
	if bpm <= 0 {
		bpm = 120
	}
	if len(durations) == 0 {
		durations = []float64{4}
	}

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))

	for i, chord := range chords {
		pitches, err := chordPitches(chord)
		if err != nil {
			return nil, err
		}
		beats := durations[i%len(durations)]
		ticks := uint32(beats * ticksPerQuarter)

		for _, key := range pitches {
			tr.Add(0, midi.NoteOn(channel, key, velocity))
		}
		for j, key := range pitches {
			var delta uint32
			if j == 0 {
				delta = ticks
			}
			tr.Add(delta, midi.NoteOff(channel, key))
		}
	}
	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)
	return &s, nil
}

// WriteProgressionFile renders the progression and writes it to path.
func WriteProgressionFile(path string, chords []model.Chord, durations []float64, bpm float64) error {
	s, err := RenderProgression(chords, durations, bpm)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = s.WriteTo(f)
	return err
}
