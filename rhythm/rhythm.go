// Package rhythm handles the chord rhythm pattern system: parsing pattern
// strings, expanding bars into beat durations per chord, and swing math.
package rhythm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/djlansom/chord-engine/util"
)

// ParsePattern parses a space-separated rhythm pattern string. Each number
// is the chord count for that bar; 0 holds the previous chord. Empty or
// whitespace input yields [1].
func ParsePattern(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []int{1}, nil
	}

	parts := strings.Fields(text)
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern entry: %q (must be a non-negative integer)", part)
		}
		if n < 0 {
			return nil, fmt.Errorf("pattern values must be non-negative, got %d", n)
		}
		result = append(result, n)
	}
	return result, nil
}

// ExpandPattern converts a pattern plus meter into beat durations per
// chord. Consecutive holds extend the previous chord's duration.
//
// Examples (beatsPerBar=4):
//
//	[1]          -> [4]            (1 chord per bar, lasts 4 beats)
//	[2]          -> [2, 2]
//	[1, 0]       -> [8]            (chord holds across 2 bars)
//	[1, 1, 1, 2] -> [4, 4, 4, 2, 2]
func ExpandPattern(pattern []int, beatsPerBar int) ([]float64, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("pattern cannot be empty")
	}
	if pattern[0] == 0 {
		return nil, fmt.Errorf("pattern cannot start with 0 (nothing to hold)")
	}

	var durations []float64
	for _, chordsInBar := range pattern {
		if chordsInBar == 0 {
			durations[len(durations)-1] += float64(beatsPerBar)
			continue
		}
		beatsPerChord := float64(beatsPerBar) / float64(chordsInBar)
		for i := 0; i < chordsInBar; i++ {
			durations = append(durations, beatsPerChord)
		}
	}
	return durations, nil
}

// SimpleToPattern converts the simple-mode dropdowns to a pattern. Only
// one of barsPerChord or chordsPerBar can be above 1.
func SimpleToPattern(barsPerChord, chordsPerBar int) ([]int, error) {
	if barsPerChord < 1 || chordsPerBar < 1 {
		return nil, fmt.Errorf("values must be >= 1")
	}
	if barsPerChord > 1 && chordsPerBar > 1 {
		return nil, fmt.Errorf("only one of bars_per_chord or chords_per_bar can be > 1")
	}

	if barsPerChord > 1 {
		pattern := make([]int, barsPerChord)
		pattern[0] = 1
		return pattern, nil
	}
	return []int{chordsPerBar}, nil
}

// CalcSwingDelays calculates long and short beat delays for swing feel.
// swingPct 50 is straight, 67 is triplet swing (2:1); clamped to [50, 67].
// The pair always sums to 2*beatMS.
func CalcSwingDelays(beatMS, swingPct float64) (float64, float64) {
	swingPct = util.Clamp(swingPct, 50.0, 67.0)
	ratio := swingPct / 100.0
	pair := beatMS * 2
	return pair * ratio, pair * (1.0 - ratio)
}
