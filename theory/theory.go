// Package theory covers keys, scales, chords, and diatonic harmony.
//
// Jazz-capable: triads through altered dominants, 20+ scales, nearly 30
// chord types, and enharmonic spelling picked by key context.
package theory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/djlansom/chord-engine/model"
	"github.com/djlansom/chord-engine/util"
)

var Sharps = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var Flats = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Key signature determines which spelling to use.
var flatKeys = map[string]bool{
	"F": true, "Bb": true, "Eb": true, "Ab": true, "Db": true, "Gb": true,
	"Dm": true, "Gm": true, "Cm": true, "Fm": true, "Bbm": true, "Ebm": true,
}

// NoteIndex converts a note name to its chromatic index (0-11).
func NoteIndex(name string) (int, error) {
	name = strings.TrimSpace(name)
	for i, n := range Sharps {
		if n == name {
			return i, nil
		}
	}
	for i, n := range Flats {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown note: %v", name)
}

// Spell returns the correctly-spelled note name for a chromatic index in a key.
func Spell(index int, key string) string {
	idx := ((index % 12) + 12) % 12
	if flatKeys[key] {
		return Flats[idx]
	}
	return Sharps[idx]
}

// Scales maps scale names to semitone intervals from the root.
var Scales = map[string][]int{
	// Major modes
	"ionian":     {0, 2, 4, 5, 7, 9, 11},
	"dorian":     {0, 2, 3, 5, 7, 9, 10},
	"phrygian":   {0, 1, 3, 5, 7, 8, 10},
	"lydian":     {0, 2, 4, 6, 7, 9, 11},
	"mixolydian": {0, 2, 4, 5, 7, 9, 10},
	"aeolian":    {0, 2, 3, 5, 7, 8, 10},
	"locrian":    {0, 1, 3, 5, 6, 8, 10},

	// Harmonic minor family
	"harmonic_minor":    {0, 2, 3, 5, 7, 8, 11},
	"phrygian_dominant": {0, 1, 4, 5, 7, 8, 10},

	// Melodic minor family
	"melodic_minor":   {0, 2, 3, 5, 7, 9, 11},
	"lydian_dominant": {0, 2, 4, 6, 7, 9, 10},
	"altered":         {0, 1, 3, 4, 6, 8, 10},

	// Symmetric
	"whole_tone":     {0, 2, 4, 6, 8, 10},
	"dim_whole_half": {0, 2, 3, 5, 6, 8, 9, 11},
	"dim_half_whole": {0, 1, 3, 4, 6, 7, 9, 10},

	// Other
	"blues":            {0, 3, 5, 6, 7, 10},
	"minor_pentatonic": {0, 3, 5, 7, 10},
	"major_pentatonic": {0, 2, 4, 7, 9},
	"bebop_dominant":   {0, 2, 4, 5, 7, 9, 10, 11},
	"bebop_major":      {0, 2, 4, 5, 7, 8, 9, 11},
}

// ScaleNames returns all known scale names, sorted.
func ScaleNames() []string {
	return util.GetKeysSorted(Scales)
}

// GetScaleNotes returns the note names for a scale built on root.
func GetScaleNotes(root, scaleName string) ([]string, error) {
	intervals, ok := Scales[scaleName]
	if !ok {
		return nil, fmt.Errorf("unknown scale: %v", scaleName)
	}
	rootIdx, err := NoteIndex(root)
	if err != nil {
		return nil, err
	}
	notes := make([]string, len(intervals))
	for i, iv := range intervals {
		notes[i] = Spell((rootIdx+iv)%12, root)
	}
	return notes, nil
}

// ChordTypes maps chord qualities to semitone intervals from the chord root.
var ChordTypes = map[string][]int{
	// Triads
	"maj":  {0, 4, 7},
	"min":  {0, 3, 7},
	"dim":  {0, 3, 6},
	"aug":  {0, 4, 8},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},

	// Sevenths
	"maj7":    {0, 4, 7, 11},
	"min7":    {0, 3, 7, 10},
	"dom7":    {0, 4, 7, 10},
	"min7b5":  {0, 3, 6, 10},
	"dim7":    {0, 3, 6, 9},
	"minmaj7": {0, 3, 7, 11},
	"7sus4":   {0, 5, 7, 10},

	// Ninths
	"maj9": {0, 4, 7, 11, 14},
	"min9": {0, 3, 7, 10, 14},
	"dom9": {0, 4, 7, 10, 14},
	"add9": {0, 4, 7, 14},

	// Elevenths
	"min11": {0, 3, 7, 10, 14, 17},
	"dom11": {0, 4, 7, 10, 14, 17},

	// Thirteenths
	"maj13": {0, 4, 7, 11, 14, 21},
	"min13": {0, 3, 7, 10, 14, 21},
	"dom13": {0, 4, 7, 10, 14, 21},

	// Altered dominants
	"7b9":  {0, 4, 7, 10, 13},
	"7#9":  {0, 4, 7, 10, 15},
	"7b5":  {0, 4, 6, 10},
	"7#5":  {0, 4, 8, 10},
	"7alt": {0, 4, 8, 10, 13}, // 7#5b9 — common "alt" voicing
}

// Display suffixes for chord symbols
var chordSymbols = map[string]string{
	"maj": "", "min": "m", "dim": "dim", "aug": "aug", "sus2": "sus2", "sus4": "sus4",
	"maj7": "maj7", "min7": "m7", "dom7": "7", "min7b5": "m7b5", "dim7": "dim7",
	"minmaj7": "mMaj7", "7sus4": "7sus4",
	"maj9": "maj9", "min9": "m9", "dom9": "9", "add9": "add9",
	"min11": "m11", "dom11": "11",
	"maj13": "maj13", "min13": "m13", "dom13": "13",
	"7b9": "7b9", "7#9": "7#9", "7b5": "7b5", "7#5": "7#5", "7alt": "7alt",
}

// BuildChord spells the chord of the given quality on root.
func BuildChord(root, quality, key string) (model.Chord, error) {
	var c model.Chord
	intervals, ok := ChordTypes[quality]
	if !ok {
		return c, fmt.Errorf("unknown chord quality: %v", quality)
	}
	rootIdx, err := NoteIndex(root)
	if err != nil {
		return c, err
	}
	notes := make([]string, len(intervals))
	for i, iv := range intervals {
		notes[i] = Spell((rootIdx+iv)%12, key)
	}
	c.Symbol = root + chordSymbols[quality]
	c.Quality = quality
	c.Root = root
	c.Notes = notes
	return c, nil
}

// Roman numeral labels for display
var Roman = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Diatonic chord maps: scale -> voicing level -> quality per degree.
var diatonicChords = map[string]map[string][]string{
	"ionian": {
		"triads":     {"maj", "min", "min", "maj", "maj", "min", "dim"},
		"sevenths":   {"maj7", "min7", "min7", "maj7", "dom7", "min7", "min7b5"},
		"extensions": {"maj9", "min9", "min7", "maj9", "dom13", "min9", "min7b5"},
		"altered":    {"maj9", "min9", "min7", "maj9", "7alt", "min9", "min7b5"},
	},
	"dorian": {
		"triads":     {"min", "min", "maj", "maj", "min", "dim", "maj"},
		"sevenths":   {"min7", "min7", "maj7", "dom7", "min7", "min7b5", "maj7"},
		"extensions": {"min9", "min7", "maj9", "dom9", "min9", "min7b5", "maj9"},
		"altered":    {"min9", "min7", "maj9", "7alt", "min9", "min7b5", "maj9"},
	},
	"mixolydian": {
		"triads":     {"maj", "min", "dim", "maj", "min", "min", "maj"},
		"sevenths":   {"dom7", "min7", "min7b5", "maj7", "min7", "min7", "maj7"},
		"extensions": {"dom9", "min9", "min7b5", "maj9", "min9", "min7", "maj9"},
		"altered":    {"dom13", "min9", "min7b5", "maj9", "min9", "min7", "maj9"},
	},
	"aeolian": {
		"triads":     {"min", "dim", "maj", "min", "min", "maj", "maj"},
		"sevenths":   {"min7", "min7b5", "maj7", "min7", "min7", "maj7", "dom7"},
		"extensions": {"min9", "min7b5", "maj9", "min9", "min7", "maj9", "dom9"},
		"altered":    {"min9", "min7b5", "maj9", "min9", "min7", "maj9", "7alt"},
	},
	"harmonic_minor": {
		"triads":     {"min", "dim", "aug", "min", "maj", "maj", "dim"},
		"sevenths":   {"minmaj7", "min7b5", "maj7", "min7", "dom7", "maj7", "dim7"},
		"extensions": {"minmaj7", "min7b5", "maj7", "min9", "dom7", "maj9", "dim7"},
		"altered":    {"minmaj7", "min7b5", "maj7", "min9", "7b9", "maj9", "dim7"},
	},
	"melodic_minor": {
		"triads":     {"min", "min", "aug", "maj", "maj", "dim", "dim"},
		"sevenths":   {"minmaj7", "min7", "maj7", "dom7", "dom7", "min7b5", "min7b5"},
		"extensions": {"minmaj7", "min9", "maj7", "dom9", "dom9", "min7b5", "min7b5"},
		"altered":    {"minmaj7", "min9", "maj7", "7#9", "7alt", "min7b5", "min7b5"},
	},
}

// Fallback for scales without explicit diatonic maps
var diatonicChordsDefault = map[string][]string{
	"triads":     {"maj", "min", "min", "maj", "maj", "min", "dim"},
	"sevenths":   {"maj7", "min7", "min7", "maj7", "dom7", "min7", "min7b5"},
	"extensions": {"maj9", "min9", "min7", "maj9", "dom13", "min9", "min7b5"},
	"altered":    {"maj9", "min9", "min7", "maj9", "7alt", "min9", "min7b5"},
}

// QualityCategory classifies a chord quality for color coding in the UI.
func QualityCategory(quality string) string {
	switch quality {
	case "maj", "maj7", "maj9", "maj13", "add9":
		return "major"
	case "min", "min7", "min9", "min11", "min13", "minmaj7":
		return "minor"
	case "dom7", "dom9", "dom11", "dom13", "7sus4":
		return "dominant"
	case "dim", "dim7", "min7b5":
		return "diminished"
	case "aug", "7#5":
		return "augmented"
	case "sus2", "sus4":
		return "sus"
	case "7b9", "7#9", "7b5", "7alt":
		return "altered"
	}
	return "dominant"
}

// GetDiatonicChord builds the diatonic chord for a scale degree and voicing
// level. The degree is reduced modulo len(scaleNotes); an unrecognized
// voicing falls back to sevenths. Never fails for a degree/voicing pair
// derived from a valid scale.
func GetDiatonicChord(scaleName string, degree int, voicing string, scaleNotes []string, key string) (model.Chord, error) {
	chordMap, ok := diatonicChords[scaleName]
	if !ok {
		chordMap = diatonicChordsDefault
	}
	voicingMap, ok := chordMap[voicing]
	if !ok {
		voicingMap = chordMap["sevenths"]
	}

	n := len(scaleNotes)
	degree = ((degree % n) + n) % n
	root := scaleNotes[degree]
	quality := voicingMap[degree%len(voicingMap)]

	chord, err := BuildChord(root, quality, key)
	if err != nil {
		return chord, err
	}
	chord.ScaleDegree = degree
	if degree < len(Roman) {
		chord.Roman = Roman[degree]
	} else {
		chord.Roman = strconv.Itoa(degree + 1)
	}
	chord.Category = QualityCategory(quality)
	return chord, nil
}
