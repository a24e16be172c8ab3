package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteIndexSharpNames(t *testing.T) {
	expected := map[string]int{
		"C": 0, "C#": 1, "D": 2, "D#": 3, "E": 4, "F": 5,
		"F#": 6, "G": 7, "G#": 8, "A": 9, "A#": 10, "B": 11,
	}
	for name, idx := range expected {
		got, err := NoteIndex(name)
		assert.NoError(t, err)
		assert.Equal(t, idx, got, name)
	}
}

func TestNoteIndexFlatNames(t *testing.T) {
	expected := map[string]int{"Db": 1, "Eb": 3, "Gb": 6, "Ab": 8, "Bb": 10}
	for name, idx := range expected {
		got, err := NoteIndex(name)
		assert.NoError(t, err)
		assert.Equal(t, idx, got, name)
	}
}

func TestNoteIndexStripsWhitespace(t *testing.T) {
	got, err := NoteIndex(" C ")
	assert.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestNoteIndexUnknownNames(t *testing.T) {
	for _, name := range []string{"H", "C##", ""} {
		_, err := NoteIndex(name)
		assert.Error(t, err, name)
	}
}

func TestSpellByKeyContext(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", Spell(1, "G"))
	assert.Equal("Db", Spell(1, "F"))
	assert.Equal("C#", Spell(1, "C"))
	assert.Equal("D#", Spell(3, "Am"))
	assert.Equal("Eb", Spell(3, "Dm"))
	assert.Equal("D", Spell(14, "C"))
	assert.Equal("B", Spell(-1, "C"))
}

func TestCIonianScale(t *testing.T) {
	notes, err := GetScaleNotes("C", "ionian")
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, notes)
}

func TestFIonianUsesFlatSpelling(t *testing.T) {
	notes, err := GetScaleNotes("F", "ionian")
	assert.NoError(t, err)
	assert.Contains(t, notes, "Bb")
	assert.NotContains(t, notes, "A#")
}

func TestGIonianHasFSharp(t *testing.T) {
	notes, err := GetScaleNotes("G", "ionian")
	assert.NoError(t, err)
	assert.Contains(t, notes, "F#")
}

func TestScaleNoteCounts(t *testing.T) {
	counts := map[string]int{
		"ionian": 7, "dorian": 7, "locrian": 7,
		"harmonic_minor": 7, "melodic_minor": 7,
		"whole_tone": 6, "blues": 6,
		"minor_pentatonic": 5, "major_pentatonic": 5,
		"dim_whole_half": 8, "bebop_dominant": 8,
	}
	for name, n := range counts {
		notes, err := GetScaleNotes("C", name)
		assert.NoError(t, err)
		assert.Len(t, notes, n, name)
	}
}

func TestAllScalesStartOnRoot(t *testing.T) {
	for _, name := range ScaleNames() {
		notes, err := GetScaleNotes("C", name)
		assert.NoError(t, err)
		assert.Equal(t, "C", notes[0], name)
	}
}

func TestUnknownScaleAndRoot(t *testing.T) {
	_, err := GetScaleNotes("C", "nonexistent")
	assert.Error(t, err)
	_, err = GetScaleNotes("X", "ionian")
	assert.Error(t, err)
}

func TestScaleNamesSorted(t *testing.T) {
	names := ScaleNames()
	assert.Len(t, names, len(Scales))
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestBuildBasicChords(t *testing.T) {
	assert := assert.New(t)

	c, err := BuildChord("C", "maj", "C")
	assert.NoError(err)
	assert.Equal("C", c.Symbol)
	assert.Equal([]string{"C", "E", "G"}, c.Notes)

	c, err = BuildChord("A", "min7", "C")
	assert.NoError(err)
	assert.Equal("Am7", c.Symbol)
	assert.Equal([]string{"A", "C", "E", "G"}, c.Notes)

	c, err = BuildChord("G", "dom7", "C")
	assert.NoError(err)
	assert.Equal("G7", c.Symbol)
	assert.Equal([]string{"G", "B", "D", "F"}, c.Notes)

	c, err = BuildChord("Bb", "maj7", "F")
	assert.NoError(err)
	assert.Equal("Bbmaj7", c.Symbol)
	assert.Equal([]string{"Bb", "D", "F", "A"}, c.Notes)
}

func TestBuildChordErrors(t *testing.T) {
	_, err := BuildChord("C", "power5", "C")
	assert.Error(t, err)
	_, err = BuildChord("X", "maj", "C")
	assert.Error(t, err)
}

func TestAllQualitiesBuild(t *testing.T) {
	for quality, intervals := range ChordTypes {
		c, err := BuildChord("C", quality, "C")
		assert.NoError(t, err, quality)
		assert.NotEmpty(t, c.Symbol, quality)
		assert.Len(t, c.Notes, len(intervals), quality)
	}
}

func TestQualityCategories(t *testing.T) {
	cases := map[string]string{
		"maj":    "major",
		"maj9":   "major",
		"min7":   "minor",
		"dom13":  "dominant",
		"min7b5": "diminished",
		"aug":    "augmented",
		"sus4":   "sus",
		"7alt":   "altered",
		"bogus":  "dominant",
	}
	for quality, category := range cases {
		assert.Equal(t, category, QualityCategory(quality), quality)
	}
}

func TestDiatonicChordCIonian(t *testing.T) {
	notes, _ := GetScaleNotes("C", "ionian")
	c, err := GetDiatonicChord("ionian", 4, "sevenths", notes, "C")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("G7", c.Symbol)
	assert.Equal("dom7", c.Quality)
	assert.Equal(4, c.ScaleDegree)
	assert.Equal("V", c.Roman)
	assert.Equal("dominant", c.Category)
}

func TestDiatonicChordVoicingLevels(t *testing.T) {
	notes, _ := GetScaleNotes("C", "ionian")
	expected := map[string]string{
		"triads":     "maj",
		"sevenths":   "maj7",
		"extensions": "maj9",
		"altered":    "maj9",
	}
	for voicing, quality := range expected {
		c, err := GetDiatonicChord("ionian", 0, voicing, notes, "C")
		assert.NoError(t, err, voicing)
		assert.Equal(t, quality, c.Quality, voicing)
	}
}

func TestDiatonicChordUnknownVoicingFallsBack(t *testing.T) {
	notes, _ := GetScaleNotes("C", "ionian")
	c, err := GetDiatonicChord("ionian", 0, "bogus", notes, "C")
	assert.NoError(t, err)
	assert.Equal(t, "maj7", c.Quality)
}

func TestDiatonicChordDegreeWrapsAround(t *testing.T) {
	notes, _ := GetScaleNotes("C", "ionian")
	wrapped, err := GetDiatonicChord("ionian", 9, "sevenths", notes, "C")
	assert.NoError(t, err)
	direct, err := GetDiatonicChord("ionian", 2, "sevenths", notes, "C")
	assert.NoError(t, err)
	assert.Equal(t, direct, wrapped)

	negative, err := GetDiatonicChord("ionian", -1, "sevenths", notes, "C")
	assert.NoError(t, err)
	sixth, err := GetDiatonicChord("ionian", 6, "sevenths", notes, "C")
	assert.NoError(t, err)
	assert.Equal(t, sixth, negative)
}

func TestDiatonicChordUnmappedScaleUsesDefault(t *testing.T) {
	notes, _ := GetScaleNotes("C", "major_pentatonic")
	c, err := GetDiatonicChord("major_pentatonic", 0, "sevenths", notes, "C")
	assert.NoError(t, err)
	assert.Equal(t, "maj7", c.Quality)
}

func TestDiatonicChordEightNoteScaleRoman(t *testing.T) {
	notes, _ := GetScaleNotes("C", "bebop_dominant")
	c, err := GetDiatonicChord("bebop_dominant", 7, "sevenths", notes, "C")
	assert.NoError(t, err)
	assert.Equal(t, "8", c.Roman)
	assert.Equal(t, 7, c.ScaleDegree)
}
