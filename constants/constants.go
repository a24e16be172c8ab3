package constants

import "os"

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// Register geometry
const (
	RegisterMask  = 0xFFFF
	OutputMask    = 0xFF
	MinLoopLength = 2
	MaxLoopLength = 16
)

// Generator defaults (also the API query param defaults)
const (
	DefaultKey        = "C"
	DefaultScale      = "ionian"
	DefaultVoicing    = "sevenths"
	DefaultMode       = "raw"
	DefaultLoopLength = 8
	DefaultMutation   = 0.1
	DefaultCount      = 8
)

var AllKeys = []string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

var Voicings = []string{"triads", "sevenths", "extensions", "altered"}

var Modes = []string{"raw", "smooth"}

// Loop length options surfaced on /config
var LoopLengths = []int{2, 3, 4, 5, 6, 8, 12, 16}
