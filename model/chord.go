package model

// Chord is a fully-spelled chord plus the generation metadata for one step.
type Chord struct {
	Symbol   string   `json:"symbol"`
	Quality  string   `json:"quality"`
	Root     string   `json:"root"`
	Notes    []string `json:"notes"`

	ScaleDegree int    `json:"scale_degree"`
	Roman       string `json:"roman"`
	Category    string `json:"category"`

	// RegisterValue is the raw register byte that produced this chord.
	// Mutated is true when smooth mode moved the chord off the raw degree.
	RegisterValue int  `json:"register_value"`
	Mutated       bool `json:"mutated"`
}

// GeneratorState is everything needed to resume a progression exactly.
type GeneratorState struct {
	RegisterState int     `json:"register_state"`
	Key           string  `json:"key"`
	Scale         string  `json:"scale"`
	Voicing       string  `json:"voicing"`
	Mode          string  `json:"mode"`
	Length        int     `json:"length"`
	Mutation      float64 `json:"mutation"`
}
