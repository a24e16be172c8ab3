package model

type ConfigResponse struct {
	Keys     []string `json:"keys"`
	Scales   []string `json:"scales"`
	Voicings []string `json:"voicings"`
	Modes    []string `json:"modes"`
	Lengths  []int    `json:"lengths"`
}

type CreateSessionRequest struct {
	Key      *string  `json:"key"`
	Scale    *string  `json:"scale"`
	Length   *int     `json:"length"`
	Mutation *float64 `json:"mutation"`
	Voicing  *string  `json:"voicing"`
	Mode     *string  `json:"mode"`
	Seed     *int     `json:"seed"`
}

type SessionResponse struct {
	SessionId string         `json:"session_id"`
	State     GeneratorState `json:"state"`
}

type StepResponse struct {
	SessionId string         `json:"session_id"`
	Chord     Chord          `json:"chord"`
	State     GeneratorState `json:"state"`
}

type ProgressionResponse struct {
	SessionId     string         `json:"session_id"`
	Chords        []Chord        `json:"chords"`
	RegisterState int            `json:"register_state"`
	Seed          *int           `json:"seed"`
	Settings      GeneratorState `json:"settings"`
}

type ConfigureRequest struct {
	Key      *string  `json:"key"`
	Scale    *string  `json:"scale"`
	Length   *int     `json:"length"`
	Mutation *float64 `json:"mutation"`
	Voicing  *string  `json:"voicing"`
	Mode     *string  `json:"mode"`
}

type RestoreRequest struct {
	RegisterState int `json:"register_state"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
