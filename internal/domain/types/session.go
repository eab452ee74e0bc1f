package types

// Snapshot is the persisted state of a session's input buffer.
type Snapshot struct {
	Text       string `json:"text"`
	UpdatedUTC int64  `json:"updated_utc"`
}

// State is the externally visible state of a session, as served over HTTP.
type State struct {
	ID         SessionID `json:"id,omitempty"`
	Text       string    `json:"text"`
	Depth      int       `json:"depth"`
	Normalized string    `json:"normalized,omitempty"`
	OK         *bool     `json:"ok,omitempty"`
}
