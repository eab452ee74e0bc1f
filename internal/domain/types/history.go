package types

// HistoryEntry is a persisted record of one evaluation.
type HistoryEntry struct {
	Input      string  `json:"input"`
	Normalized string  `json:"normalized"`
	Display    Display `json:"display"`
	Value      float64 `json:"value,omitempty"`
	OK         bool    `json:"ok"`
	AtUTC      int64   `json:"at_utc"`
}
