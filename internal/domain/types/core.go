package types

// ErrorText is the literal display shown when an evaluation fails.
const ErrorText = "Error"

// SessionID identifies a calculator session held by a server.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// Display is the text shown to the caller: a formatted result, an
// in-progress expression, or ErrorText.
type Display string

// String returns the string form of the display.
func (d Display) String() string { return string(d) }

// IsError reports whether the display is the evaluation failure token.
func (d Display) IsError() bool { return d == ErrorText }
