package types

// Outcome describes one evaluation of a session buffer.
//
// Input is the buffer before evaluation, Normalized is what the evaluator
// saw, and Display is what replaced the buffer. Err is nil on success.
type Outcome struct {
	Input      string
	Normalized string
	Value      float64
	Display    Display
	Err        error
}

// OK reports whether the evaluation produced a number.
func (o Outcome) OK() bool { return o.Err == nil }
