package bracket

import "strings"

// Accept reports whether ch may be appended to buffer.
func Accept(buffer string, ch rune) bool {
	if ch != ')' {
		return true
	}
	return Depth(buffer) > 0
}

// Depth returns the number of '(' in buffer not yet closed.
func Depth(buffer string) int {
	return strings.Count(buffer, "(") - strings.Count(buffer, ")")
}
