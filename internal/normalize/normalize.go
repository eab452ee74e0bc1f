package normalize

import (
	"strings"

	"github.com/rajan221209/Chemistry-Calculator/internal/constant"
)

// Root is the square-root sign accepted in raw input.
const Root = '√'

// Rule is one named rewrite pass.
type Rule struct {
	Name  string
	Apply func(string) string
}

var rules = []Rule{
	{Name: "constants", Apply: constant.Substitute},
	{Name: "digit-paren", Apply: insertBetween(isDigit, isOpen)},
	{Name: "close-digit", Apply: insertBetween(isClose, isDigit)},
	{Name: "digit-letter", Apply: insertBetween(isDigit, isLetter)},
	{Name: "letter-digit", Apply: insertBetween(isLetter, isDigit)},
	{Name: "close-letter", Apply: insertBetween(isClose, isLetter)},
	{Name: "sqrt", Apply: rewriteRoots},
}

// Rules returns the rewrite passes in the order Normalize applies them.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Normalize applies every rule once, in order, to raw.
func Normalize(raw string) string {
	s := raw
	for _, r := range rules {
		s = r.Apply(s)
	}
	return s
}

// insertBetween returns a pass that writes '*' between each adjacent pair
// (a, b) with left(a) and right(b). Matches do not overlap: once a pair is
// rewritten the scan resumes after b.
func insertBetween(left, right func(rune) bool) func(string) string {
	return func(s string) string {
		rs := []rune(s)
		var b strings.Builder
		b.Grow(len(s) + 8)
		for i := 0; i < len(rs); i++ {
			b.WriteRune(rs[i])
			if i+1 < len(rs) && left(rs[i]) && right(rs[i+1]) {
				b.WriteByte('*')
				b.WriteRune(rs[i+1])
				i++
			}
		}
		return b.String()
	}
}

// rewriteRoots turns each root sign followed by a parenthesized group or a
// decimal literal into a sqrt call. Anything else after the sign is left
// untouched.
func rewriteRoots(s string) string {
	if !strings.ContainsRune(s, Root) {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(rs); i++ {
		if rs[i] != Root {
			b.WriteRune(rs[i])
			continue
		}
		end := rootArgEnd(rs, i+1)
		if end < 0 {
			b.WriteRune(rs[i])
			continue
		}
		b.WriteString("sqrt(")
		b.WriteString(string(rs[i+1 : end]))
		b.WriteByte(')')
		i = end - 1
	}
	return b.String()
}

// rootArgEnd returns the index just past the root argument starting at
// start, or -1 if no argument matches there.
func rootArgEnd(rs []rune, start int) int {
	if start >= len(rs) {
		return -1
	}
	if rs[start] == '(' {
		for j := start + 1; j < len(rs); j++ {
			if rs[j] == ')' {
				return j + 1
			}
		}
		return -1
	}
	j, digits, dots := start, 0, 0
scan:
	for ; j < len(rs); j++ {
		switch {
		case isDigit(rs[j]):
			digits++
		case rs[j] == '.' && dots == 0:
			dots++
		default:
			break scan
		}
	}
	if digits == 0 {
		return -1
	}
	return j
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' }
func isOpen(r rune) bool   { return r == '(' }
func isClose(r rune) bool  { return r == ')' }
