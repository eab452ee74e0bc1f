// Package keypad translates key names and typed lines into the runes a
// session buffer accepts.
//
// ASCII aliases let terminal users reach the two symbols that are awkward to
// type: "pi" for π and "sqrt" (or "root") for the root sign.
package keypad

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rajan221209/Chemistry-Calculator/internal/constant"
	"github.com/rajan221209/Chemistry-Calculator/internal/normalize"
)

// ErrUnknownKey is returned for a multi-character key name with no alias.
var ErrUnknownKey = errors.New("unknown key")

var aliases = map[string]rune{
	"pi":   constant.Pi,
	"sqrt": normalize.Root,
	"root": normalize.Root,
}

// Parse returns the rune for a single key name.
func Parse(name string) (rune, error) {
	if r, ok := aliases[strings.ToLower(name)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Runes expands a typed line into keys. Whitespace is dropped and the
// aliases "pi" and "sqrt" are replaced by their symbols; everything else is
// passed through one rune per key.
func Runes(line string) []rune {
	var out []rune
	for i := 0; i < len(line); {
		if alias, r, ok := matchAlias(line[i:]); ok {
			out = append(out, r)
			i += len(alias)
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		i += size
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchAlias(s string) (string, rune, bool) {
	for _, alias := range []string{"sqrt", "pi"} {
		if strings.HasPrefix(s, alias) {
			return alias, aliases[alias], true
		}
	}
	return "", 0, false
}
