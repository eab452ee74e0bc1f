package constant

import (
	"math"
	"strconv"
	"strings"
)

// Definition maps a constant symbol to the expression it stands for.
type Definition struct {
	Symbol    rune
	Expansion string
}

// Pi is the symbol of the circle constant.
const Pi = 'π'

var table = []Definition{
	{Symbol: Pi, Expansion: strconv.FormatFloat(math.Pi, 'g', -1, 64)},
	{Symbol: 'K', Expansion: "9 * 10^9"},
	{Symbol: 'h', Expansion: "6.626 * 10^-34"},
	{Symbol: 'c', Expansion: "3 * 10^8"},
}

// Table returns the constant definitions in substitution order.
func Table() []Definition {
	return append([]Definition(nil), table...)
}

// Expand returns the expansion text for symbol.
func Expand(symbol rune) (string, bool) {
	for _, d := range table {
		if d.Symbol == symbol {
			return d.Expansion, true
		}
	}
	return "", false
}

// Substitute replaces every occurrence of each constant symbol in s with
// its parenthesized expansion.
func Substitute(s string) string {
	for _, d := range table {
		s = strings.ReplaceAll(s, string(d.Symbol), "("+d.Expansion+")")
	}
	return s
}
