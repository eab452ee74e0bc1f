// Package evaluator is the default arithmetic evaluator used by calculator
// sessions.
//
// It parses and evaluates a normalized expression in one recursive-descent
// pass:
//
//	expr    = sum
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | "sqrt" "(" expr ")" | "(" expr ")"
//
// '^' is right associative and binds tighter than a leading minus, so
// -2^2 is -4 and 10^-34 is accepted. Whitespace is ignored.
//
// Any type with an Evaluate(string) (float64, error) method may replace
// this one; sessions only depend on domain.Evaluator.
package evaluator
