package interfaces

// Evaluator computes the value of a normalized arithmetic expression.
//
// Implementations accept digits, a decimal point, + - * / ^, parentheses
// and sqrt(...). Syntax errors and non-finite results are reported as
// errors wrapping domain.ErrEvaluation.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}
