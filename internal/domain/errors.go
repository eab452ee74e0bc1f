package domain

import "errors"

// ErrEvaluation is the single failure kind observable outside the core:
// the evaluator could not parse or compute a normalized expression.
var ErrEvaluation = errors.New("evaluation failed")
