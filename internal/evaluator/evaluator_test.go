package evaluator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/evaluator"
)

func TestEval_Values(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "1+2*3", want: 7},
		{in: "(1+2)*3", want: 9},
		{in: "10/4", want: 2.5},
		{in: "2^3^2", want: 512},
		{in: "-2^2", want: -4},
		{in: "2^-1", want: 0.5},
		{in: "--3", want: 3},
		{in: "+3-1", want: 2},
		{in: ".5+1.", want: 1.5},
		{in: "sqrt(16)", want: 4},
		{in: "sqrt((4+5))", want: 3},
		{in: "2*sqrt(9)+1", want: 7},
		{in: " 9 * 10^9 ", want: 9e9},
		{in: "2*(3+1)", want: 8},
	}
	for _, tt := range tests {
		got, err := evaluator.Eval(tt.in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		if math.Abs(got-tt.want) > 1e-12*math.Max(1, math.Abs(tt.want)) {
			t.Fatalf("Eval(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEval_Planck(t *testing.T) {
	got, err := evaluator.Eval("6.626 * 10^-34")
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if math.Abs(got-6.626e-34) > 1e-46 {
		t.Fatalf("got %v", got)
	}
}

func TestEval_ParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"(2+3",
		"2+3)",
		"2+",
		"*2",
		"(2)(3)",
		"2sqrt(16)",
		"x+1",
		"sqrt 4",
		"√16",
		"Error",
		"1.234000 x 10^3",
		".",
	}
	for _, in := range inputs {
		_, err := evaluator.Eval(in)
		if !errors.Is(err, evaluator.ErrParse) {
			t.Fatalf("Eval(%q) err = %v, want ErrParse", in, err)
		}
		if !errors.Is(err, domain.ErrEvaluation) {
			t.Fatalf("Eval(%q) err = %v, want it to wrap domain.ErrEvaluation", in, err)
		}
	}
}

func TestEval_NonFinite(t *testing.T) {
	inputs := []string{
		"1/0",
		"0/0",
		"sqrt(-1)",
		"10^400",
		"0^-1",
	}
	for _, in := range inputs {
		_, err := evaluator.Eval(in)
		if !errors.Is(err, evaluator.ErrEval) {
			t.Fatalf("Eval(%q) err = %v, want ErrEval", in, err)
		}
	}
}

func TestEvaluator_ImplementsContract(t *testing.T) {
	var ev domain.Evaluator = evaluator.New()
	got, err := ev.Evaluate("sqrt(16)")
	if err != nil || got != 4 {
		t.Fatalf("Evaluate = %v, %v; want 4, nil", got, err)
	}
}
