package evaluator

import (
	"fmt"
	"math"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
)

var (
	// ErrParse reports input the grammar does not accept.
	ErrParse = fmt.Errorf("%w: parse error", domain.ErrEvaluation)
	// ErrEval reports a well-formed expression with no finite value.
	ErrEval = fmt.Errorf("%w: non-finite result", domain.ErrEvaluation)
)

// Evaluator is the default domain.Evaluator. The zero value is ready to use.
type Evaluator struct{}

// New returns an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Evaluate parses expr and returns its value.
func (Evaluator) Evaluate(expr string) (float64, error) {
	return Eval(expr)
}

// Eval parses and evaluates expr.
func Eval(expr string) (float64, error) {
	p := &parser{l: lexer{s: expr}}
	p.next()
	if p.cur.kind == tokEOF {
		return 0, fmt.Errorf("%w: empty expression", ErrParse)
	}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.cur.kind != tokEOF {
		return 0, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v", ErrEval, v)
	}
	return v, nil
}

type parser struct {
	l   lexer
	cur token
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseExpr() (float64, error) {
	return p.parseSum()
}

func (p *parser) parseSum() (float64, error) {
	left, err := p.parseProduct()
	if err != nil {
		return 0, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return 0, err
		}
		if op == tokPlus {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *parser) parseProduct() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.kind
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == tokStar {
			left *= right
			continue
		}
		if right == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrEval)
		}
		left /= right
	}
	return left, nil
}

func (p *parser) parseUnary() (float64, error) {
	switch p.cur.kind {
	case tokMinus:
		p.next()
		v, err := p.parseUnary()
		return -v, err
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.cur.kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) parsePrimary() (float64, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return v, nil
	case tokIdent:
		name := p.cur.text
		p.next()
		fn, ok := functions[name]
		if !ok {
			return 0, fmt.Errorf("%w: unknown identifier %q", ErrParse, name)
		}
		if p.cur.kind != tokLParen {
			return 0, fmt.Errorf("%w: expected '(' after %s", ErrParse, name)
		}
		arg, err := p.parseGroup()
		if err != nil {
			return 0, err
		}
		return fn(arg)
	case tokLParen:
		return p.parseGroup()
	case tokEOF:
		return 0, fmt.Errorf("%w: unexpected end of input", ErrParse)
	default:
		return 0, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
}

// parseGroup consumes "(" expr ")".
func (p *parser) parseGroup() (float64, error) {
	p.next()
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.cur.kind != tokRParen {
		return 0, fmt.Errorf("%w: expected ')'", ErrParse)
	}
	p.next()
	return v, nil
}

var functions = map[string]func(float64) (float64, error){
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, fmt.Errorf("%w: sqrt of negative number", ErrEval)
		}
		return math.Sqrt(x), nil
	},
}

// Compile-time assertion that Evaluator implements domain.Evaluator.
var _ domain.Evaluator = Evaluator{}
