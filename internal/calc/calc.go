// Package calc evaluates flat arithmetic expressions over decint.Int.
//
// An expression is a whitespace-separated sequence of operands and
// operators, e.g. "12 + -3 * 4". Operands use the decint input grammar, so
// "-3" is a negative literal while a lone "-" is subtraction. Multiplication
// binds tighter than addition and subtraction; all operators are left
// associative.
package calc

import (
	"context"
	"strings"

	"github.com/cockroachdb/decint"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmpty is the cause of errors for expressions with no tokens.
	ErrEmpty = errors.New("empty expression")
	// ErrDanglingOperator is the cause of errors for expressions that end
	// with an operator.
	ErrDanglingOperator = errors.New("operator has no right operand")
	// ErrUnknownOperator is the cause of errors for operator tokens other
	// than +, -, and *.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Eval evaluates expr. Errors name the 1-based position of the offending
// token; errors.Cause of an operand error is a *decint.ParseError.
func Eval(expr string) (*decint.Int, error) {
	toks := strings.Fields(expr)
	if len(toks) == 0 {
		return nil, ErrEmpty
	}
	operand := func(i int) (*decint.Int, error) {
		x, err := decint.NewFromString(toks[i])
		if err != nil {
			return nil, errors.Wrapf(err, "token %d", i+1)
		}
		return x, nil
	}

	sum := new(decint.Int)
	pending := "+"
	term, err := operand(0)
	if err != nil {
		return nil, err
	}
	fold := func() {
		if pending == "+" {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
	}
	for i := 1; i < len(toks); i += 2 {
		op := toks[i]
		switch op {
		case "+", "-", "*":
		default:
			return nil, errors.Wrapf(ErrUnknownOperator, "token %d (%q)", i+1, op)
		}
		if i+1 == len(toks) {
			return nil, errors.Wrapf(ErrDanglingOperator, "token %d (%q)", i+1, op)
		}
		y, err := operand(i + 1)
		if err != nil {
			return nil, err
		}
		if op == "*" {
			term.Mul(term, y)
			continue
		}
		fold()
		pending, term = op, y
	}
	fold()
	return sum, nil
}

// Result is the outcome of evaluating one expression.
type Result struct {
	Expr  string
	Value *decint.Int
	Err   error
}

// EvalAll evaluates exprs with at most workers running at once. Results are
// in input order and an error in one expression does not stop the others.
// If ctx is canceled, evaluation stops and ctx.Err() is returned along with
// the results gathered so far.
func EvalAll(ctx context.Context, exprs []string, workers int) ([]Result, error) {
	results := make([]Result, len(exprs))
	if len(exprs) == 0 {
		return results, ctx.Err()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(workers, len(exprs))))

	for i, expr := range exprs {
		if gctx.Err() != nil {
			break
		}
		i, expr := i, expr
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			v, err := Eval(expr)
			results[i] = Result{Expr: expr, Value: v, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
