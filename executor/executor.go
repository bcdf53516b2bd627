// Package executor evaluates expression trees to float64 values.
package executor

import (
	"errors"
	"fmt"
	"math"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("domain error")
	ErrNotFinite      = errors.New("result is not finite")
)

// epsilon is the magnitude under which a value is treated as zero, or as
// integral for factorials.
const epsilon = 1e-12

func isZero(x float64) bool { return math.Abs(x) < epsilon }

// Evaluate walks the tree and computes its value. The angle mode applies to
// every trigonometric call in the tree.
func Evaluate(expr ast.Expr, mode AngleMode) (float64, error) {
	return evaluate(expr, mode)
}

func evaluate(expr ast.Expr, mode AngleMode) (float64, error) {
	var (
		v   float64
		err error
	)
	switch e := expr.(type) {
	case *ast.NumberExpr:
		v = e.Value
	case *ast.ConstantExpr:
		v, err = evaluateConstant(e)
	case *ast.BinaryExpr:
		v, err = evaluateBinary(e, mode)
	case *ast.PrefixExpr:
		v, err = evaluatePrefix(e, mode)
	case *ast.CallExpr:
		v, err = evaluateCall(e, mode)
	case *ast.FactorialExpr:
		v, err = evaluateFactorial(e, mode)
	default:
		return 0, fmt.Errorf("unsupported expression type %T", expr)
	}
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("evaluate %s: %w", expr.Dump(), ErrNotFinite)
	}
	return v, nil
}

func evaluateConstant(c *ast.ConstantExpr) (float64, error) {
	switch c.Kind {
	case ast.ConstPi:
		return math.Pi, nil
	case ast.ConstE:
		return math.E, nil
	}
	return 0, fmt.Errorf("unsupported constant %d", c.Kind)
}

func evaluateBinary(b *ast.BinaryExpr, mode AngleMode) (float64, error) {
	left, err := evaluate(b.Left, mode)
	if err != nil {
		return 0, err
	}
	right, err := evaluate(b.Right, mode)
	if err != nil {
		return 0, err
	}

	switch b.Operator {
	case lexer.TokPlus:
		return left + right, nil
	case lexer.TokDash:
		return left - right, nil
	case lexer.TokMultiply:
		return left * right, nil
	case lexer.TokSlash:
		if isZero(right) {
			return 0, fmt.Errorf("evaluate %s: %w", b.Dump(), ErrDivisionByZero)
		}
		return left / right, nil
	case lexer.TokModulo:
		if isZero(right) {
			return 0, fmt.Errorf("evaluate %s: %w", b.Dump(), ErrDivisionByZero)
		}
		return math.Mod(left, right), nil
	case lexer.TokCaret:
		if left < 0 && right != math.Trunc(right) {
			return 0, fmt.Errorf("evaluate %s: negative base with fractional exponent: %w", b.Dump(), ErrDomain)
		}
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("unsupported binary operator %s", b.Operator)
	}
}

func evaluatePrefix(p *ast.PrefixExpr, mode AngleMode) (float64, error) {
	right, err := evaluate(p.Right, mode)
	if err != nil {
		return 0, err
	}
	if p.Operator != lexer.TokDash {
		return 0, fmt.Errorf("unsupported prefix operator %s", p.Operator)
	}
	return -right, nil
}

func evaluateCall(c *ast.CallExpr, mode AngleMode) (float64, error) {
	fn, ok := builtins[c.Func]
	if !ok {
		return 0, fmt.Errorf("unsupported function %d", c.Func)
	}
	arg, err := evaluate(c.Argument, mode)
	if err != nil {
		return 0, err
	}
	return fn(arg, mode)
}

func evaluateFactorial(f *ast.FactorialExpr, mode AngleMode) (float64, error) {
	operand, err := evaluate(f.Operand, mode)
	if err != nil {
		return 0, err
	}
	return factorial(operand)
}
