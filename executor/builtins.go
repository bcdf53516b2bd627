package executor

import (
	"fmt"
	"math"

	"go.creack.net/gocalc/ast"
)

const degToRad = math.Pi / 180

// trigNoise is the distance from 0 or 1 under which a trig result snaps.
const trigNoise = 1e-10

type builtinFunc func(x float64, mode AngleMode) (float64, error)

var builtins = map[ast.Func]builtinFunc{
	ast.FuncSin:  trig(math.Sin),
	ast.FuncCos:  trig(math.Cos),
	ast.FuncTan:  trig(math.Tan),
	ast.FuncSqrt: builtinSqrt,
	ast.FuncLog:  logarithm(math.Log10),
	ast.FuncLn:   logarithm(math.Log),
	ast.FuncInv:  builtinInv,
}

func trig(fn func(float64) float64) builtinFunc {
	return func(x float64, mode AngleMode) (float64, error) {
		res := fn(mode.toRadians(x))
		if math.Abs(res) < trigNoise {
			res = 0
		}
		if math.Abs(res-1) < trigNoise {
			res = 1
		}
		return res, nil
	}
}

func builtinSqrt(x float64, _ AngleMode) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("sqrt of negative %g: %w", x, ErrDomain)
	}
	return math.Sqrt(x), nil
}

func logarithm(fn func(float64) float64) builtinFunc {
	return func(x float64, _ AngleMode) (float64, error) {
		if x <= 0 {
			return 0, fmt.Errorf("logarithm of non-positive %g: %w", x, ErrDomain)
		}
		return fn(x), nil
	}
}

func builtinInv(x float64, _ AngleMode) (float64, error) {
	if isZero(x) {
		return 0, fmt.Errorf("inverse of zero: %w", ErrDivisionByZero)
	}
	return 1 / x, nil
}

// factorial computes n! iteratively for a non-negative integral n.
// The loop stops as soon as the product overflows.
func factorial(x float64) (float64, error) {
	n := math.Round(x)
	if x < 0 || math.Abs(x-n) > epsilon || math.IsInf(x, 0) {
		return 0, fmt.Errorf("factorial of %g: %w", x, ErrDomain)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
		if math.IsInf(result, 0) {
			return 0, fmt.Errorf("factorial of %g: %w", x, ErrNotFinite)
		}
	}
	return result, nil
}
