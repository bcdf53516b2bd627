package executor_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/executor"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

func eval(t *testing.T, input string, mode executor.AngleMode) (float64, error) {
	t.Helper()
	expr, err := parser.ParseString(input)
	require.NoError(t, err, "parse %q", input)
	return executor.Evaluate(expr, mode)
}

type testCase struct {
	name  string
	input string
	mode  executor.AngleMode
	want  float64
}

func TestExecutor(t *testing.T) {
	tests := []testCase{
		{name: "literal", input: "42", want: 42},
		{name: "precedence", input: "1+2*3", want: 7},
		{name: "grouping", input: "(1+2)*3", want: 9},
		{name: "left assoc sub", input: "10-4-3", want: 3},
		{name: "left assoc div", input: "8/4/2", want: 1},
		{name: "modulo", input: "10%3", want: 1},
		{name: "modulo sign of dividend", input: "-7%3", want: -1},
		{name: "right assoc power", input: "2^3^2", want: 512},
		{name: "negative exponent", input: "2^-1", want: 0.5},
		{name: "power before negation", input: "-2^2", want: -4},
		{name: "negative base integral exponent", input: "(-2)^3", want: -8},
		{name: "minus negative", input: "2--3", want: 5},
		{name: "factorial", input: "5!", want: 120},
		{name: "factorial of group", input: "(2+3)!", want: 120},
		{name: "factorial zero", input: "0!", want: 1},
		{name: "factorial one", input: "1!", want: 1},
		{name: "factorial binds tighter than power", input: "2^3!", want: 64},
		{name: "negated factorial of group", input: "-(2+3)!", want: -120},
		{name: "negated factorial of parenthesized literal", input: "-(2)!", want: -2},
		{name: "negated factorial of call", input: "-sqrt(9)!", want: -6},
		{name: "pi", input: "pi", want: math.Pi},
		{name: "e", input: "e", want: math.E},
		{name: "sin degrees", input: "sin(90)", mode: executor.Degrees, want: 1},
		{name: "sin radians", input: "sin(pi/2)", want: 1},
		{name: "sin 180 degrees", input: "sin(180)", mode: executor.Degrees, want: 0},
		{name: "sin pi radians", input: "sin(pi)", want: 0},
		{name: "cos 90 degrees", input: "cos(90)", mode: executor.Degrees, want: 0},
		{name: "cos 180 degrees", input: "cos(180)", mode: executor.Degrees, want: -1},
		{name: "tan 45 degrees", input: "tan(45)", mode: executor.Degrees, want: 1},
		{name: "tan 0", input: "tan(0)", want: 0},
		{name: "sqrt", input: "sqrt(16)", want: 4},
		{name: "sqrt zero", input: "sqrt(0)", want: 0},
		{name: "inv", input: "inv(4)", want: 0.25},
		{name: "nested calls", input: "sqrt(inv(0.25))", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval(t, tt.input, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecutorLogarithms(t *testing.T) {
	got, err := eval(t, "log(1000)", executor.Radians)
	require.NoError(t, err)
	assert.InDelta(t, 3, got, 1e-12)

	got, err = eval(t, "ln(e^2)", executor.Radians)
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 1e-12)
}

func TestExecutorMatchesFloatArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0.1+0.2", 0.1 + 0.2},
		{"1.5*2.25-0.75/3", 1.5*2.25 - 0.75/3},
		{"7/3", 7.0 / 3.0},
		{"2^0.5", math.Sqrt2},
		{"100-99.9", 100 - 99.9},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := eval(t, tt.input, executor.Radians)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func TestExecutorErrors(t *testing.T) {
	hugeLiteral := "1" + strings.Repeat("0", 400)
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"division by zero", "1/0", executor.ErrDivisionByZero},
		{"modulo by zero", "5%0", executor.ErrDivisionByZero},
		{"division by noise", "1/(0.1+0.2-0.3)", executor.ErrDivisionByZero},
		{"inverse of zero", "inv(0)", executor.ErrDivisionByZero},
		{"sqrt negative", "sqrt(-1)", executor.ErrDomain},
		{"log zero", "log(0)", executor.ErrDomain},
		{"log negative", "log(-10)", executor.ErrDomain},
		{"ln zero", "ln(0)", executor.ErrDomain},
		{"negative factorial", "-1!", executor.ErrDomain},
		{"fractional factorial", "2.5!", executor.ErrDomain},
		{"negative base fractional exponent", "(-8)^(1/3)", executor.ErrDomain},
		{"factorial overflow", "171!", executor.ErrNotFinite},
		{"huge factorial terminates", "1000000000!", executor.ErrNotFinite},
		{"power overflow", "10^400", executor.ErrNotFinite},
		{"zero to negative power", "0^-1", executor.ErrNotFinite},
		{"huge literal", hugeLiteral, executor.ErrNotFinite},
		{"left operand fails first", "1/0+sqrt(-1)", executor.ErrDivisionByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval(t, tt.input, executor.Radians)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err, "got %v", err)
		})
	}
}

func TestExecutorModeReachesNestedCalls(t *testing.T) {
	// sin(cos(0) * 90)
	expr := &ast.CallExpr{
		Func: ast.FuncSin,
		Argument: &ast.BinaryExpr{
			Left:     &ast.CallExpr{Func: ast.FuncCos, Argument: &ast.NumberExpr{Value: 0}},
			Operator: lexer.TokMultiply,
			Right:    &ast.NumberExpr{Value: 90},
		},
	}
	got, err := executor.Evaluate(expr, executor.Degrees)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = executor.Evaluate(expr, executor.Radians)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(90), got, 1e-15)
}

func TestExecutorUnsupportedOperator(t *testing.T) {
	expr := &ast.BinaryExpr{
		Left:     &ast.NumberExpr{Value: 1},
		Operator: lexer.TokBang,
		Right:    &ast.NumberExpr{Value: 2},
	}
	_, err := executor.Evaluate(expr, executor.Radians)
	assert.Error(t, err)
}

func TestAngleMode(t *testing.T) {
	for _, s := range []string{"deg", "degrees", "DEG", " Degree "} {
		mode, err := executor.ParseAngleMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, executor.Degrees, mode)
	}
	for _, s := range []string{"rad", "radians"} {
		mode, err := executor.ParseAngleMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, executor.Radians, mode)
	}
	_, err := executor.ParseAngleMode("grad")
	assert.Error(t, err)

	var mode executor.AngleMode
	assert.Equal(t, "radians", mode.String())
	require.NoError(t, mode.Set("deg"))
	assert.Equal(t, "degrees", mode.String())
	assert.Error(t, mode.Set("turns"))
	assert.Equal(t, executor.Degrees, mode)
}
