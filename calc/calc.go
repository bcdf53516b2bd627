// Package calc runs the whole expression pipeline: tokenize, parse,
// evaluate and format.
package calc

import (
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/executor"
	"go.creack.net/gocalc/format"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

// Stage identifies the pipeline step that failed.
type Stage int

const (
	StageLex Stage = iota
	StageParse
	StageEval
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageEval:
		return "eval"
	}
	return "unknown"
}

// Error is the single failure type returned by the pipeline.
// Use errors.Is with the lexer, parser and executor sentinels to
// discriminate the cause.
type Error struct {
	Stage Stage
	Input string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Stage, e.Input, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Compile tokenizes and parses input without evaluating it.
func Compile(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, &Error{Stage: StageLex, Input: input, Err: err}
	}
	expr, err := parser.Parse(tokens)
	if err != nil {
		return nil, &Error{Stage: StageParse, Input: input, Err: err}
	}
	return expr, nil
}

// EvaluateFloat computes the unformatted value of input.
func EvaluateFloat(input string, mode executor.AngleMode) (float64, error) {
	expr, err := Compile(input)
	if err != nil {
		return 0, err
	}
	v, err := executor.Evaluate(expr, mode)
	if err != nil {
		return 0, &Error{Stage: StageEval, Input: input, Err: err}
	}
	return v, nil
}

// Evaluate computes input and returns the canonical decimal rendering of
// the result.
func Evaluate(input string, mode executor.AngleMode) (string, error) {
	v, err := EvaluateFloat(input, mode)
	if err != nil {
		return "", err
	}
	return format.Format(v), nil
}
