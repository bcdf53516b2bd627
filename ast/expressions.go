package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/gocalc/lexer"
)

type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type ConstantExpr struct {
	Kind Constant
}

func (ConstantExpr) expr() {}

func (c ConstantExpr) Dump() string { return c.Kind.String() }

// BinaryExpr applies one of + - * / % ^.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator, b.Right.Dump())
}

// PrefixExpr is a unary negation.
type PrefixExpr struct {
	Operator lexer.TokenType
	Right    Expr
}

func (PrefixExpr) expr() {}

func (p PrefixExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", p.Operator, p.Right.Dump())
}

type CallExpr struct {
	Func     Func
	Argument Expr
}

func (CallExpr) expr() {}

func (c CallExpr) Dump() string {
	return fmt.Sprintf("%s(%s)", c.Func, c.Argument.Dump())
}

type FactorialExpr struct {
	Operand Expr
}

func (FactorialExpr) expr() {}

func (f FactorialExpr) Dump() string {
	return f.Operand.Dump() + "!"
}
