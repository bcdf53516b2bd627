// Package ast defines the expression tree built by the parser.
package ast

// Expr is a node of the expression tree. Each node exclusively owns its
// children and is never mutated once built.
type Expr interface {
	// Dump renders the node fully parenthesized.
	Dump() string
	expr()
}

// Func identifies a builtin function.
type Func int

const (
	FuncSin Func = iota
	FuncCos
	FuncTan
	FuncSqrt
	FuncLog
	FuncLn
	FuncInv
)

var funcNames = map[Func]string{
	FuncSin:  "sin",
	FuncCos:  "cos",
	FuncTan:  "tan",
	FuncSqrt: "sqrt",
	FuncLog:  "log",
	FuncLn:   "ln",
	FuncInv:  "inv",
}

func (f Func) String() string {
	return funcNames[f]
}

// LookupFunc returns the function with the given name.
func LookupFunc(name string) (Func, bool) {
	for f, n := range funcNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// Constant identifies a mathematical constant.
type Constant int

const (
	ConstPi Constant = iota
	ConstE
)

func (c Constant) String() string {
	switch c {
	case ConstPi:
		return "pi"
	case ConstE:
		return "e"
	}
	return "?"
}

// LookupConstant returns the constant with the given name.
func LookupConstant(name string) (Constant, bool) {
	switch name {
	case "pi":
		return ConstPi, true
	case "e":
		return ConstE, true
	}
	return 0, false
}
