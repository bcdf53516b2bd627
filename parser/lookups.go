package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

type bindingPower int

// Lowest to highest.
const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
	bpPower
	bpPostfix
)

type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokDash, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMultiply, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokModulo, bpMultiplicative, parseBinaryExpr)

	// Right associative power, postfix factorial.
	p.led(lexer.TokCaret, bpPower, parsePowerExpr)
	p.led(lexer.TokBang, bpPostfix, parseFactorialExpr)

	// Literals, constants, calls & groups.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokIdentifier, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokDash, parsePrefixExpr)
}
