// Package parser builds expression trees from lexer tokens using a Pratt
// parser driven by per-token lookup tables.
package parser

import (
	"errors"
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

var (
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrUnexpectedEnd    = errors.New("unexpected end of input")
	ErrExpectedParen    = errors.New("expected '(' after function")
	ErrTrailingInput    = errors.New("trailing input")
)

// Error reports a parse failure at the offending token.
type Error struct {
	Token lexer.Token
	Err   error
}

func (e *Error) Error() string {
	if e.Token.Type == lexer.TokEOF {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %q at position %d", e.Err, e.Token.Value, e.Token.Pos)
}

func (e *Error) Unwrap() error { return e.Err }

type parser struct {
	tokens []lexer.Token
	pos    int
	end    int // Position reported for the synthetic EOF token.

	curToken lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{
		tokens:                  tokens,
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		p.end = last.Pos + len(last.Value)
	}
	p.createTokenLookups()
	p.curToken = p.tokenAt(0)
	return p
}

// Parse builds the expression tree for the whole token sequence.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	p := newParser(tokens)
	if p.curToken.Type == lexer.TokEOF {
		return nil, p.errorf(ErrUnexpectedEnd)
	}

	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}

	switch p.curToken.Type {
	case lexer.TokEOF:
		return expr, nil
	case lexer.TokParenRight:
		return nil, p.errorf(ErrUnbalancedParens)
	default:
		return nil, p.errorf(ErrTrailingInput)
	}
}

// ParseString tokenizes and parses the input.
func ParseString(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *parser) tokenAt(i int) lexer.Token {
	if i >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokEOF, Pos: p.end}
	}
	return p.tokens[i]
}

func (p *parser) nextToken() lexer.Token {
	if p.pos < len(p.tokens) {
		p.pos++
	}
	p.curToken = p.tokenAt(p.pos)
	return p.curToken
}

// expect checks the current token type and consumes it.
func (p *parser) expect(kind lexer.TokenType, notFound error) error {
	if p.curToken.Type != kind {
		return p.errorf(notFound)
	}
	p.nextToken()
	return nil
}

// errorf reports err at the current token. An unexpected token at the end
// of input is reported as ErrUnexpectedEnd.
func (p *parser) errorf(err error) error {
	if p.curToken.Type == lexer.TokEOF && err == ErrUnexpectedToken {
		err = ErrUnexpectedEnd
	}
	return &Error{Token: p.curToken, Err: err}
}
