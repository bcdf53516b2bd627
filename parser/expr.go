package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		return nil, p.errorf(ErrUnexpectedToken)
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn := p.ledLookupTable[p.curToken.Type]
		left, err = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok := p.curToken
	switch tok.Type {
	case lexer.TokNumber:
		p.nextToken()
		return &ast.NumberExpr{Value: tok.Number}, nil
	case lexer.TokIdentifier:
		if c, ok := ast.LookupConstant(tok.Value); ok {
			p.nextToken()
			return &ast.ConstantExpr{Kind: c}, nil
		}
		fn, ok := ast.LookupFunc(tok.Value)
		if !ok {
			return nil, p.errorf(ErrUnexpectedToken)
		}
		p.nextToken()
		if p.curToken.Type != lexer.TokParenLeft {
			return nil, p.errorf(ErrExpectedParen)
		}
		arg, err := parseGroupingExpr(p)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{Func: fn, Argument: arg}, nil
	default:
		return nil, p.errorf(ErrUnexpectedToken)
	}
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	p.nextToken() // Consume the '('.
	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	notFound := ErrUnexpectedToken
	if p.curToken.Type == lexer.TokEOF {
		notFound = ErrUnbalancedParens
	}
	if err := p.expect(lexer.TokParenRight, notFound); err != nil {
		return nil, err
	}
	return expr, nil
}

// parsePrefixExpr handles a single leading minus. Its operand extends over
// powers and factorials but not over multiplicative operators.
func parsePrefixExpr(p *parser) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	if p.curToken.Type == lexer.TokDash {
		return nil, p.errorf(ErrUnexpectedToken)
	}
	bare := isBareLiteral(p.curToken)
	right, err := parseExpr(p, bpMultiplicative)
	if err != nil {
		return nil, err
	}

	// A sign written directly on a literal is part of its factorial
	// operand: -1! is (-1)!, while -(2+3)! stays -((2+3)!).
	if fact, ok := right.(*ast.FactorialExpr); ok && bare && isLiteral(fact.Operand) {
		return &ast.FactorialExpr{
			Operand: &ast.PrefixExpr{Operator: operator.Type, Right: fact.Operand},
		}, nil
	}
	return &ast.PrefixExpr{Operator: operator.Type, Right: right}, nil
}

// isBareLiteral reports whether tok is a number or a constant name.
func isBareLiteral(tok lexer.Token) bool {
	if !tok.Type.IsOneOf(lexer.TokNumber, lexer.TokIdentifier) {
		return false
	}
	if tok.Type == lexer.TokIdentifier {
		_, ok := ast.LookupConstant(tok.Value)
		return ok
	}
	return true
}

func isLiteral(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.NumberExpr, *ast.ConstantExpr:
		return true
	}
	return false
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{
		Left:     left,
		Operator: operator.Type,
		Right:    right,
	}, nil
}

// parsePowerExpr parses the exponent one level below the operator itself,
// which makes '^' right associative and lets the exponent carry a sign.
func parsePowerExpr(p *parser, left ast.Expr, _ bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bpMultiplicative)
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{
		Left:     left,
		Operator: operator.Type,
		Right:    right,
	}, nil
}

func parseFactorialExpr(p *parser, left ast.Expr, _ bindingPower) (ast.Expr, error) {
	p.nextToken()
	// '!' applies to a primary, never to another factorial.
	if p.curToken.Type == lexer.TokBang {
		return nil, p.errorf(ErrUnexpectedToken)
	}
	return &ast.FactorialExpr{Operand: left}, nil
}
