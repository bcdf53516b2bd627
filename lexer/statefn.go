package lexer

import (
	"errors"
	"strconv"
	"strings"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokDash,
	'*': TokMultiply,
	'/': TokSlash,
	'%': TokModulo,
	'^': TokCaret,
	'!': TokBang,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		l.acceptRun(" \t\n\r")
		l.ignore()
		return lexText
	case r == '.' || (r >= '0' && r <= '9'):
		return lexNumber
	case r >= 'a' && r <= 'z':
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorAt(l.pos, r)
	}
}

// lexNumber scans a run of digits holding at most one decimal point.
// A point without any digit is a malformed number.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	tok := l.thisToken(TokNumber)
	if tok.Value == "." {
		return l.fail(&Error{Pos: tok.Pos, Char: '.', Err: ErrMalformedNumber})
	}
	n, err := strconv.ParseFloat(tok.Value, 64)
	// Out of range literals become ±Inf and are rejected at evaluation.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return l.errorAt(tok.Pos, rune(tok.Value[0]))
	}
	tok.Number = n
	return l.emitToken(tok)
}

// lexIdentifier emits the longest keyword the input starts with.
func lexIdentifier(l *Lexer) stateFn {
	rest := l.input[l.pos:]
	match := ""
	for _, kw := range keywords {
		if len(kw) > len(match) && strings.HasPrefix(rest, kw) {
			match = kw
		}
	}
	if match == "" {
		return l.errorAt(l.pos, l.peek())
	}
	l.pos += len(match)
	return l.emit(TokIdentifier)
}
