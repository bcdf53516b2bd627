// Package lexer provides the lexical analyzer for calculator expressions.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const eof rune = -1

const digits = "0123456789"

// ErrUnknownCharacter is returned when the input holds a character outside
// the accepted vocabulary.
var ErrUnknownCharacter = errors.New("unknown character")

// ErrMalformedNumber is returned for a decimal point with no digits.
var ErrMalformedNumber = errors.New("malformed number")

// Error reports a lexing failure at a given byte offset.
type Error struct {
	Pos  int
	Char rune
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q at position %d", e.Err, e.Char, e.Pos)
}

func (e *Error) Unwrap() error { return e.Err }

type Lexer struct {
	input string

	curToken Token
	err      error

	pos   int // Current position in input.
	width int // Width of the last rune read.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken scans and returns the next token.
// Once the input is exhausted or an error occurred, it keeps returning
// the same EOF or error token.
func (l *Lexer) NextToken() Token {
	if l.err != nil {
		return l.curToken
	}
	state := lexText
	for state != nil {
		state = state(l)
	}
	return l.curToken
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Tokenize converts the whole input into tokens. The trailing EOF token
// is not included, so an empty input yields an empty slice.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokError:
			return nil, l.err
		case TokEOF:
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) errorAt(pos int, r rune) stateFn {
	return l.fail(&Error{Pos: pos, Char: r, Err: ErrUnknownCharacter})
}

func (l *Lexer) fail(err *Error) stateFn {
	l.err = err
	l.curToken = Token{
		Type:  TokError,
		Value: err.Error(),
		Pos:   err.Pos,
	}
	return nil
}
