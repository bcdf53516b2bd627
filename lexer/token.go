package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokNumber
	TokIdentifier

	// Operators.
	TokPlus     // '+'.
	TokDash     // '-'.
	TokMultiply // '*'.
	TokSlash    // '/'.
	TokModulo   // '%'.
	TokCaret    // '^'.
	TokBang     // '!'.

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",

	TokPlus:     "+",
	TokDash:     "-",
	TokMultiply: "*",
	TokSlash:    "/",
	TokModulo:   "%",
	TokCaret:    "^",
	TokBang:     "!",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// keywords is the fixed identifier vocabulary: functions and constants.
var keywords = []string{"sin", "cos", "tan", "sqrt", "log", "ln", "inv", "pi", "e"}

// Keywords returns a copy of the identifier vocabulary.
func Keywords() []string {
	return slices.Clone(keywords)
}

// Token represents a lexical token of an expression.
type Token struct {
	Type  TokenType
	Value string

	// Number holds the parsed value of a TokNumber.
	Number float64

	// Pos is the byte offset of the token in the input.
	Pos int
}

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return fmt.Sprintf("ERROR[%d]: %s", t.Pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}
