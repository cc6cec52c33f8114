// Released under an MIT license. See LICENSE.

// Package token is shared by the lox lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/lox/internal/interface/cell"
)

// Kind is a token's type.
type Kind int

// T (token) is a lexical item returned by the scanner.
type T struct {
	kind    Kind
	lexeme  string
	literal cell.T
	line    int
}

type token = T

// Token kinds.
const (
	EOF Kind = iota

	// Single-character tokens.
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

//nolint:gochecknoglobals
var (
	keywords = map[string]Kind{
		"and":    And,
		"class":  Class,
		"else":   Else,
		"false":  False,
		"for":    For,
		"fun":    Fun,
		"if":     If,
		"nil":    Nil,
		"or":     Or,
		"print":  Print,
		"return": Return,
		"super":  Super,
		"this":   This,
		"true":   True,
		"var":    Var,
		"while":  While,
	}

	names = [...]string{
		EOF:          "EOF",
		LeftParen:    "LeftParen",
		RightParen:   "RightParen",
		LeftBrace:    "LeftBrace",
		RightBrace:   "RightBrace",
		Comma:        "Comma",
		Dot:          "Dot",
		Minus:        "Minus",
		Plus:         "Plus",
		Semicolon:    "Semicolon",
		Slash:        "Slash",
		Star:         "Star",
		Bang:         "Bang",
		BangEqual:    "BangEqual",
		Equal:        "Equal",
		EqualEqual:   "EqualEqual",
		Greater:      "Greater",
		GreaterEqual: "GreaterEqual",
		Less:         "Less",
		LessEqual:    "LessEqual",
		Identifier:   "Identifier",
		String:       "String",
		Number:       "Number",
		And:          "And",
		Class:        "Class",
		Else:         "Else",
		False:        "False",
		Fun:          "Fun",
		For:          "For",
		If:           "If",
		Nil:          "Nil",
		Or:           "Or",
		Print:        "Print",
		Return:       "Return",
		Super:        "Super",
		This:         "This",
		True:         "True",
		Var:          "Var",
		While:        "While",
	}
)

// Keyword returns the keyword kind for a complete identifier run.
// The second result is false if s is not a reserved word.
func Keyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}

// New creates a new token.
func New(kind Kind, lexeme string, literal cell.T, line int) *token {
	return &token{
		kind:    kind,
		lexeme:  lexeme,
		literal: literal,
		line:    line,
	}
}

// String returns a string representation of Kind. Useful for debugging.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Is returns true if the token t is any of the kinds in ks.
func (t *token) Is(ks ...Kind) bool {
	if t == nil {
		return false
	}

	for _, k := range ks {
		if t.kind == k {
			return true
		}
	}

	return false
}

// Kind returns the token's kind.
func (t *token) Kind() Kind {
	return t.kind
}

// Lexeme returns the source text the token was scanned from.
func (t *token) Lexeme() string {
	return t.lexeme
}

// Line returns the line on which the token ends.
func (t *token) Line() int {
	return t.line
}

// Literal returns the token's literal value or nil.
func (t *token) Literal() cell.T {
	return t.literal
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	s := t.kind.String() + " " + strconv.Quote(t.lexeme)
	if t.literal != nil {
		s += " " + t.literal.String()
	}

	return s + " (line " + strconv.Itoa(t.line) + ")"
}
