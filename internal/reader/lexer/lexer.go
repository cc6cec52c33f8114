// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the lox language.
//
// The lox lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/lox/internal/diagnostic"
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/reader/token"
	"github.com/michaelmacinnis/lox/internal/type/num"
	"github.com/michaelmacinnis/lox/internal/type/str"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	line  int    // Current line.

	report diagnostic.Reporter
	tokens []*token.T
}

type lexer = T

// New creates a new T for source. Errors are sent to r.
func New(source string, r diagnostic.Reporter) *T {
	return &T{
		bytes:  source,
		line:   1,
		report: r,
	}
}

// Scan returns the tokens in source, terminated by an EOF token.
// Errors are sent to r and do not stop the scan.
func Scan(source string, r diagnostic.Reporter) []*token.T {
	return New(source, r).Tokens()
}

// Text is used to return the text corresponding to the current token.
func (l *lexer) Text() string {
	return l.bytes[l.first:l.index]
}

// Tokens runs the scanner to completion and returns every token.
func (l *lexer) Tokens() []*token.T {
	for state := action(startState); state != nil; {
		state = state(l)
	}

	l.tokens = append(l.tokens, token.New(token.EOF, "", nil, l.line))

	tokens := l.tokens
	l.tokens = nil

	return tokens
}

type action func(*T) action

const eof = -1

func (l *lexer) accept(r rune, w int) {
	if r == '\n' {
		l.line++
	}

	l.index += w
}

func (l *lexer) emit(k token.Kind) {
	l.tokens = append(l.tokens, token.New(k, l.Text(), nil, l.line))
	l.skip()
}

func (l *lexer) emitLiteral(k token.Kind, v cell.T) {
	l.tokens = append(l.tokens, token.New(k, l.Text(), v, l.line))
	l.skip()
}

func (l *lexer) error(message string) {
	l.report.Report(l.line, "", message)
}

// match consumes the next rune if it is r.
func (l *lexer) match(r rune) bool {
	c, w := l.peek()
	if c != r {
		return false
	}

	l.accept(c, w)

	return true
}

func (l *lexer) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *lexer) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

// peekNext returns the rune after the next rune without consuming anything.
func (l *lexer) peekNext() rune {
	_, w := l.peek()
	if l.index+w >= len(l.bytes) {
		return eof
	}

	r, _ := utf8.DecodeRuneInString(l.bytes[l.index+w:])

	return r
}

func (l *lexer) skip() {
	l.first = l.index
}

// T states.

func scanIdentifier(l *T) action {
	for {
		r, w := l.peek()
		if !isAlpha(r) && !isDigit(r) {
			break
		}

		l.accept(r, w)
	}

	// Keywords are only ever recognized by looking up the complete run.
	if k, ok := token.Keyword(l.Text()); ok {
		l.emit(k)
	} else {
		l.emit(token.Identifier)
	}

	return startState
}

func scanNumber(l *T) action {
	digits := func() {
		for r, w := l.peek(); isDigit(r); r, w = l.peek() {
			l.accept(r, w)
		}
	}

	digits()

	if r, w := l.peek(); r == '.' && isDigit(l.peekNext()) {
		l.accept(r, w)
		digits()
	}

	n, err := num.Parse(l.Text())
	if err != nil {
		// The scanner only accepts digit runs so this can't happen.
		panic(err.Error())
	}

	l.emitLiteral(token.Number, n)

	return startState
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.error("Unterminated string.")
			l.skip()

			return nil
		case '"':
			text := l.Text()
			l.emitLiteral(token.String, str.New(text[1:len(text)-1]))

			return startState
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()
		if r == '\n' || r == eof {
			l.skip()
			return startState
		}

		l.accept(r, w)
	}
}

func startState(l *T) action {
	for {
		l.skip()

		r := l.next()

		switch r {
		case eof:
			return nil
		case ' ', '\r', '\t', '\n':
			continue
		case '(':
			l.emit(token.LeftParen)
		case ')':
			l.emit(token.RightParen)
		case '{':
			l.emit(token.LeftBrace)
		case '}':
			l.emit(token.RightBrace)
		case ',':
			l.emit(token.Comma)
		case '.':
			l.emit(token.Dot)
		case '-':
			l.emit(token.Minus)
		case '+':
			l.emit(token.Plus)
		case ';':
			l.emit(token.Semicolon)
		case '*':
			l.emit(token.Star)
		case '!':
			l.emit(either(l.match('='), token.BangEqual, token.Bang))
		case '=':
			l.emit(either(l.match('='), token.EqualEqual, token.Equal))
		case '<':
			l.emit(either(l.match('='), token.LessEqual, token.Less))
		case '>':
			l.emit(either(l.match('='), token.GreaterEqual, token.Greater))
		case '/':
			if l.match('/') {
				return skipComment
			}

			l.emit(token.Slash)
		case '"':
			return scanString
		default:
			switch {
			case isDigit(r):
				return scanNumber
			case isAlpha(r):
				return scanIdentifier
			}

			l.error("Unexpected character.")
		}
	}
}

// Helper functions.

func either(b bool, t, f token.Kind) token.Kind {
	if b {
		return t
	}

	return f
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
