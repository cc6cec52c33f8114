// Released under an MIT license. See LICENSE.

// Package diagnostic collects the static errors found while scanning,
// parsing and resolving lox code.
//
// A diagnostic is not fatal. Each pass reports what it finds and carries
// on so that a single run can surface several independent errors. The
// caller inspects the collector afterwards and decides whether evaluation
// may begin.
package diagnostic

import (
	"errors"
	"io"
	"strconv"

	"github.com/michaelmacinnis/lox/internal/reader/token"
)

// Reporter is the interface for things that receive static errors.
type Reporter interface {
	Report(line int, where, message string)
}

// Error is a single static error.
type Error struct {
	Line    int    // Source line.
	Where   string // Location description, e.g. " at 'x'" or " at end".
	Message string
}

// Error returns the conventional text for the diagnostic.
func (e *Error) Error() string {
	return "[line " + strconv.Itoa(e.Line) + "] Error" + e.Where + ": " + e.Message
}

// T (diagnostic) accumulates static errors.
type T struct {
	errors []*Error
}

type diagnostic = T

// New creates a new, empty collector.
func New() *T {
	return &T{}
}

// At describes the location of the token t for use in a diagnostic.
func At(t *token.T) string {
	if t.Is(token.EOF) {
		return " at end"
	}

	return " at '" + t.Lexeme() + "'"
}

// Token reports message at the location of the token t.
func Token(r Reporter, t *token.T, message string) {
	r.Report(t.Line(), At(t), message)
}

// Err returns all collected errors joined together, or nil.
func (d *diagnostic) Err() error {
	if len(d.errors) == 0 {
		return nil
	}

	errs := make([]error, len(d.errors))
	for i, e := range d.errors {
		errs[i] = e
	}

	return errors.Join(errs...)
}

// Errors returns the collected errors in the order they were reported.
func (d *diagnostic) Errors() []*Error {
	return d.errors
}

// Len returns the number of errors collected.
func (d *diagnostic) Len() int {
	return len(d.errors)
}

// Report records a static error.
func (d *diagnostic) Report(line int, where, message string) {
	d.errors = append(d.errors, &Error{
		Line:    line,
		Where:   where,
		Message: message,
	})
}

// WriteTo writes one line per collected error to w.
func (d *diagnostic) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, e := range d.errors {
		n, err := io.WriteString(w, e.Error()+"\n")
		total += int64(n)

		if err != nil {
			return total, err
		}
	}

	return total, nil
}
