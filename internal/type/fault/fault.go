// Released under an MIT license. See LICENSE.

// Package fault provides the error raised when lox code fails at runtime.
package fault

import (
	"errors"
	"strconv"

	"github.com/michaelmacinnis/lox/internal/reader/token"
)

// T (fault) is a fatal runtime error. It carries the token that caused it
// so that the error can be attributed to a source line.
type T struct {
	message string
	token   *token.T
}

type fault = T

// New creates a new fault for the token t.
func New(t *token.T, message string) *T {
	return &T{message: message, token: t}
}

// Error returns the fault's message.
func (f *fault) Error() string {
	return f.message
}

// Line returns the source line of the offending token.
func (f *fault) Line() int {
	if f.token == nil {
		return 0
	}

	return f.token.Line()
}

// Report returns the fault's message followed by its location.
func (f *fault) Report() string {
	return f.message + "\n[line " + strconv.Itoa(f.Line()) + "]"
}

// Token returns the offending token.
func (f *fault) Token() *token.T {
	return f.token
}

// As returns the *T wrapped by err, if any.
func As(err error) (*T, bool) {
	var f *T
	ok := errors.As(err, &f)

	return f, ok
}
