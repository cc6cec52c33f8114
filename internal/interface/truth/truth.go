// Released under an MIT license. See LICENSE.

// Package truth defines the interface for lox types that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/lox/internal/interface/cell"
)

// T (truth) is anything that evaluates to a true or false value.
type T interface {
	Bool() bool
}

// Value returns the truth value for a cell.
// Only nil and false are false. Every other value, including zero and the
// empty string, is true.
func Value(c cell.T) bool {
	if c == nil {
		return false
	}

	if b, ok := c.(T); ok {
		return b.Bool()
	}

	return true
}
