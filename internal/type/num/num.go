// Released under an MIT license. See LICENSE.

// Package num provides lox's number type.
package num

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/lox/internal/interface/cell"
)

const name = "number"

// T (number) wraps Go's float64 type.
type T float64

// New creates a new number from the float64 v.
func New(v float64) *T {
	n := T(v)
	return &n
}

// Parse creates a new number from its decimal text.
func Parse(s string) (*T, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return New(v), nil
}

// The number type is a cell.

// Equal returns true if c is the same number as the number n.
// NaN is equal to itself so that every value is equal to itself.
func (n *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	a, b := n.Float(), To(c).Float()

	return a == b || (a != a && b != b)
}

// Name returns the type name for the number n.
func (n *T) Name() string {
	return name
}

// Float returns the value of the number n as a float64.
func (n *T) Float() float64 {
	return float64(*n)
}

// String returns the text of the number n.
// Integral values print without a fractional part.
func (n *T) String() string {
	v := n.Float()

	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not a " + name)
}
