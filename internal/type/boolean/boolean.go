// Released under an MIT license. See LICENSE.

// Package boolean provides lox's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/lox/internal/interface/cell"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the boolean cell for the bool b.
func Bool(b bool) cell.T {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.T) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Name returns the name of the boolean type.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if *b {
		return "true"
	}

	return "false"
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if b, ok := c.(*T); ok {
		return b
	}

	panic("not a " + name)
}

func f() *boolean {
	v := boolean(false)
	return &v
}

func t() *boolean {
	v := boolean(true)
	return &v
}
