// Released under an MIT license. See LICENSE.

// Package native provides lox's type for functions implemented in Go.
package native

import (
	"github.com/michaelmacinnis/lox/internal/interface/callable"
	"github.com/michaelmacinnis/lox/internal/interface/cell"
)

const name = "native"

// Func is the Go implementation of a native function.
type Func func(args []cell.T) (cell.T, error)

// T (native) is a callable implemented by the host.
type T struct {
	arity int
	fn    Func
	name  string
}

type native = T

// New creates a new native function called name that takes arity arguments.
func New(name string, arity int, fn Func) *T {
	return &T{arity: arity, fn: fn, name: name}
}

// Arity returns the number of arguments n expects.
func (n *native) Arity() int {
	return n.arity
}

// Call invokes n. Natives never run lox code so x is unused.
func (n *native) Call(_ callable.Executor, args []cell.T) (cell.T, error) {
	return n.fn(args)
}

// Equal returns true if c is the same native function as n.
func (n *native) Equal(c cell.T) bool {
	return Is(c) && n == To(c)
}

// Identifier returns the name n was created with.
func (n *native) Identifier() string {
	return n.name
}

// Name returns the name of the native type.
func (n *native) Name() string {
	return name
}

// String returns the printed form of n.
func (n *native) String() string {
	return "<native fn>"
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}
