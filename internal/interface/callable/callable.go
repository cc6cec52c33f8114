// Released under an MIT license. See LICENSE.

// Package callable defines the interface for lox values that can be called.
package callable

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/type/env"
)

// T (callable) is anything that can appear as the callee in a call.
// The caller checks that len(args) == Arity() before calling Call.
type T interface {
	cell.T

	Arity() int
	Call(x Executor, args []cell.T) (cell.T, error)
}

// Executor runs the body of a user-defined function.
//
// ExecuteBody executes body in scope. It returns the value carried by a
// return statement, or nil if the body finished without one.
type Executor interface {
	ExecuteBody(body []ast.Stmt, scope *env.T) (cell.T, error)
}

// Is returns true if c is callable.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}
