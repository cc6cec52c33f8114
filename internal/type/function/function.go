// Released under an MIT license. See LICENSE.

// Package function provides lox's user-defined function type.
package function

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/interface/callable"
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/type/env"
)

const name = "function"

// T (function) is a function declaration closed over the env it was
// declared in. Methods are functions too; a bound method closes over an
// extra env that defines "this".
type T struct {
	closure     *env.T
	declaration *ast.Function
	initializer bool
}

type function = T

// New creates a new function for declaration, closed over closure.
// If initializer is true, calling the function always returns the
// instance it is bound to.
func New(declaration *ast.Function, closure *env.T, initializer bool) *T {
	return &T{
		closure:     closure,
		declaration: declaration,
		initializer: initializer,
	}
}

// Arity returns the number of parameters f expects.
func (f *function) Arity() int {
	return len(f.declaration.Params)
}

// Bind returns a copy of f with "this" bound to the value this.
func (f *function) Bind(this cell.T) *T {
	scope := env.New(f.closure)
	scope.Define("this", this)

	return New(f.declaration, scope, f.initializer)
}

// Call invokes f with args.
func (f *function) Call(x callable.Executor, args []cell.T) (cell.T, error) {
	scope := env.New(f.closure)
	for i, p := range f.declaration.Params {
		scope.Define(p.Lexeme(), args[i])
	}

	v, err := x.ExecuteBody(f.declaration.Body, scope)
	if err != nil {
		return nil, err
	}

	if f.initializer {
		return f.closure.GetAt(0, "this"), nil
	}

	return v, nil
}

// Declaration returns the declaration for f.
func (f *function) Declaration() *ast.Function {
	return f.declaration
}

// Equal returns true if c is the same function as f.
func (f *function) Equal(c cell.T) bool {
	return Is(c) && f == To(c)
}

// Name returns the name of the function type.
func (f *function) Name() string {
	return name
}

// String returns the printed form of f.
func (f *function) String() string {
	return "<fn " + f.declaration.Name.Lexeme() + ">"
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
