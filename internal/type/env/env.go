// Released under an MIT license. See LICENSE.

// Package env provides lox's environment type.
//
// An environment is one link in a scope chain. Environments are shared by
// pointer: a closure keeps the environment it was created in alive for as
// long as the closure itself is reachable, long after the block that
// created the environment has finished executing.
package env

import (
	"strconv"

	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/reader/token"
	"github.com/michaelmacinnis/lox/internal/type/fault"
	"github.com/michaelmacinnis/lox/internal/type/hash"
)

// T (env) maps names to values and links to an enclosing env.
type T struct {
	enclosing *T
	values    *hash.T
}

type env = T

// New creates a new env enclosed by enclosing, which may be nil.
func New(enclosing *T) *T {
	return &T{
		enclosing: enclosing,
		values:    hash.New(),
	}
}

// Ancestor returns the env distance links out from e.
// It panics if the chain is shorter than distance.
func (e *env) Ancestor(distance int) *T {
	a := e
	for i := 0; i < distance; i++ {
		if a.enclosing == nil {
			panic("env: no ancestor at distance " + strconv.Itoa(distance))
		}

		a = a.enclosing
	}

	return a
}

// Assign replaces the value of the nearest binding for the name t.
func (e *env) Assign(t *token.T, v cell.T) error {
	k := t.Lexeme()

	for s := e; s != nil; s = s.enclosing {
		if s.values.Has(k) {
			s.values.Set(k, v)

			return nil
		}
	}

	return undefined(t)
}

// AssignAt replaces the value of k in the env distance links out from e.
// The name must already be bound there; if it is not the resolver and the
// evaluator disagree and AssignAt panics.
func (e *env) AssignAt(distance int, k string, v cell.T) {
	a := e.Ancestor(distance)
	if !a.values.Has(k) {
		panic(missing(distance, k))
	}

	a.values.Set(k, v)
}

// Define binds k to v in e. An existing binding for k in e is replaced.
func (e *env) Define(k string, v cell.T) {
	e.values.Set(k, v)
}

// Depth returns the number of links between e and the outermost env.
func (e *env) Depth() int {
	n := 0
	for s := e.enclosing; s != nil; s = s.enclosing {
		n++
	}

	return n
}

// Distance returns the number of links from e to the nearest env that
// binds k. The second result is false if k is not bound anywhere.
func (e *env) Distance(k string) (int, bool) {
	n := 0
	for s := e; s != nil; s = s.enclosing {
		if s.values.Has(k) {
			return n, true
		}

		n++
	}

	return 0, false
}

// Enclosing returns the env enclosing e, or nil.
func (e *env) Enclosing() *T {
	return e.enclosing
}

// Get retrieves the value of the nearest binding for the name t.
func (e *env) Get(t *token.T) (cell.T, error) {
	k := t.Lexeme()

	for s := e; s != nil; s = s.enclosing {
		if v, ok := s.values.Get(k); ok {
			return v, nil
		}
	}

	return nil, undefined(t)
}

// GetAt retrieves the value of k in the env distance links out from e.
// Like AssignAt, it panics if the name is not bound there.
func (e *env) GetAt(distance int, k string) cell.T {
	v, ok := e.Ancestor(distance).values.Get(k)
	if !ok {
		panic(missing(distance, k))
	}

	return v
}

// Names returns the names bound directly in e.
func (e *env) Names() []string {
	return e.values.Keys()
}

func missing(distance int, k string) string {
	return "env: '" + k + "' is not bound at distance " + strconv.Itoa(distance)
}

func undefined(t *token.T) error {
	return fault.New(t, "Undefined variable '"+t.Lexeme()+"'.")
}
