// Released under an MIT license. See LICENSE.

// Package class provides lox's class type.
package class

import (
	"github.com/michaelmacinnis/lox/internal/interface/callable"
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/type/function"
	"github.com/michaelmacinnis/lox/internal/type/hash"
	"github.com/michaelmacinnis/lox/internal/type/instance"
)

const name = "class"

// T (class) is a named method table with an optional superclass.
// Calling a class creates an instance.
type T struct {
	methods    *hash.T
	name       string
	superclass *T
}

type class = T

// New creates a new class. The superclass may be nil.
func New(name string, superclass *T, methods map[string]*function.T) *T {
	c := &T{
		methods:    hash.New(),
		name:       name,
		superclass: superclass,
	}

	for k, m := range methods {
		c.methods.Set(k, m)
	}

	return c
}

// Arity returns the arity of the class's initializer, or 0 if it has none.
func (c *class) Arity() int {
	if m := c.FindMethod("init"); m != nil {
		return m.Arity()
	}

	return 0
}

// Call creates a new instance of c and runs its initializer, if any.
func (c *class) Call(x callable.Executor, args []cell.T) (cell.T, error) {
	i := instance.New(c)

	if m := c.FindMethod("init"); m != nil {
		if _, err := m.Bind(i).Call(x, args); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// Equal returns true if o is the same class as c.
func (c *class) Equal(o cell.T) bool {
	return Is(o) && c == To(o)
}

// FindMethod looks up the method k in c and then in its superclasses.
// It returns nil if there is no such method.
func (c *class) FindMethod(k string) *function.T {
	for s := c; s != nil; s = s.superclass {
		if m, ok := s.methods.Get(k); ok {
			return function.To(m)
		}
	}

	return nil
}

// Name returns the name of the class type.
func (c *class) Name() string {
	return name
}

// String returns the class's name.
func (c *class) String() string {
	return c.name
}

// Superclass returns the superclass of c, or nil.
func (c *class) Superclass() *T {
	return c.superclass
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
