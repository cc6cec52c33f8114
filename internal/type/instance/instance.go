// Released under an MIT license. See LICENSE.

// Package instance provides lox's class instance type.
package instance

import (
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/reader/token"
	"github.com/michaelmacinnis/lox/internal/type/fault"
	"github.com/michaelmacinnis/lox/internal/type/function"
	"github.com/michaelmacinnis/lox/internal/type/hash"
)

const name = "instance"

// Class is what an instance needs from its class.
type Class interface {
	FindMethod(name string) *function.T
	String() string
}

// T (instance) is an object created by calling a class.
type T struct {
	class  Class
	fields *hash.T
}

type instance = T

// New creates a new instance of class.
func New(class Class) *T {
	return &T{class: class, fields: hash.New()}
}

// Class returns the class of i.
func (i *instance) Class() Class {
	return i.class
}

// Equal returns true if c is the same instance as i.
func (i *instance) Equal(c cell.T) bool {
	return Is(c) && i == To(c)
}

// Get returns the property t of i. Fields shadow methods. Methods are
// returned bound to i.
func (i *instance) Get(t *token.T) (cell.T, error) {
	k := t.Lexeme()

	if v, ok := i.fields.Get(k); ok {
		return v, nil
	}

	if m := i.class.FindMethod(k); m != nil {
		return m.Bind(i), nil
	}

	return nil, fault.New(t, "Undefined property '"+k+"'.")
}

// Name returns the name of the instance type.
func (i *instance) Name() string {
	return name
}

// Set creates or replaces the field t of i.
func (i *instance) Set(t *token.T, v cell.T) {
	i.fields.Set(t.Lexeme(), v)
}

// String returns the printed form of i.
func (i *instance) String() string {
	return i.class.String() + " instance"
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
