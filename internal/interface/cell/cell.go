// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lox values.
package cell

// T (cell) is the basic unit of storage in lox.
// The lox value nil is represented by a nil T.
type T interface {
	Equal(c T) bool
	Name() string
	String() string
}

// Equal returns true if a and b are the same lox value.
// It never fails: nil is equal only to nil.
func Equal(a, b T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(b)
}

// String returns the printed representation of the value c.
func String(c T) string {
	if c == nil {
		return "nil"
	}

	return c.String()
}

// Name returns the type name of the value c.
func Name(c T) string {
	if c == nil {
		return "nil"
	}

	return c.Name()
}
