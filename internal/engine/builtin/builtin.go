// Released under an MIT license. See LICENSE.

// Package builtin provides the native functions installed in every lox
// session.
package builtin

import (
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/type/native"
	"github.com/michaelmacinnis/lox/internal/type/num"
)

// Definer is anything that natives can be installed into.
type Definer interface {
	Define(name string, v cell.T)
}

// Install defines every builtin in d.
func Install(d Definer) {
	d.Define("clock", native.New("clock", 0, clock))
}

// clock returns the number of seconds since the Unix epoch.
func clock(_ []cell.T) (cell.T, error) {
	s, err := seconds()
	if err != nil {
		return nil, err
	}

	return num.New(s), nil
}
