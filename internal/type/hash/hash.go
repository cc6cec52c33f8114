// Released under an MIT license. See LICENSE.

// Package hash provides lox's name to value mapping type.
package hash

import (
	"sort"

	"github.com/michaelmacinnis/lox/internal/interface/cell"
)

// T (hash) maps names to values. A name may be mapped to nil.
type T struct {
	m map[string]cell.T
}

// New creates a new hash.
func New() *T {
	return &T{m: map[string]cell.T{}}
}

// Get retrieves the value associated with the name k in the hash h.
// The second result is false if there is no association.
func (h *T) Get(k string) (cell.T, bool) {
	if h == nil {
		return nil, false
	}

	v, ok := h.m[k]

	return v, ok
}

// Has returns true if the name k is associated with a value in the hash h.
func (h *T) Has(k string) bool {
	_, ok := h.Get(k)
	return ok
}

// Keys returns the names in the hash h in sorted order.
func (h *T) Keys() []string {
	if h == nil {
		return nil
	}

	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Set associates the name k with the cell v in the hash h.
func (h *T) Set(k string, v cell.T) {
	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *T) Size() int {
	if h == nil {
		return 0
	}

	return len(h.m)
}
