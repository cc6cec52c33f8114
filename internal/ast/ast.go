// Released under an MIT license. See LICENSE.

// Package ast defines the syntax tree produced by the lox parser.
//
// Expressions and statements are closed sets of variants. Each interface
// has an unexported marker method so that only this package can add a
// variant, and consumers dispatch with an exhaustive type switch.
//
// Every node is stamped with an ID when it is constructed. IDs are unique
// for the life of the process, even across separate parses, and are the
// only key used to associate data (such as resolved scope distances) with
// a node. Two nodes with the same shape at different positions in the
// source have different IDs.
package ast

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a node.
type ID uint64

//nolint:gochecknoglobals
var last atomic.Uint64

// String returns the ID as text. Useful for debugging.
func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Node carries the identity shared by all expressions and statements.
type Node struct {
	id ID
}

// ID returns the node's identity.
func (n Node) ID() ID {
	return n.id
}

func mark() Node {
	return Node{id: ID(last.Add(1))}
}
