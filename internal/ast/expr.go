// Released under an MIT license. See LICENSE.

package ast

import (
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/reader/token"
)

// Expr is an expression node.
type Expr interface {
	ID() ID
	expr()
}

// Assign is `name = value`.
type Assign struct {
	Node
	Name  *token.T
	Value Expr
}

// Binary is `left op right` for arithmetic, comparison and equality.
type Binary struct {
	Node
	Left     Expr
	Operator *token.T
	Right    Expr
}

// Call is `callee(arguments...)`. Paren is the closing parenthesis and is
// used to attribute errors.
type Call struct {
	Node
	Callee    Expr
	Paren     *token.T
	Arguments []Expr
}

// Get is `object.name`.
type Get struct {
	Node
	Object Expr
	Name   *token.T
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Node
	Expression Expr
}

// Literal is a number, string, boolean or nil constant.
type Literal struct {
	Node
	Value cell.T
}

// Logical is `left and right` or `left or right`.
type Logical struct {
	Node
	Left     Expr
	Operator *token.T
	Right    Expr
}

// Set is `object.name = value`.
type Set struct {
	Node
	Object Expr
	Name   *token.T
	Value  Expr
}

// Super is `super.method`.
type Super struct {
	Node
	Keyword *token.T
	Method  *token.T
}

// This is the `this` keyword.
type This struct {
	Node
	Keyword *token.T
}

// Unary is `op right`.
type Unary struct {
	Node
	Operator *token.T
	Right    Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Node
	Name *token.T
}

func (*Assign) expr()   {}
func (*Binary) expr()   {}
func (*Call) expr()     {}
func (*Get) expr()      {}
func (*Grouping) expr() {}
func (*Literal) expr()  {}
func (*Logical) expr()  {}
func (*Set) expr()      {}
func (*Super) expr()    {}
func (*This) expr()     {}
func (*Unary) expr()    {}
func (*Variable) expr() {}

// NewAssign creates an assignment expression.
func NewAssign(name *token.T, value Expr) *Assign {
	return &Assign{Node: mark(), Name: name, Value: value}
}

// NewBinary creates a binary expression.
func NewBinary(left Expr, op *token.T, right Expr) *Binary {
	return &Binary{Node: mark(), Left: left, Operator: op, Right: right}
}

// NewCall creates a call expression.
func NewCall(callee Expr, paren *token.T, arguments []Expr) *Call {
	return &Call{Node: mark(), Callee: callee, Paren: paren, Arguments: arguments}
}

// NewGet creates a property access expression.
func NewGet(object Expr, name *token.T) *Get {
	return &Get{Node: mark(), Object: object, Name: name}
}

// NewGrouping creates a parenthesized expression.
func NewGrouping(e Expr) *Grouping {
	return &Grouping{Node: mark(), Expression: e}
}

// NewLiteral creates a literal expression.
func NewLiteral(v cell.T) *Literal {
	return &Literal{Node: mark(), Value: v}
}

// NewLogical creates a short-circuiting logical expression.
func NewLogical(left Expr, op *token.T, right Expr) *Logical {
	return &Logical{Node: mark(), Left: left, Operator: op, Right: right}
}

// NewSet creates a property assignment expression.
func NewSet(object Expr, name *token.T, value Expr) *Set {
	return &Set{Node: mark(), Object: object, Name: name, Value: value}
}

// NewSuper creates a superclass method access expression.
func NewSuper(keyword, method *token.T) *Super {
	return &Super{Node: mark(), Keyword: keyword, Method: method}
}

// NewThis creates a `this` expression.
func NewThis(keyword *token.T) *This {
	return &This{Node: mark(), Keyword: keyword}
}

// NewUnary creates a unary expression.
func NewUnary(op *token.T, right Expr) *Unary {
	return &Unary{Node: mark(), Operator: op, Right: right}
}

// NewVariable creates a variable reference.
func NewVariable(name *token.T) *Variable {
	return &Variable{Node: mark(), Name: name}
}
