// Released under an MIT license. See LICENSE.

package ast

import (
	"github.com/michaelmacinnis/lox/internal/reader/token"
)

// Stmt is a statement node.
type Stmt interface {
	ID() ID
	stmt()
}

// Block is a braced list of statements with its own scope.
type Block struct {
	Node
	Statements []Stmt
}

// Class is a class declaration. Superclass is nil if there is none.
type Class struct {
	Node
	Name       *token.T
	Superclass *Variable
	Methods    []*Function
}

// Expression is an expression evaluated for its side effects.
type Expression struct {
	Node
	Expression Expr
}

// Function is a function or method declaration.
type Function struct {
	Node
	Name   *token.T
	Params []*token.T
	Body   []Stmt
}

// If is a conditional. Else is nil if there is no else branch.
type If struct {
	Node
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// Print writes the value of an expression.
type Print struct {
	Node
	Expression Expr
}

// Return leaves the enclosing function. Value is nil for a bare return.
type Return struct {
	Node
	Keyword *token.T
	Value   Expr
}

// Var declares a variable. Initializer is nil if there is none.
type Var struct {
	Node
	Name        *token.T
	Initializer Expr
}

// While is a loop. For loops are desugared into while loops.
type While struct {
	Node
	Condition Expr
	Body      Stmt
}

func (*Block) stmt()      {}
func (*Class) stmt()      {}
func (*Expression) stmt() {}
func (*Function) stmt()   {}
func (*If) stmt()         {}
func (*Print) stmt()      {}
func (*Return) stmt()     {}
func (*Var) stmt()        {}
func (*While) stmt()      {}

// NewBlock creates a block statement.
func NewBlock(statements []Stmt) *Block {
	return &Block{Node: mark(), Statements: statements}
}

// NewClass creates a class declaration.
func NewClass(name *token.T, superclass *Variable, methods []*Function) *Class {
	return &Class{Node: mark(), Name: name, Superclass: superclass, Methods: methods}
}

// NewExpression creates an expression statement.
func NewExpression(e Expr) *Expression {
	return &Expression{Node: mark(), Expression: e}
}

// NewFunction creates a function declaration.
func NewFunction(name *token.T, params []*token.T, body []Stmt) *Function {
	return &Function{Node: mark(), Name: name, Params: params, Body: body}
}

// NewIf creates a conditional statement.
func NewIf(condition Expr, then, otherwise Stmt) *If {
	return &If{Node: mark(), Condition: condition, Then: then, Else: otherwise}
}

// NewPrint creates a print statement.
func NewPrint(e Expr) *Print {
	return &Print{Node: mark(), Expression: e}
}

// NewReturn creates a return statement.
func NewReturn(keyword *token.T, value Expr) *Return {
	return &Return{Node: mark(), Keyword: keyword, Value: value}
}

// NewVar creates a variable declaration.
func NewVar(name *token.T, initializer Expr) *Var {
	return &Var{Node: mark(), Name: name, Initializer: initializer}
}

// NewWhile creates a loop.
func NewWhile(condition Expr, body Stmt) *While {
	return &While{Node: mark(), Condition: condition, Body: body}
}
