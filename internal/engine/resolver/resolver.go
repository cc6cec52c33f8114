// Released under an MIT license. See LICENSE.

// Package resolver performs static scope resolution for lox programs.
//
// The resolver walks the statements once before they are evaluated. For
// each reference to a local variable it records, in a Table, how many
// environments out from the current one the variable's binding lives.
// References with no entry are globals. Along the way it reports misuses
// of scope that can be detected without running the program.
package resolver

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/diagnostic"
	"github.com/michaelmacinnis/lox/internal/reader/token"
)

// Table receives the scope distance for each resolved local reference.
// Global reports whether name is already bound in the global environment.
type Table interface {
	Global(name string) bool
	Resolve(id ast.ID, depth int)
}

type classKind int

const (
	noClass classKind = iota
	inClass
	inSubclass
)

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inInitializer
	inMethod
)

// T holds the state of the resolver.
type T struct {
	class    classKind
	function functionKind
	globals  map[string]bool // Globals declared so far.
	pending  string          // Global whose initializer is being resolved.
	report   diagnostic.Reporter
	scopes   []map[string]bool // false: declared; true: defined.
	table    Table
}

type resolver = T

// New creates a new resolver that records distances in table and sends
// errors to d.
func New(table Table, d diagnostic.Reporter) *T {
	return &T{globals: map[string]bool{}, report: d, table: table}
}

// Resolve resolves stmts.
func (r *resolver) Resolve(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.stmt(s)
	}
}

func (r *resolver) begin() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *resolver) declare(name *token.T) {
	if len(r.scopes) == 0 {
		r.globals[name.Lexeme()] = true

		return
	}

	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme()]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}

	scope[name.Lexeme()] = false
}

func (r *resolver) define(name *token.T) {
	if len(r.scopes) == 0 {
		return
	}

	r.scopes[len(r.scopes)-1][name.Lexeme()] = true
}

func (r *resolver) end() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) error(t *token.T, message string) {
	diagnostic.Token(r.report, t, message)
}

func (r *resolver) global(k string) bool {
	return r.globals[k] || r.table.Global(k)
}

// local records the distance to the nearest scope where name is defined.
// A name that is declared but not yet defined is still being initialized
// and does not hide a binding further out.
func (r *resolver) local(id ast.ID, name *token.T) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if defined, ok := r.scopes[i][name.Lexeme()]; ok && defined {
			r.table.Resolve(id, len(r.scopes)-1-i)

			return
		}
	}
}

// visible returns true if name can be read without referring to a
// variable that is still being initialized.
func (r *resolver) visible(name *token.T) bool {
	k := name.Lexeme()

	for i := len(r.scopes) - 1; i >= 0; i-- {
		if r.scopes[i][k] {
			return true
		}
	}

	return r.global(k)
}

// initializing returns true if name refers only to a variable whose
// initializer is being resolved.
func (r *resolver) initializing(name *token.T) bool {
	k := name.Lexeme()

	if n := len(r.scopes); n > 0 {
		if defined, ok := r.scopes[n-1][k]; ok && !defined {
			return !r.visible(name)
		}

		return false
	}

	return k == r.pending
}

// Statements.

func (r *resolver) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		r.begin()
		r.Resolve(s.Statements)
		r.end()

	case *ast.Class:
		r.classDeclaration(s)

	case *ast.Expression:
		r.expr(s.Expression)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.functionBody(s, inFunction)

	case *ast.If:
		r.expr(s.Condition)
		r.stmt(s.Then)

		if s.Else != nil {
			r.stmt(s.Else)
		}

	case *ast.Print:
		r.expr(s.Expression)

	case *ast.Return:
		if r.function == noFunction {
			r.error(s.Keyword, "Can't return from top-level code.")
		}

		if s.Value != nil {
			if r.function == inInitializer {
				r.error(s.Keyword, "Can't return a value from an initializer.")
			}

			r.expr(s.Value)
		}

	case *ast.Var:
		r.variable(s)

	case *ast.While:
		r.expr(s.Condition)
		r.stmt(s.Body)

	default:
		panic("resolver: unexpected statement")
	}
}

// A variable does not exist until its initializer has been evaluated. A
// reference to the same name in the initializer reads a binding further
// out. If there is no such binding the reference is an error.
func (r *resolver) variable(s *ast.Var) {
	if len(r.scopes) == 0 {
		if k := s.Name.Lexeme(); !r.global(k) {
			r.pending = k
		}

		if s.Initializer != nil {
			r.expr(s.Initializer)
		}

		r.pending = ""

		r.declare(s.Name)

		return
	}

	r.declare(s.Name)

	if s.Initializer != nil {
		r.expr(s.Initializer)
	}

	r.define(s.Name)
}

func (r *resolver) classDeclaration(s *ast.Class) {
	enclosing := r.class
	r.class = inClass

	defer func() {
		r.class = enclosing
	}()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme() == s.Name.Lexeme() {
			r.error(s.Superclass.Name, "A class can't inherit from itself.")
		}

		r.class = inSubclass

		r.expr(s.Superclass)

		r.begin()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.begin()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, m := range s.Methods {
		kind := inMethod
		if m.Name.Lexeme() == "init" {
			kind = inInitializer
		}

		r.functionBody(m, kind)
	}

	r.end()

	if s.Superclass != nil {
		r.end()
	}
}

func (r *resolver) functionBody(f *ast.Function, kind functionKind) {
	enclosing := r.function
	r.function = kind

	r.begin()

	for _, p := range f.Params {
		r.declare(p)
		r.define(p)
	}

	r.Resolve(f.Body)

	r.end()

	r.function = enclosing
}

// Expressions.

func (r *resolver) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Assign:
		r.expr(e.Value)
		r.local(e.ID(), e.Name)

	case *ast.Binary:
		r.expr(e.Left)
		r.expr(e.Right)

	case *ast.Call:
		r.expr(e.Callee)

		for _, a := range e.Arguments {
			r.expr(a)
		}

	case *ast.Get:
		r.expr(e.Object)

	case *ast.Grouping:
		r.expr(e.Expression)

	case *ast.Literal:

	case *ast.Logical:
		r.expr(e.Left)
		r.expr(e.Right)

	case *ast.Set:
		r.expr(e.Value)
		r.expr(e.Object)

	case *ast.Super:
		switch r.class {
		case noClass:
			r.error(e.Keyword, "Can't use 'super' outside of a class.")
		case inClass:
			r.error(e.Keyword, "Can't use 'super' in a class with no superclass.")
		case inSubclass:
		}

		r.local(e.ID(), e.Keyword)

	case *ast.This:
		if r.class == noClass {
			r.error(e.Keyword, "Can't use 'this' outside of a class.")

			return
		}

		r.local(e.ID(), e.Keyword)

	case *ast.Unary:
		r.expr(e.Right)

	case *ast.Variable:
		if r.initializing(e.Name) {
			r.error(e.Name, "Can't read local variable in its own initializer.")
		}

		r.local(e.ID(), e.Name)

	default:
		panic("resolver: unexpected expression")
	}
}
