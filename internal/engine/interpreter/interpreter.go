// Released under an MIT license. See LICENSE.

// Package interpreter evaluates resolved lox statements by walking the
// syntax tree.
package interpreter

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/interface/callable"
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/interface/truth"
	"github.com/michaelmacinnis/lox/internal/reader/token"
	"github.com/michaelmacinnis/lox/internal/type/boolean"
	"github.com/michaelmacinnis/lox/internal/type/class"
	"github.com/michaelmacinnis/lox/internal/type/env"
	"github.com/michaelmacinnis/lox/internal/type/fault"
	"github.com/michaelmacinnis/lox/internal/type/function"
	"github.com/michaelmacinnis/lox/internal/type/instance"
	"github.com/michaelmacinnis/lox/internal/type/num"
	"github.com/michaelmacinnis/lox/internal/type/str"
)

// T holds the state of the interpreter. Globals, and the distances
// recorded for them, persist across calls to Interpret.
type T struct {
	env     *env.T // Current environment.
	globals *env.T
	locals  map[ast.ID]int
	logger  *slog.Logger
	stdout  io.Writer
	trace   bool // Debug logging is enabled.
}

type interpreter = T

// completion is the outcome of executing a return statement. A nil
// *completion means the statement completed normally.
type completion struct {
	value cell.T
}

// New creates a new interpreter that prints to stdout. If logger is nil
// nothing is logged.
func New(stdout io.Writer, logger *slog.Logger) *T {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	globals := env.New(nil)

	return &T{
		env:     globals,
		globals: globals,
		locals:  map[ast.ID]int{},
		logger:  logger,
		stdout:  stdout,
		trace:   logger.Enabled(context.Background(), slog.LevelDebug),
	}
}

// Define binds name to v in the global environment.
func (i *interpreter) Define(name string, v cell.T) {
	i.globals.Define(name, v)
}

// ExecuteBody executes body in scope and returns the value of the return
// statement that ended it, if any.
func (i *interpreter) ExecuteBody(body []ast.Stmt, scope *env.T) (cell.T, error) {
	c, err := i.block(body, scope)
	if err != nil || c == nil {
		return nil, err
	}

	return c.value, nil
}

// Global returns true if name is bound in the global environment.
func (i *interpreter) Global(name string) bool {
	_, ok := i.globals.Distance(name)
	return ok
}

// Interpret executes stmts in order. It stops at the first runtime error
// and returns it.
func (i *interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := i.execute(s); err != nil {
			return err
		}
	}

	return nil
}

// Resolve records that the variable referred to by the node id is bound
// depth environments out from where it is used.
func (i *interpreter) Resolve(id ast.ID, depth int) {
	i.locals[id] = depth
}

// block executes stmts with scope as the current environment. The
// previous environment is restored however block returns.
func (i *interpreter) block(stmts []ast.Stmt, scope *env.T) (*completion, error) {
	previous := i.env
	i.env = scope

	if i.trace {
		i.logger.Debug("push environment",
			slog.Int("depth", scope.Depth()))
	}

	defer func() {
		i.env = previous

		if i.trace {
			i.logger.Debug("pop environment",
				slog.Int("depth", scope.Depth()),
				slog.Any("names", scope.Names()))
		}
	}()

	for _, s := range stmts {
		c, err := i.execute(s)
		if err != nil || c != nil {
			return c, err
		}
	}

	return nil, nil
}

// Statements.

func (i *interpreter) execute(s ast.Stmt) (*completion, error) {
	switch s := s.(type) {
	case *ast.Block:
		return i.block(s.Statements, env.New(i.env))

	case *ast.Class:
		return nil, i.classDeclaration(s)

	case *ast.Expression:
		_, err := i.evaluate(s.Expression)

		return nil, err

	case *ast.Function:
		i.env.Define(s.Name.Lexeme(), function.New(s, i.env, false))

		return nil, nil

	case *ast.If:
		v, err := i.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}

		switch {
		case truth.Value(v):
			return i.execute(s.Then)
		case s.Else != nil:
			return i.execute(s.Else)
		}

		return nil, nil

	case *ast.Print:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return nil, err
		}

		_, err = io.WriteString(i.stdout, cell.String(v)+"\n")

		return nil, err

	case *ast.Return:
		var v cell.T

		if s.Value != nil {
			var err error

			v, err = i.evaluate(s.Value)
			if err != nil {
				return nil, err
			}
		}

		return &completion{value: v}, nil

	case *ast.Var:
		var v cell.T

		if s.Initializer != nil {
			var err error

			v, err = i.evaluate(s.Initializer)
			if err != nil {
				return nil, err
			}
		}

		i.env.Define(s.Name.Lexeme(), v)

		return nil, nil

	case *ast.While:
		return i.while(s)
	}

	panic("interpreter: unexpected statement")
}

func (i *interpreter) classDeclaration(s *ast.Class) error {
	var superclass *class.T

	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}

		if !class.Is(v) {
			return fault.New(s.Superclass.Name, "Superclass must be a class.")
		}

		superclass = class.To(v)
	}

	// Defined first so that methods can refer to the class.
	i.env.Define(s.Name.Lexeme(), nil)

	scope := i.env
	if superclass != nil {
		scope = env.New(i.env)
		scope.Define("super", superclass)
	}

	methods := make(map[string]*function.T, len(s.Methods))
	for _, m := range s.Methods {
		k := m.Name.Lexeme()
		methods[k] = function.New(m, scope, k == "init")
	}

	i.logger.Debug("class declaration",
		slog.String("class", s.Name.Lexeme()),
		slog.Int("method-count", len(methods)))

	return i.env.Assign(s.Name, class.New(s.Name.Lexeme(), superclass, methods))
}

func (i *interpreter) while(s *ast.While) (*completion, error) {
	for {
		v, err := i.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}

		if !truth.Value(v) {
			return nil, nil
		}

		c, err := i.execute(s.Body)
		if err != nil || c != nil {
			return c, err
		}
	}
}

// Expressions.

//nolint:cyclop,funlen
func (i *interpreter) evaluate(e ast.Expr) (cell.T, error) {
	switch e := e.(type) {
	case *ast.Assign:
		v, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}

		if d, ok := i.locals[e.ID()]; ok {
			i.env.AssignAt(d, e.Name.Lexeme(), v)
		} else if err := i.globals.Assign(e.Name, v); err != nil {
			return nil, err
		}

		return v, nil

	case *ast.Binary:
		return i.binary(e)

	case *ast.Call:
		return i.call(e)

	case *ast.Get:
		o, err := i.evaluate(e.Object)
		if err != nil {
			return nil, err
		}

		if !instance.Is(o) {
			return nil, fault.New(e.Name, "Only instances have properties.")
		}

		return instance.To(o).Get(e.Name)

	case *ast.Grouping:
		return i.evaluate(e.Expression)

	case *ast.Literal:
		return e.Value, nil

	case *ast.Logical:
		l, err := i.evaluate(e.Left)
		if err != nil {
			return nil, err
		}

		switch {
		case e.Operator.Is(token.Or) && truth.Value(l):
			return l, nil
		case e.Operator.Is(token.And) && !truth.Value(l):
			return l, nil
		}

		return i.evaluate(e.Right)

	case *ast.Set:
		o, err := i.evaluate(e.Object)
		if err != nil {
			return nil, err
		}

		if !instance.Is(o) {
			return nil, fault.New(e.Name, "Only instances have fields.")
		}

		v, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}

		instance.To(o).Set(e.Name, v)

		return v, nil

	case *ast.Super:
		return i.super(e)

	case *ast.This:
		return i.lookup(e.Keyword, e.ID())

	case *ast.Unary:
		r, err := i.evaluate(e.Right)
		if err != nil {
			return nil, err
		}

		if e.Operator.Is(token.Bang) {
			return boolean.Bool(!truth.Value(r)), nil
		}

		if !num.Is(r) {
			return nil, fault.New(e.Operator, "Operand must be a number.")
		}

		return num.New(-num.To(r).Float()), nil

	case *ast.Variable:
		return i.lookup(e.Name, e.ID())
	}

	panic("interpreter: unexpected expression")
}

func (i *interpreter) binary(e *ast.Binary) (cell.T, error) {
	l, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	r, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	op := e.Operator

	switch op.Kind() {
	case token.BangEqual:
		return boolean.Bool(!cell.Equal(l, r)), nil
	case token.EqualEqual:
		return boolean.Bool(cell.Equal(l, r)), nil
	case token.Plus:
		switch {
		case num.Is(l) && num.Is(r):
			return num.New(num.To(l).Float() + num.To(r).Float()), nil
		case str.Is(l) && str.Is(r):
			return str.New(str.To(l).String() + str.To(r).String()), nil
		}

		return nil, fault.New(op, "Operands must be two numbers or two strings.")
	}

	if !num.Is(l) || !num.Is(r) {
		return nil, fault.New(op, "Operands must be numbers.")
	}

	a, b := num.To(l).Float(), num.To(r).Float()

	switch op.Kind() {
	case token.Greater:
		return boolean.Bool(a > b), nil
	case token.GreaterEqual:
		return boolean.Bool(a >= b), nil
	case token.Less:
		return boolean.Bool(a < b), nil
	case token.LessEqual:
		return boolean.Bool(a <= b), nil
	case token.Minus:
		return num.New(a - b), nil
	case token.Slash:
		return num.New(a / b), nil
	case token.Star:
		return num.New(a * b), nil
	}

	panic("interpreter: unexpected operator " + op.Kind().String())
}

func (i *interpreter) call(e *ast.Call) (cell.T, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]cell.T, len(e.Arguments))
	for n, a := range e.Arguments {
		args[n], err = i.evaluate(a)
		if err != nil {
			return nil, err
		}
	}

	f, ok := callee.(callable.T)
	if !ok {
		return nil, fault.New(e.Paren, "Can only call functions and classes.")
	}

	if len(args) != f.Arity() {
		return nil, fault.New(e.Paren, "Expected "+strconv.Itoa(f.Arity())+
			" arguments but got "+strconv.Itoa(len(args))+".")
	}

	if i.trace {
		i.logger.Debug("function call",
			slog.String("function", f.String()),
			slog.Int("argument-count", len(args)))
	}

	return f.Call(i, args)
}

func (i *interpreter) lookup(name *token.T, id ast.ID) (cell.T, error) {
	if d, ok := i.locals[id]; ok {
		return i.env.GetAt(d, name.Lexeme()), nil
	}

	return i.globals.Get(name)
}

// super finds the method named by e in the superclass of the class whose
// method is executing and binds it to the current instance. The env
// defining "this" is always just inside the env defining "super".
func (i *interpreter) super(e *ast.Super) (cell.T, error) {
	d, ok := i.locals[e.ID()]
	if !ok {
		panic("interpreter: unresolved 'super'")
	}

	superclass := class.To(i.env.GetAt(d, "super"))
	this := i.env.GetAt(d-1, "this")

	m := superclass.FindMethod(e.Method.Lexeme())
	if m == nil {
		return nil, fault.New(e.Method, "Undefined property '"+e.Method.Lexeme()+"'.")
	}

	return m.Bind(this), nil
}
