package parser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/diagnostic"
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/reader/lexer"
	"github.com/michaelmacinnis/lox/internal/type/str"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			"Precedence",
			"1 + 2 * 3 - 4;",
			"(; (- (+ 1 (* 2 3)) 4))",
		},
		{
			"UnaryAndGrouping",
			"-(1 + 2) == !true;",
			"(; (== (- (group (+ 1 2))) (! true)))",
		},
		{
			"Comparison",
			"1 < 2 != 3 >= 4;",
			"(; (!= (< 1 2) (>= 3 4)))",
		},
		{
			"Logical",
			"a or b and c;",
			"(; (or a (and b c)))",
		},
		{
			"AssignmentIsRightAssociative",
			"a = b = nil;",
			"(; (= a (= b nil)))",
		},
		{
			"Set",
			"a.b.c = \"x\";",
			"(; (set (. a b) c \"x\"))",
		},
		{
			"CallChain",
			"f(1)(2, 3).x;",
			"(; (. (call (call f 1) 2 3) x))",
		},
		{
			"Var",
			"var a; var b = 1;",
			"(var a) (var b 1)",
		},
		{
			"IfElse",
			"if (a) print 1; else print 2;",
			"(if a (print 1) (print 2))",
		},
		{
			"DanglingElse",
			"if (a) if (b) print 1; else print 2;",
			"(if a (if b (print 1) (print 2)))",
		},
		{
			"While",
			"while (a) { a = false; }",
			"(while a (block (; (= a false))))",
		},
		{
			"For",
			"for (var i = 0; i < 3; i = i + 1) print i;",
			"(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))",
		},
		{
			"ForWithoutClauses",
			"for (;;) print 1;",
			"(while true (print 1))",
		},
		{
			"ForWithExpressionInitializer",
			"for (i = 0; i < 1;) print i;",
			"(block (; (= i 0)) (while (< i 1) (print i)))",
		},
		{
			"Function",
			"fun add(a, b) { return a + b; } fun f() { return; }",
			"(fun add (a b) (return (+ a b))) (fun f () (return))",
		},
		{
			"Class",
			"class B < A { init(x) { this.x = x; } m() { return super.m(); } }",
			"(class B < A (fun init (x) (; (set this x x))) (fun m () (return (call (super m)))))",
		},
		{
			"ClassWithoutSuperclass",
			"class A {}",
			"(class A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagnostic.New()

			stmts := Parse(lexer.Scan(tt.source, d), d)
			if d.Len() != 0 {
				t.Fatalf("unexpected errors: %v", d.Err())
			}

			if actual := render(stmts...); actual != tt.expected {
				t.Fatalf("expected %s; got %s", tt.expected, actual)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
		errors   []string
	}{
		{
			"InvalidAssignmentTarget",
			"1 = 2;",
			"(; 1)",
			[]string{"[line 1] Error at '=': Invalid assignment target."},
		},
		{
			"MissingSemicolonAtEnd",
			"print 1",
			"",
			[]string{"[line 1] Error at end: Expect ';' after value."},
		},
		{
			"Synchronize",
			"var = 1;\nprint 2;\nvar x = ;\nprint 3;",
			"(print 2) (print 3)",
			[]string{
				"[line 1] Error at '=': Expect variable name.",
				"[line 3] Error at ';': Expect expression.",
			},
		},
		{
			"SynchronizeAtKeyword",
			"print (1 2 print 3;",
			"(print 3)",
			[]string{"[line 1] Error at '2': Expect ')' after expression."},
		},
		{
			"FailedDeclarationInBlockIsOmitted",
			"{ var a = 1; var = 2; print a; }",
			"(block (var a 1) (print a))",
			[]string{"[line 1] Error at '=': Expect variable name."},
		},
		{
			"SuperWithoutMethod",
			"super;",
			"",
			[]string{"[line 1] Error at ';': Expect '.' after 'super'."},
		},
		{
			"MissingClassBrace",
			"class A < {}",
			"",
			[]string{"[line 1] Error at '{': Expect superclass name."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagnostic.New()

			stmts := Parse(lexer.Scan(tt.source, d), d)

			if actual := render(stmts...); actual != tt.expected {
				t.Errorf("expected %s; got %s", tt.expected, actual)
			}

			errs := d.Errors()
			if len(errs) != len(tt.errors) {
				t.Fatalf("expected %d errors; got %v", len(tt.errors), d.Err())
			}

			for i, e := range tt.errors {
				if errs[i].Error() != e {
					t.Errorf("expected %q; got %q", e, errs[i].Error())
				}
			}
		})
	}
}

func TestTooManyParameters(t *testing.T) {
	names := make([]string, 256)
	for i := range names {
		names[i] = "a" + strconv.Itoa(i)
	}

	d := diagnostic.New()

	stmts := Parse(lexer.Scan("fun f("+strings.Join(names, ", ")+") {}", d), d)

	errs := d.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error; got %v", d.Err())
	}

	expected := "[line 1] Error at 'a255': Can't have more than 255 parameters."
	if errs[0].Error() != expected {
		t.Fatalf("expected %q; got %q", expected, errs[0].Error())
	}

	// The guard is diagnostic only; the declaration is still produced.
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement; got %d", len(stmts))
	}
}

func TestTooManyArguments(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = strconv.Itoa(i)
	}

	d := diagnostic.New()

	Parse(lexer.Scan("f("+strings.Join(args, ", ")+");", d), d)

	errs := d.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error; got %v", d.Err())
	}

	expected := "[line 1] Error at '255': Can't have more than 255 arguments."
	if errs[0].Error() != expected {
		t.Fatalf("expected %q; got %q", expected, errs[0].Error())
	}
}

func TestNodesAreDistinct(t *testing.T) {
	d := diagnostic.New()

	first := Parse(lexer.Scan("a;", d), d)
	second := Parse(lexer.Scan("a;", d), d)

	a := first[0].(*ast.Expression).Expression
	b := second[0].(*ast.Expression).Expression

	if a.ID() == b.ID() {
		t.Fatalf("expected distinct IDs; both are %v", a.ID())
	}
}

// render returns a parenthesized prefix form of the statements ss.
func render(ss ...ast.Stmt) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = stmt(s)
	}

	return strings.Join(parts, " ")
}

func expr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Assign:
		return list("=", e.Name.Lexeme(), expr(e.Value))
	case *ast.Binary:
		return list(e.Operator.Lexeme(), expr(e.Left), expr(e.Right))
	case *ast.Call:
		parts := []string{"call", expr(e.Callee)}
		for _, a := range e.Arguments {
			parts = append(parts, expr(a))
		}

		return list(parts...)
	case *ast.Get:
		return list(".", expr(e.Object), e.Name.Lexeme())
	case *ast.Grouping:
		return list("group", expr(e.Expression))
	case *ast.Literal:
		if str.Is(e.Value) {
			return strconv.Quote(str.To(e.Value).String())
		}

		return cell.String(e.Value)
	case *ast.Logical:
		return list(e.Operator.Lexeme(), expr(e.Left), expr(e.Right))
	case *ast.Set:
		return list("set", expr(e.Object), e.Name.Lexeme(), expr(e.Value))
	case *ast.Super:
		return list("super", e.Method.Lexeme())
	case *ast.This:
		return "this"
	case *ast.Unary:
		return list(e.Operator.Lexeme(), expr(e.Right))
	case *ast.Variable:
		return e.Name.Lexeme()
	}

	panic("unknown expression")
}

func function(f *ast.Function) string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Lexeme()
	}

	parts := []string{"fun", f.Name.Lexeme(), "(" + strings.Join(params, " ") + ")"}
	for _, s := range f.Body {
		parts = append(parts, stmt(s))
	}

	return list(parts...)
}

func list(parts ...string) string {
	return "(" + strings.Join(parts, " ") + ")"
}

func stmt(s ast.Stmt) string {
	switch s := s.(type) {
	case *ast.Block:
		return list("block", render(s.Statements...))
	case *ast.Class:
		parts := []string{"class", s.Name.Lexeme()}
		if s.Superclass != nil {
			parts = append(parts, "<", s.Superclass.Name.Lexeme())
		}

		for _, m := range s.Methods {
			parts = append(parts, function(m))
		}

		return list(parts...)
	case *ast.Expression:
		return list(";", expr(s.Expression))
	case *ast.Function:
		return function(s)
	case *ast.If:
		parts := []string{"if", expr(s.Condition), stmt(s.Then)}
		if s.Else != nil {
			parts = append(parts, stmt(s.Else))
		}

		return list(parts...)
	case *ast.Print:
		return list("print", expr(s.Expression))
	case *ast.Return:
		if s.Value == nil {
			return list("return")
		}

		return list("return", expr(s.Value))
	case *ast.Var:
		if s.Initializer == nil {
			return list("var", s.Name.Lexeme())
		}

		return list("var", s.Name.Lexeme(), expr(s.Initializer))
	case *ast.While:
		return list("while", expr(s.Condition), stmt(s.Body))
	}

	panic("unknown statement")
}
