package resolver

import (
	"testing"

	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/diagnostic"
	"github.com/michaelmacinnis/lox/internal/reader"
)

type table struct {
	depths  map[ast.ID]int
	globals map[string]bool
}

func (t *table) Global(name string) bool {
	return t.globals[name]
}

func (t *table) Resolve(id ast.ID, depth int) {
	t.depths[id] = depth
}

func setup(t *testing.T, source string, globals ...string) ([]ast.Stmt, *table, *diagnostic.T) {
	t.Helper()

	d := diagnostic.New()

	stmts := reader.Read(source, d)
	if d.Len() != 0 {
		t.Fatalf("unexpected syntax errors: %v", d.Err())
	}

	tbl := &table{depths: map[ast.ID]int{}, globals: map[string]bool{}}
	for _, g := range globals {
		tbl.globals[g] = true
	}

	New(tbl, d).Resolve(stmts)

	return stmts, tbl, d
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			"LocalOwnInitializer",
			"{ var a = a; }",
			"[line 1] Error at 'a': Can't read local variable in its own initializer.",
		},
		{
			"GlobalOwnInitializer",
			"var a = a;",
			"[line 1] Error at 'a': Can't read local variable in its own initializer.",
		},
		{
			"OwnInitializerInExpression",
			"{\nvar b = 1 + b;\n}",
			"[line 2] Error at 'b': Can't read local variable in its own initializer.",
		},
		{
			"Redeclaration",
			"{ var a = 1; var a = 2; }",
			"[line 1] Error at 'a': Already a variable with this name in this scope.",
		},
		{
			"DuplicateParameter",
			"fun f(a, a) {}",
			"[line 1] Error at 'a': Already a variable with this name in this scope.",
		},
		{
			"ThisOutsideClass",
			"print this;",
			"[line 1] Error at 'this': Can't use 'this' outside of a class.",
		},
		{
			"ThisInFunction",
			"fun f() { return this; }",
			"[line 1] Error at 'this': Can't use 'this' outside of a class.",
		},
		{
			"SuperOutsideClass",
			"print super.m;",
			"[line 1] Error at 'super': Can't use 'super' outside of a class.",
		},
		{
			"SuperWithoutSuperclass",
			"class A { m() { return super.m(); } }",
			"[line 1] Error at 'super': Can't use 'super' in a class with no superclass.",
		},
		{
			"TopLevelReturn",
			"return 1;",
			"[line 1] Error at 'return': Can't return from top-level code.",
		},
		{
			"ReturnValueFromInitializer",
			"class A { init() { return 1; } }",
			"[line 1] Error at 'return': Can't return a value from an initializer.",
		},
		{
			"InheritFromSelf",
			"class A < A {}",
			"[line 1] Error at 'A': A class can't inherit from itself.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, d := setup(t, tt.source)

			errs := d.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error; got %v", d.Err())
			}

			if errs[0].Error() != tt.expected {
				t.Fatalf("expected %q; got %q", tt.expected, errs[0].Error())
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		globals []string
	}{
		{"Shadowing", "var a = 1; { var a = a + 1; print a; } print a;", nil},
		{"ShadowingLocal", "{ var a = 1; { var a = a + 1; } }", nil},
		{"GlobalRedefinition", "var a = 1; var a = a;", nil},
		{"KnownGlobal", "var clock = clock;", []string{"clock"}},
		{"BareReturnFromInitializer", "class A { init() { return; } }", nil},
		{"Recursion", "fun f(n) { return f(n - 1); }", nil},
		{"SelfReferenceInMethod", "class A { m() { return A; } }", nil},
		{"Super", "class A {} class B < A { m() { return super.m; } }", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, d := setup(t, tt.source, tt.globals...)
			if d.Len() != 0 {
				t.Fatalf("unexpected errors: %v", d.Err())
			}
		})
	}
}

func TestDistances(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []int // One per printed reference. -1 means global.
	}{
		{
			"Blocks",
			"var g; { var a = 1; { var b = 2; print a; print b; print g; } }",
			[]int{1, 0, -1},
		},
		{
			"InitializerReadsOuterBinding",
			"var a = 1; { var a = a + 1; print a; } { var b = 1; { var b = b; print b; } }",
			[]int{0, 0},
		},
		{
			"Closure",
			"{ var x = 1; fun f(y) { print x; print y; } }",
			[]int{1, 0},
		},
		{
			"Method",
			"class A {} class B < A { m() { var v; print v; print this; print super.m; } }",
			[]int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, tbl, d := setup(t, tt.source)
			if d.Len() != 0 {
				t.Fatalf("unexpected errors: %v", d.Err())
			}

			var printed []ast.Expr
			collect(&printed, stmts...)

			if len(printed) != len(tt.expected) {
				t.Fatalf("expected %d printed references; got %d", len(tt.expected), len(printed))
			}

			for i, e := range printed {
				actual, ok := tbl.depths[e.ID()]
				if !ok {
					actual = -1
				}

				if actual != tt.expected[i] {
					t.Errorf("reference %d: expected depth %d; got %d", i, tt.expected[i], actual)
				}
			}
		})
	}
}

func TestInitializerReferenceIsNotLocal(t *testing.T) {
	stmts, tbl, d := setup(t, "var a = 1; { var a = a; }")
	if d.Len() != 0 {
		t.Fatalf("unexpected errors: %v", d.Err())
	}

	v := stmts[1].(*ast.Block).Statements[0].(*ast.Var)

	if depth, ok := tbl.depths[v.Initializer.ID()]; ok {
		t.Fatalf("expected a global reference; got depth %d", depth)
	}
}

// collect appends the expressions of every print statement in ss to es.
func collect(es *[]ast.Expr, ss ...ast.Stmt) {
	for _, s := range ss {
		switch s := s.(type) {
		case *ast.Block:
			collect(es, s.Statements...)
		case *ast.Class:
			for _, m := range s.Methods {
				collect(es, m)
			}
		case *ast.Function:
			collect(es, s.Body...)
		case *ast.Print:
			*es = append(*es, s.Expression)
		}
	}
}
