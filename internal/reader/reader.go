// Released under an MIT license. See LICENSE.

// Package reader turns lox source text into statements.
package reader

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/diagnostic"
	"github.com/michaelmacinnis/lox/internal/reader/lexer"
	"github.com/michaelmacinnis/lox/internal/reader/parser"
)

// Read scans and parses source. Lexical and syntax errors are sent to r.
// The statements returned should not be evaluated if any were reported.
func Read(source string, r diagnostic.Reporter) []ast.Stmt {
	return parser.Parse(lexer.Scan(source, r), r)
}
