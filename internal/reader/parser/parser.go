// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lox language.
package parser

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/diagnostic"
	"github.com/michaelmacinnis/lox/internal/reader/token"
	"github.com/michaelmacinnis/lox/internal/type/boolean"
)

const maxArgs = 255

// T holds the state of the parser.
type T struct {
	current int                 // Index of the lookahead token.
	report  diagnostic.Reporter // Receives syntax errors.
	tokens  []*token.T          // Always ends with an EOF token.
}

type parser = T

// failure unwinds the parser to the enclosing declaration after a syntax
// error has been reported.
type failure struct{}

// New creates a new parser for tokens. Errors are sent to r.
func New(tokens []*token.T, r diagnostic.Reporter) *T {
	if len(tokens) == 0 || !tokens[len(tokens)-1].Is(token.EOF) {
		line := 1
		if n := len(tokens); n > 0 {
			line = tokens[n-1].Line()
		}

		tokens = append(tokens, token.New(token.EOF, "", nil, line))
	}

	return &T{report: r, tokens: tokens}
}

// Parse is a convenience function that parses tokens with a new parser.
func Parse(tokens []*token.T, r diagnostic.Reporter) []ast.Stmt {
	return New(tokens, r).Parse()
}

// Parse consumes tokens until EOF and returns the statements parsed.
// Declarations containing syntax errors are reported and left out.
//
//	<program> ::= <declaration>* EOF .
func (p *parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt

	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}

	return stmts
}

func (p *parser) advance() *token.T {
	if !p.atEnd() {
		p.current++
	}

	return p.previous()
}

func (p *parser) atEnd() bool {
	return p.peek().Is(token.EOF)
}

func (p *parser) check(k token.Kind) bool {
	return p.peek().Is(k)
}

// error reports message at t. The caller decides whether to unwind.
func (p *parser) error(t *token.T, message string) failure {
	diagnostic.Token(p.report, t, message)

	return failure{}
}

func (p *parser) expect(k token.Kind, message string) *token.T {
	if p.check(k) {
		return p.advance()
	}

	panic(p.error(p.peek(), message))
}

func (p *parser) match(ks ...token.Kind) bool {
	if p.peek().Is(ks...) {
		p.advance()

		return true
	}

	return false
}

func (p *parser) peek() *token.T {
	return p.tokens[p.current]
}

func (p *parser) previous() *token.T {
	return p.tokens[p.current-1]
}

// synchronize discards tokens until what is probably a statement boundary.
func (p *parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Is(token.Semicolon) {
			return
		}

		switch p.peek().Kind() {
		case token.Class, token.Fun, token.Var, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}

// Statements.

// <declaration> ::= <class-decl> | <fun-decl> | <var-decl> | <statement> .
func (p *parser) declaration() (s ast.Stmt) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if _, ok := r.(failure); !ok {
			panic(r)
		}

		p.synchronize()

		s = nil
	}()

	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	}

	return p.statement()
}

// <class-decl> ::= 'class' IDENTIFIER ( '<' IDENTIFIER )? '{' <function>* '}' .
func (p *parser) classDeclaration() ast.Stmt {
	name := p.expect(token.Identifier, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.Less) {
		p.expect(token.Identifier, "Expect superclass name.")
		superclass = ast.NewVariable(p.previous())
	}

	p.expect(token.LeftBrace, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(token.RightBrace) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}

	p.expect(token.RightBrace, "Expect '}' after class body.")

	return ast.NewClass(name, superclass, methods)
}

// <function> ::= IDENTIFIER '(' <parameters>? ')' <block> .
// <parameters> ::= IDENTIFIER ( ',' IDENTIFIER )* .
func (p *parser) function(kind string) *ast.Function {
	name := p.expect(token.Identifier, "Expect "+kind+" name.")

	p.expect(token.LeftParen, "Expect '(' after "+kind+" name.")

	var params []*token.T

	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.error(p.peek(), "Can't have more than 255 parameters.")
			}

			params = append(params, p.expect(token.Identifier, "Expect parameter name."))

			if !p.match(token.Comma) {
				break
			}
		}
	}

	p.expect(token.RightParen, "Expect ')' after parameters.")
	p.expect(token.LeftBrace, "Expect '{' before "+kind+" body.")

	return ast.NewFunction(name, params, p.block())
}

// <var-decl> ::= 'var' IDENTIFIER ( '=' <expression> )? ';' .
func (p *parser) varDeclaration() ast.Stmt {
	name := p.expect(token.Identifier, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}

	p.expect(token.Semicolon, "Expect ';' after variable declaration.")

	return ast.NewVar(name, initializer)
}

// <statement> ::= <expr-stmt> | <for-stmt> | <if-stmt> | <print-stmt>
//
//	| <return-stmt> | <while-stmt> | <block> .
func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		return ast.NewBlock(p.block())
	}

	return p.expressionStatement()
}

// <block> ::= '{' <declaration>* '}' .
func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt

	for !p.check(token.RightBrace) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}

	p.expect(token.RightBrace, "Expect '}' after block.")

	return stmts
}

// <expr-stmt> ::= <expression> ';' .
func (p *parser) expressionStatement() ast.Stmt {
	e := p.expression()

	p.expect(token.Semicolon, "Expect ';' after expression.")

	return ast.NewExpression(e)
}

// A for loop has no node of its own. It is rewritten as a while loop:
//
//	{ initializer; while (condition) { body; increment; } }
//
// <for-stmt> ::= 'for' '(' ( <var-decl> | <expr-stmt> | ';' )
//
//	<expression>? ';' <expression>? ')' <statement> .
func (p *parser) forStatement() ast.Stmt {
	p.expect(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt

	switch {
	case p.match(token.Semicolon):
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}

	p.expect(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}

	p.expect(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = ast.NewBlock([]ast.Stmt{body, ast.NewExpression(increment)})
	}

	if condition == nil {
		condition = ast.NewLiteral(boolean.True)
	}

	body = ast.NewWhile(condition, body)

	if initializer != nil {
		body = ast.NewBlock([]ast.Stmt{initializer, body})
	}

	return body
}

// <if-stmt> ::= 'if' '(' <expression> ')' <statement> ( 'else' <statement> )? .
func (p *parser) ifStatement() ast.Stmt {
	p.expect(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.expect(token.RightParen, "Expect ')' after if condition.")

	then := p.statement()

	var otherwise ast.Stmt
	if p.match(token.Else) {
		otherwise = p.statement()
	}

	return ast.NewIf(condition, then, otherwise)
}

// <print-stmt> ::= 'print' <expression> ';' .
func (p *parser) printStatement() ast.Stmt {
	e := p.expression()

	p.expect(token.Semicolon, "Expect ';' after value.")

	return ast.NewPrint(e)
}

// <return-stmt> ::= 'return' <expression>? ';' .
func (p *parser) returnStatement() ast.Stmt {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}

	p.expect(token.Semicolon, "Expect ';' after return value.")

	return ast.NewReturn(keyword, value)
}

// <while-stmt> ::= 'while' '(' <expression> ')' <statement> .
func (p *parser) whileStatement() ast.Stmt {
	p.expect(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.expect(token.RightParen, "Expect ')' after condition.")

	return ast.NewWhile(condition, p.statement())
}

// Expressions.

// <expression> ::= <assignment> .
func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// <assignment> ::= ( <call> '.' )? IDENTIFIER '=' <assignment> | <or> .
func (p *parser) assignment() ast.Expr {
	e := p.or()

	if !p.match(token.Equal) {
		return e
	}

	equals := p.previous()
	value := p.assignment()

	switch target := e.(type) {
	case *ast.Variable:
		return ast.NewAssign(target.Name, value)
	case *ast.Get:
		return ast.NewSet(target.Object, target.Name, value)
	}

	// The parser is not confused about where it is so there's no need
	// to synchronize.
	p.error(equals, "Invalid assignment target.")

	return e
}

// <or> ::= <and> ( 'or' <and> )* .
func (p *parser) or() ast.Expr {
	e := p.and()

	for p.match(token.Or) {
		op := p.previous()
		e = ast.NewLogical(e, op, p.and())
	}

	return e
}

// <and> ::= <equality> ( 'and' <equality> )* .
func (p *parser) and() ast.Expr {
	e := p.equality()

	for p.match(token.And) {
		op := p.previous()
		e = ast.NewLogical(e, op, p.equality())
	}

	return e
}

// <equality> ::= <comparison> ( ( '!=' | '==' ) <comparison> )* .
func (p *parser) equality() ast.Expr {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

// <comparison> ::= <term> ( ( '>' | '>=' | '<' | '<=' ) <term> )* .
func (p *parser) comparison() ast.Expr {
	return p.binary(p.term,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

// <term> ::= <factor> ( ( '-' | '+' ) <factor> )* .
func (p *parser) term() ast.Expr {
	return p.binary(p.factor, token.Minus, token.Plus)
}

// <factor> ::= <unary> ( ( '/' | '*' ) <unary> )* .
func (p *parser) factor() ast.Expr {
	return p.binary(p.unary, token.Slash, token.Star)
}

func (p *parser) binary(operand func() ast.Expr, ks ...token.Kind) ast.Expr {
	e := operand()

	for p.match(ks...) {
		op := p.previous()
		e = ast.NewBinary(e, op, operand())
	}

	return e
}

// <unary> ::= ( '!' | '-' ) <unary> | <call> .
func (p *parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		return ast.NewUnary(op, p.unary())
	}

	return p.call()
}

// <call> ::= <primary> ( '(' <arguments>? ')' | '.' IDENTIFIER )* .
func (p *parser) call() ast.Expr {
	e := p.primary()

	for {
		switch {
		case p.match(token.LeftParen):
			e = p.finishCall(e)
		case p.match(token.Dot):
			name := p.expect(token.Identifier, "Expect property name after '.'.")
			e = ast.NewGet(e, name)
		default:
			return e
		}
	}
}

// <arguments> ::= <expression> ( ',' <expression> )* .
func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr

	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.error(p.peek(), "Can't have more than 255 arguments.")
			}

			args = append(args, p.expression())

			if !p.match(token.Comma) {
				break
			}
		}
	}

	paren := p.expect(token.RightParen, "Expect ')' after arguments.")

	return ast.NewCall(callee, paren, args)
}

// <primary> ::= 'true' | 'false' | 'nil' | 'this' | NUMBER | STRING
//
//	| IDENTIFIER | '(' <expression> ')' | 'super' '.' IDENTIFIER .
func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return ast.NewLiteral(boolean.False)
	case p.match(token.True):
		return ast.NewLiteral(boolean.True)
	case p.match(token.Nil):
		return ast.NewLiteral(nil)
	case p.match(token.Number, token.String):
		return ast.NewLiteral(p.previous().Literal())
	case p.match(token.Super):
		keyword := p.previous()
		p.expect(token.Dot, "Expect '.' after 'super'.")
		method := p.expect(token.Identifier, "Expect superclass method name.")

		return ast.NewSuper(keyword, method)
	case p.match(token.This):
		return ast.NewThis(p.previous())
	case p.match(token.Identifier):
		return ast.NewVariable(p.previous())
	case p.match(token.LeftParen):
		e := p.expression()
		p.expect(token.RightParen, "Expect ')' after expression.")

		return ast.NewGrouping(e)
	}

	panic(p.error(p.peek(), "Expect expression."))
}
