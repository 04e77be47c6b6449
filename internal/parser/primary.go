package parser

import (
	"lit-front/internal/ast"
	"lit-front/internal/diag"
	"lit-front/internal/span"
	"lit-front/internal/token"
)

const maxArguments = 255

func (p *Parser) parseInterpolation() ast.Expr {
	start := p.cur().Span.Start
	var parts []string
	var exprs []ast.Expr

	parts = append(parts, p.advance().Lexeme) // leading INTERPOLATION run
	for {
		exprs = append(exprs, p.parseExpr(PrecAssignment))
		switch p.cur().Kind {
		case token.STRING:
			parts = append(parts, p.advance().Lexeme)
			return &ast.InterpolationExpr{ExprBase: p.exprBase(start), Parts: parts, Exprs: exprs}
		case token.INTERPOLATION:
			parts = append(parts, p.advance().Lexeme)
		default:
			p.errorAtCur(diag.ErrExpectationUnmet, "malformed interpolated string")
			return &ast.InterpolationExpr{ExprBase: p.exprBase(start), Parts: parts, Exprs: exprs}
		}
	}
}

// parseSuper parses `super(args)` (bare superclass constructor call) and
// `super.method(...)` / `super->method(...)`, the latter spelling setting
// IgnoreResult the same way `->` does for an ordinary property Get (see
// GetExpr).
func (p *Parser) parseSuper() ast.Expr {
	start := p.advance().Span.Start // 'super'
	ignoring := p.match(token.ARROW)
	if !ignoring && !p.match(token.DOT) {
		p.expect(token.LPAREN, "super call")
		args := p.parseArgs()
		p.expect(token.RPAREN, "super call arguments")
		return &ast.SuperExpr{ExprBase: p.exprBase(start), Args: args}
	}
	hint := "super method name after '.'"
	if ignoring {
		hint = "super method name after '->'"
	}
	name := p.expect(token.IDENT, hint).Lexeme
	var args []ast.Expr
	if p.match(token.LPAREN) {
		args = p.parseArgs()
		p.expect(token.RPAREN, "super call arguments")
	}
	return &ast.SuperExpr{ExprBase: p.exprBase(start), Method: name, Args: args, IgnoreResult: ignoring}
}

// parseNewExpr parses `new ClassName(args)`, optionally followed by the
// `{ field = value, ... }` object-literal sugar for setting fields right
// after construction.
func (p *Parser) parseNewExpr() ast.Expr {
	start := p.advance().Span.Start // 'new'
	nameTok := p.expect(token.IDENT, "new expression")
	callee := &ast.VariableExpr{ExprBase: p.exprBase(start), Name: nameTok.Lexeme}

	var args []ast.Expr
	if p.match(token.LPAREN) {
		args = p.parseArgs()
		p.expect(token.RPAREN, "constructor arguments")
	}
	call := &ast.CallExpr{ExprBase: p.exprBase(start), Callee: callee, Args: args}
	if p.check(token.LBRACE) {
		if obj, ok := p.parseObjectLiteral().(*ast.ObjectExpr); ok {
			call.ObjectLiteral = obj
		}
	}
	return call
}

// parseArgs parses a comma-separated argument list up to (but not
// including) the closing ')'.
func (p *Parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	p.skipNewlines()
	for !p.check(token.RPAREN) && !p.check(token.EOF) {
		args = append(args, p.parseExpr(PrecAssignment))
		p.skipNewlines()
		if !p.match(token.COMMA) {
			break
		}
		p.skipNewlines()
	}
	if len(args) > maxArguments {
		p.errorAtCur(diag.ErrTooManyArguments, "call has more than %d arguments", maxArguments)
	}
	return args
}

func (p *Parser) parseCallTail(callee ast.Expr, start span.Position) ast.Expr {
	p.advance() // '('
	args := p.parseArgs()
	p.expect(token.RPAREN, "call arguments")
	return &ast.CallExpr{ExprBase: p.exprBase(start), Callee: callee, Args: args}
}

// lambdaAhead looks past a balanced '(' ... ')' from the current LPAREN to
// see whether it is immediately followed by '=>' or '{', which marks it as
// a lambda parameter list rather than a parenthesized grouping expression.
// The "rewind" this disambiguation needs is just resetting a token index,
// since the whole file's tokens are already in hand (see Parser.New's doc
// comment).
func (p *Parser) lambdaAhead() bool {
	depth := 0
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				if i+1 < len(p.tokens) {
					next := p.tokens[i+1].Kind
					return next == token.FAT_ARROW || next == token.LBRACE
				}
				return false
			}
		case token.EOF, token.NEWLINE:
			if depth == 0 {
				return false
			}
		}
	}
	return false
}

func (p *Parser) parseGroupingOrLambda() ast.Expr {
	start := p.cur().Span.Start
	if p.lambdaAhead() {
		params := p.parseParamList()
		return p.finishLambda(start, params)
	}
	p.advance() // '('
	p.skipNewlines()
	expr := p.parseExpr(PrecAssignment)
	p.skipNewlines()
	p.expect(token.RPAREN, "grouping expression")
	return expr
}

func (p *Parser) parseFunctionLambda() ast.Expr {
	start := p.advance().Span.Start // 'function'
	params := p.parseParamList()
	return p.finishLambda(start, params)
}

func (p *Parser) finishLambda(start span.Position, params []ast.Parameter) ast.Expr {
	p.frames.Push(frameLambda)
	defer p.frames.Pop()

	var body ast.Stmt
	if p.match(token.FAT_ARROW) {
		bodyStart := p.cur().Span.Start
		value := p.parseExpr(PrecAssignment)
		body = &ast.ExpressionStmt{StmtBase: p.stmtBase(bodyStart), Expr: value, Pop: false}
	} else {
		body = p.parseBlock()
	}
	return &ast.LambdaExpr{ExprBase: p.exprBase(start), Params: params, Body: body}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.advance().Span.Start // '['
	p.skipNewlines()
	var elements []ast.Expr
	for !p.check(token.RBRACKET) && !p.check(token.EOF) {
		elements = append(elements, p.parseExpr(PrecAssignment))
		p.skipNewlines()
		if !p.match(token.COMMA) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACKET, "array literal")
	return &ast.ArrayExpr{ExprBase: p.exprBase(start), Elements: elements}
}

// parseObjectLiteral parses `{ key = value, ... }`. Keys are bare
// identifiers only, matching the construction-sugar grammar used by
// `new Foo(...) { key = value }`.
func (p *Parser) parseObjectLiteral() ast.Expr {
	start := p.advance().Span.Start // '{'
	p.skipNewlines()
	var keys []string
	var values []ast.Expr
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		key := p.expect(token.IDENT, "object literal key").Lexeme
		p.expect(token.ASSIGN, "object literal")
		p.skipNewlines()
		value := p.parseExpr(PrecAssignment)
		keys = append(keys, key)
		values = append(values, value)
		p.skipNewlines()
		if !p.match(token.COMMA) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACE, "object literal")
	return &ast.ObjectExpr{ExprBase: p.exprBase(start), Keys: keys, Values: values}
}
