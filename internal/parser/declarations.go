package parser

import (
	"lit-front/internal/ast"
	"lit-front/internal/diag"
	"lit-front/internal/span"
	"lit-front/internal/token"
)

// parseDeclaration dispatches the declaration-level forms: class,
// function, export, var/const, or falls through to a plain statement.
// Declarations and statements share one Stmt-returning entry point
// because both can appear at top level and inside a block.
func (p *Parser) parseDeclaration() ast.Stmt {
	defer func() {
		if p.panic {
			p.synchronize()
		}
	}()

	switch p.cur().Kind {
	case token.KW_CLASS:
		return p.parseClassDecl()
	case token.KW_EXPORT:
		start := p.advance().Span.Start
		fn := p.parseFunctionDecl(start)
		fn.Exported = true
		return fn
	case token.KW_FUNCTION:
		return p.parseFunctionDecl(p.cur().Span.Start)
	case token.KW_VAR, token.KW_CONST:
		return p.parseVarDecl()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseVarDecl() ast.Stmt {
	start := p.cur().Span.Start
	constant := p.advance().Kind == token.KW_CONST // consumes var/const
	name := p.expect(token.IDENT, "variable declaration").Lexeme

	var init ast.Expr
	if p.match(token.ASSIGN) {
		init = p.parseExpr(PrecAssignment)
	}
	p.expectStmtEnd()
	return &ast.VarDeclStmt{
		StmtBase: p.stmtBase(start),
		Name:     name,
		Constant: constant,
		Init:     init,
	}
}

func (p *Parser) parseFunctionDecl(start span.Position) *ast.FunctionDecl {
	p.advance() // 'function'
	if p.check(token.KW_OPERATOR) {
		// Top-level `function operator` makes no sense outside a class;
		// record it and recover by parsing it as a normal named function
		// so the rest of the file still parses.
		p.errorAtCur(diag.ErrExpectationUnmet, "operator declarations are only valid inside a class")
	}
	name := p.expect(token.IDENT, "function declaration").Lexeme
	p.frames.Push(frameFunction)
	params := p.parseParamList()
	body := p.parseBlock()
	p.frames.Pop()
	return &ast.FunctionDecl{
		StmtBase: p.stmtBase(start),
		Name:     name,
		Params:   params,
		Body:     body,
	}
}

// parseParamList parses `(a, b = default, ...rest)`. A default-valued
// parameter may not precede a non-default one, and the variadic `...name`
// form (if present) must be last.
func (p *Parser) parseParamList() []ast.Parameter {
	p.expect(token.LPAREN, "parameter list")
	var params []ast.Parameter
	seenDefault := false
	for !p.check(token.RPAREN) && !p.check(token.EOF) {
		if p.match(token.DOT_DOT_DOT) {
			name := p.expect(token.IDENT, "variadic parameter").Lexeme
			params = append(params, ast.Parameter{Name: name, Variadic: true})
			break
		}
		name := p.expect(token.IDENT, "parameter").Lexeme
		var def ast.Expr
		if p.match(token.ASSIGN) {
			def = p.parseExpr(PrecAssignment)
			seenDefault = true
		} else if seenDefault {
			p.errorAtCur(diag.ErrDefaultArgNotTrailing, "a required parameter cannot follow a default-valued one")
		}
		params = append(params, ast.Parameter{Name: name, Default: def})
		if !p.match(token.COMMA) {
			break
		}
		p.skipNewlines()
	}
	if len(params) > maxArguments {
		p.errorAtCur(diag.ErrTooManyArguments, "function has more than %d parameters", maxArguments)
	}
	p.expect(token.RPAREN, "parameter list")
	return params
}
