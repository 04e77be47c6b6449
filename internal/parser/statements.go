package parser

import (
	"lit-front/internal/ast"
	"lit-front/internal/diag"
	"lit-front/internal/token"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur().Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.KW_IF:
		return p.parseIfStmt()
	case token.KW_WHILE:
		return p.parseWhileStmt()
	case token.KW_FOR:
		return p.parseForStmt()
	case token.KW_RETURN:
		return p.parseReturnStmt()
	case token.KW_BREAK:
		return p.parseBreakStmt()
	case token.KW_CONTINUE:
		return p.parseContinueStmt()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.expect(token.LBRACE, "block").Span.Start
	p.frames.BeginScope()
	p.skipNewlines()
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmts = append(stmts, p.parseDeclaration())
		p.skipNewlines()
	}
	p.expect(token.RBRACE, "block")
	p.frames.EndScope()
	return &ast.BlockStmt{StmtBase: p.stmtBase(start), Stmts: stmts}
}

// parseCondition parses an optionally-parenthesized, optionally-negated
// condition expression: `if cond`, `if (cond)`, `if !cond`, `if !(cond)`
// are all accepted — a leading '!' inversion applies independently of
// whether the condition is parenthesized.
func (p *Parser) parseCondition() ast.Expr {
	negate := p.match(token.BANG)
	hadParen := p.match(token.LPAREN)
	cond := p.parseExpr(PrecAssignment)
	if hadParen {
		p.expect(token.RPAREN, "condition")
	}
	if negate {
		cond = &ast.UnaryExpr{ExprBase: p.exprBase(cond.GetSpan().Start), Op: token.BANG, Operand: cond}
	}
	return cond
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.advance().Span.Start // 'if'
	cond := p.parseCondition()
	p.skipNewlines()
	body := p.parseBlock()

	var elseIfs []ast.ElseIfClause
	var elseBody *ast.BlockStmt
	sawElse := false
	for {
		save := p.pos
		p.skipNewlines()
		if !p.check(token.KW_ELSE) {
			p.pos = save
			break
		}
		p.advance() // 'else'
		if p.check(token.KW_IF) {
			eiStart := p.advance().Span.Start
			eiCond := p.parseCondition()
			p.skipNewlines()
			eiBody := p.parseBlock()
			elseIfs = append(elseIfs, ast.ElseIfClause{
				Span:      p.spanFrom(eiStart),
				Condition: eiCond,
				Body:      eiBody,
			})
			continue
		}
		if sawElse {
			p.errorAtCur(diag.ErrMultipleElseBranches, "an if statement may have only one else branch")
		}
		sawElse = true
		p.skipNewlines()
		elseBody = p.parseBlock()
	}

	return &ast.IfStmt{
		StmtBase:  p.stmtBase(start),
		Condition: cond,
		Body:      body,
		ElseIfs:   elseIfs,
		ElseBody:  elseBody,
	}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.advance().Span.Start // 'while'
	cond := p.parseCondition()
	p.skipNewlines()
	body := p.parseBlock()
	return &ast.WhileStmt{StmtBase: p.stmtBase(start), Condition: cond, Body: body}
}

// parseForStmt disambiguates C-style `for (init; cond; update)` from
// for-in `for (var x in iterable)` the way the clause is actually parsed:
// an optional `var`/`const` declaration or a bare expression is read once,
// and only then does a following `in` decide which loop shape it was. A
// bare-expression init immediately followed by `in` (no `var`) is a
// for-in loop missing its required variable declaration.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.advance().Span.Start // 'for'
	hadParen := p.match(token.LPAREN)

	var varDecl *ast.VarDeclStmt
	var exprInit ast.Expr
	if !p.check(token.SEMICOLON) {
		if p.check(token.KW_VAR) || p.check(token.KW_CONST) {
			varDecl = p.parseForVarDecl()
		} else {
			exprInit = p.parseExpr(PrecAssignment)
		}
	}

	if p.match(token.KW_IN) {
		if varDecl == nil {
			p.errorAtCur(diag.ErrMissingForInVar, "a for-in loop requires a 'var' declaration")
		}
		iterable := p.parseExpr(PrecAssignment)
		if hadParen {
			p.expect(token.RPAREN, "for-in clause")
		}
		p.skipNewlines()
		body := p.parseBlock()
		var name string
		if varDecl != nil {
			name = varDecl.Name
		}
		return &ast.ForStmt{
			StmtBase: p.stmtBase(start),
			CStyle:   false,
			VarName:  name,
			Iterable: iterable,
			Body:     body,
		}
	}

	var init ast.Stmt
	switch {
	case varDecl != nil:
		init = varDecl
	case exprInit != nil:
		init = &ast.ExpressionStmt{StmtBase: p.stmtBase(exprInit.GetSpan().Start), Expr: exprInit, Pop: true}
	}
	p.expect(token.SEMICOLON, "for clause")

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpr(PrecAssignment)
	}
	p.expect(token.SEMICOLON, "for clause")

	var update ast.Expr
	if !p.check(token.RPAREN) && !p.check(token.LBRACE) {
		update = p.parseExpr(PrecAssignment)
	}
	if hadParen {
		p.expect(token.RPAREN, "for clause")
	}
	p.skipNewlines()
	body := p.parseBlock()

	return &ast.ForStmt{
		StmtBase:  p.stmtBase(start),
		CStyle:    true,
		Init:      init,
		Condition: cond,
		Update:    update,
		Body:      body,
	}
}

// parseForVarDecl parses `var name [= init]` inside a for-clause header
// without consuming a statement terminator: the caller still needs to
// decide whether what follows is 'in' (for-in) or ';' (C-style).
func (p *Parser) parseForVarDecl() *ast.VarDeclStmt {
	start := p.cur().Span.Start
	constant := p.advance().Kind == token.KW_CONST // consumes var/const
	name := p.expect(token.IDENT, "variable declaration").Lexeme
	var init ast.Expr
	if p.match(token.ASSIGN) {
		init = p.parseExpr(PrecAssignment)
	}
	return &ast.VarDeclStmt{StmtBase: p.stmtBase(start), Name: name, Constant: constant, Init: init}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.advance().Span.Start // 'return'
	var value ast.Expr
	if !p.check(token.NEWLINE) && !p.check(token.SEMICOLON) && !p.check(token.RBRACE) && !p.check(token.EOF) {
		value = p.parseExpr(PrecAssignment)
	}
	p.expectStmtEnd()
	return &ast.ReturnStmt{StmtBase: p.stmtBase(start), Value: value}
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	start := p.advance().Span.Start
	p.expectStmtEnd()
	return &ast.BreakStmt{StmtBase: p.stmtBase(start)}
}

func (p *Parser) parseContinueStmt() ast.Stmt {
	start := p.advance().Span.Start
	p.expectStmtEnd()
	return &ast.ContinueStmt{StmtBase: p.stmtBase(start)}
}

func (p *Parser) parseExpressionStmt() ast.Stmt {
	start := p.cur().Span.Start
	expr := p.parseExpr(PrecAssignment)
	p.expectStmtEnd()
	return &ast.ExpressionStmt{StmtBase: p.stmtBase(start), Expr: expr, Pop: true}
}
