package parser

import (
	"lit-front/internal/ast"
	"lit-front/internal/diag"
	"lit-front/internal/span"
	"lit-front/internal/token"
)

// operatorSpellings is the fixed set of tokens a `function operator X(...)`
// overload may name: the arithmetic, comparison, and bitwise operators,
// plus the special `[]` subscript spelling for overloading indexing.
var operatorSpellings = map[token.Kind]string{
	token.PLUS:      "+",
	token.MINUS:     "-",
	token.STAR:      "*",
	token.SLASH:     "/",
	token.PERCENT:   "%",
	token.SHARP:     "#",
	token.STAR_STAR: "**",
	token.AMP:       "&",
	token.PIPE:      "|",
	token.CARET:     "^",
	token.TILDE:     "~",
	token.SHL:       "<<",
	token.SHR:       ">>",
	token.EQ:        "==",
	token.NEQ:       "!=",
	token.LT:        "<",
	token.LTE:       "<=",
	token.GT:        ">",
	token.GTE:       ">=",
	token.LBRACKET:  "[]",
}

func (p *Parser) parseClassDecl() ast.Stmt {
	start := p.advance().Span.Start // 'class'
	name := p.expect(token.IDENT, "class declaration").Lexeme

	var parent string
	if p.match(token.COLON) {
		parentTok := p.expect(token.IDENT, "parent class")
		parent = parentTok.Lexeme
		if parent == name {
			p.errorAt(parentTok.Span, diag.ErrClassInheritsSelf, "class %q cannot inherit from itself", name)
		}
	}

	p.expect(token.LBRACE, "class body")
	p.skipNewlines()

	var methods []*ast.MethodDecl
	var fields []*ast.FieldDecl
	sawMethod := false

	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		static := p.match(token.KW_STATIC)

		switch {
		case static && (p.check(token.KW_VAR) || p.check(token.KW_CONST)):
			fd := p.parseStaticVarField()
			if sawMethod {
				p.errorAt(fd.Span, diag.ErrStaticFieldOrder, "static fields must be declared before methods")
			}
			fields = append(fields, fd)
		case p.check(token.KW_FUNCTION):
			md, fd := p.parseFunctionMember(static)
			if md != nil {
				if md.IsStatic && md.Operator != "" {
					p.errorAt(md.Span, diag.ErrStaticOperator, "operator methods cannot be static")
				}
				methods = append(methods, md)
				sawMethod = true
			} else {
				if static && sawMethod {
					p.errorAt(fd.Span, diag.ErrStaticFieldOrder, "static fields must be declared before methods")
				}
				fields = append(fields, fd)
			}
		default:
			p.errorAtCur(diag.ErrExpectationUnmet, "expected a method or field declaration, found %s", p.cur().Kind)
			p.advance()
		}
		p.skipNewlines()
	}
	p.expect(token.RBRACE, "class body")

	return &ast.ClassDecl{
		StmtBase: p.stmtBase(start),
		Name:     name,
		Parent:   parent,
		Methods:  methods,
		Fields:   fields,
	}
}

// parseStaticVarField parses `static var name [= init]` (or `const`), the
// only plain data-field form the grammar allows. The caller has already
// consumed the leading `static`.
func (p *Parser) parseStaticVarField() *ast.FieldDecl {
	start := p.cur().Span.Start
	p.advance() // 'var' or 'const'
	name := p.expect(token.IDENT, "field declaration").Lexeme
	var init ast.Expr
	if p.match(token.ASSIGN) {
		init = p.parseExpr(PrecAssignment)
	}
	p.expectStmtEnd()
	return &ast.FieldDecl{StmtBase: p.stmtBase(start), Name: name, IsStatic: true, Init: init}
}

// parseFunctionMember parses a `function` class member: an operator
// overload or named method, unless the name is immediately followed by
// '{' or '=>', in which case it is a field declared via the getter/setter
// grammar (parseFieldBody). Returns either a non-nil MethodDecl or a
// non-nil FieldDecl, never both.
func (p *Parser) parseFunctionMember(static bool) (*ast.MethodDecl, *ast.FieldDecl) {
	start := p.advance().Span.Start // 'function'

	if p.match(token.KW_OPERATOR) {
		opTok := p.advance()
		spelling, ok := operatorSpellings[opTok.Kind]
		if !ok {
			p.errorAt(opTok.Span, diag.ErrExpectationUnmet, "%s is not an overloadable operator", opTok.Kind)
			spelling = opTok.Lexeme
		}
		if opTok.Kind == token.LBRACKET {
			p.expect(token.RBRACKET, "']' in operator method declaration")
		}
		name := "operator" + spelling

		p.frames.Push(frameMethod)
		params := p.parseParamList()
		body := p.parseBlock()
		p.frames.Pop()

		return &ast.MethodDecl{
			StmtBase: p.stmtBase(start),
			Name:     name,
			Params:   params,
			Body:     body,
			IsStatic: static,
			Operator: spelling,
		}, nil
	}

	name := p.expect(token.IDENT, "method declaration").Lexeme
	if p.check(token.LBRACE) || p.check(token.FAT_ARROW) {
		return nil, p.parseFieldBody(start, name, static)
	}

	p.frames.Push(frameMethod)
	params := p.parseParamList()
	body := p.parseBlock()
	p.frames.Pop()

	return &ast.MethodDecl{
		StmtBase: p.stmtBase(start),
		Name:     name,
		Params:   params,
		Body:     body,
		IsStatic: static,
	}, nil
}

// parseFieldBody parses the body of a field declared through `function
// name`: either a bare `=> expr` getter shorthand, or a brace body
// containing any combination of `get [=>] stmt` and `set [=>] stmt` (at
// least one of the two required; neither present is ErrNoGetterOrSetter).
// The `=>` after `get`/`set` is optional and, if present, is consumed and
// ignored — the accessor body is parsed the same way either way.
func (p *Parser) parseFieldBody(start span.Position, name string, static bool) *ast.FieldDecl {
	if p.match(token.FAT_ARROW) {
		bodyStart := p.cur().Span.Start
		value := p.parseExpr(PrecAssignment)
		getter := &ast.ExpressionStmt{StmtBase: p.stmtBase(bodyStart), Expr: value, Pop: false}
		return &ast.FieldDecl{StmtBase: p.stmtBase(start), Name: name, IsStatic: static, Getter: getter}
	}

	p.expect(token.LBRACE, "field declaration")
	p.skipNewlines()

	var getter, setter ast.Stmt
	if p.match(token.KW_GET) {
		p.match(token.FAT_ARROW) // ignored if present
		getter = p.parseStatement()
	}
	p.skipNewlines()
	if p.match(token.KW_SET) {
		p.match(token.FAT_ARROW) // ignored if present
		setter = p.parseStatement()
	}
	if getter == nil && setter == nil {
		p.errorAtCur(diag.ErrNoGetterOrSetter, "field %q declares neither a getter nor a setter", name)
	}
	p.skipNewlines()
	p.expect(token.RBRACE, "field declaration")

	return &ast.FieldDecl{StmtBase: p.stmtBase(start), Name: name, IsStatic: static, Getter: getter, Setter: setter}
}
