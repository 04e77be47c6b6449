// Package parser implements a Pratt (precedence-climbing) recursive
// descent parser over the token stream produced by internal/lexer,
// producing an internal/ast tree plus diagnostics: navigation helpers,
// panic-mode error recovery via synchronize(), and a statement/declaration
// dispatch table driving a full expression precedence ladder.
package parser

import (
	"lit-front/internal/ast"
	"lit-front/internal/compileframe"
	"lit-front/internal/diag"
	"lit-front/internal/host"
	"lit-front/internal/lexer"
	"lit-front/internal/span"
	"lit-front/internal/token"
)

// Parser holds the token stream and parsing state.
type Parser struct {
	lex    *lexer.Lexer
	tokens []token.Token
	pos    int

	diags    []diag.Diagnostic
	panic    bool
	frames   *compileframe.Stack
	interner *host.Interner
}

// New creates a Parser over the full token stream produced by lexing
// source. Tokenizing up front (rather than lazily pulling from the
// lexer) keeps the grouping-vs-lambda rewind logic simple: rewinding is
// just resetting an index into a slice already in hand, so no scanner
// checkpoint is used (interpolation holes are resolved entirely by the
// lexer's brace stack during Tokenize).
func New(source, filename string) *Parser {
	lx := lexer.New(source, filename)
	tokens, lexDiags := lx.Tokenize()
	p := &Parser{
		lex:      lx,
		tokens:   tokens,
		diags:    lexDiags,
		frames:   compileframe.New(),
		interner: lx.Interner(),
	}
	return p
}

// ParseFile parses an entire source file into a *ast.File plus the
// accumulated diagnostics (lexical and syntactic).
func ParseFile(source, filename string) (*ast.File, []diag.Diagnostic) {
	p := New(source, filename)
	file := p.parseFile()
	return file, p.diags
}

// ---- token navigation ----

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// skipNewlines consumes any run of NEWLINE tokens, used at points in the
// grammar where blank lines are insignificant (inside parens/brackets,
// before a block's closing brace, etc).
func (p *Parser) skipNewlines() {
	for p.check(token.NEWLINE) {
		p.advance()
	}
}

// expect consumes a token of kind k or records an ErrExpectationUnmet
// diagnostic naming what was expected.
func (p *Parser) expect(k token.Kind, context string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAtCur(diag.ErrExpectationUnmet, "expected %s in %s, found %s", k, context, p.cur().Kind)
	return p.cur()
}

// expectStmtEnd consumes the NEWLINE or ';' that terminates a statement.
// A stray ';' directly followed by NEWLINE is tolerated as a single
// terminator, for users with C-style habits, rather than being treated as
// an empty statement.
func (p *Parser) expectStmtEnd() {
	if p.match(token.SEMICOLON) {
		p.match(token.NEWLINE)
		return
	}
	if p.match(token.NEWLINE) || p.check(token.EOF) || p.check(token.RBRACE) {
		return
	}
	p.errorAtCur(diag.ErrExpectationUnmet, "expected end of statement, found %s", p.cur().Kind)
}

// ---- error reporting & recovery ----

func (p *Parser) errorAt(s span.Span, code, format string, args ...interface{}) {
	if p.panic {
		return
	}
	p.panic = true
	p.diags = append(p.diags, diag.Errorf(code, s, format, args...))
}

func (p *Parser) errorAtCur(code, format string, args ...interface{}) {
	p.errorAt(p.cur().Span, code, format, args...)
}

// synchronize discards tokens until a likely declaration/statement
// boundary, so one error does not cascade into dozens.
func (p *Parser) synchronize() {
	p.panic = false
	for !p.check(token.EOF) {
		if p.cur().Kind == token.NEWLINE || p.cur().Kind == token.SEMICOLON {
			p.advance()
			return
		}
		switch p.cur().Kind {
		case token.KW_CLASS, token.KW_FUNCTION, token.KW_EXPORT, token.KW_VAR,
			token.KW_CONST, token.KW_FOR, token.KW_STATIC, token.KW_IF,
			token.KW_WHILE, token.KW_RETURN:
			return
		}
		p.advance()
	}
}

// ---- top level ----

func (p *Parser) parseFile() *ast.File {
	start := p.cur().Span.Start
	var body []ast.Stmt
	p.skipNewlines()
	for !p.check(token.EOF) {
		body = append(body, p.parseDeclaration())
		p.skipNewlines()
	}
	end := p.cur().Span.End
	return &ast.File{NodeBase: ast.NodeBase{Span: span.Span{Start: start, End: end}}, Body: body}
}
