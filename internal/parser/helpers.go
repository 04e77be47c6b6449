package parser

import (
	"lit-front/internal/ast"
	"lit-front/internal/compileframe"
	"lit-front/internal/span"
)

const (
	frameFunction = compileframe.Function
	frameLambda   = compileframe.Lambda
	frameMethod   = compileframe.Method
)

// spanFrom builds a span from a previously recorded start position to the
// end of the token just consumed (i.e. the current position before the
// next token starts), used when closing off a node whose start was saved
// before parsing its body.
func (p *Parser) spanFrom(start span.Position) span.Span {
	end := p.prevEnd()
	return span.Span{Start: start, End: end}
}

// prevEnd returns the end position of the most recently consumed token.
func (p *Parser) prevEnd() span.Position {
	if p.pos == 0 {
		return p.tokens[0].Span.Start
	}
	return p.tokens[p.pos-1].Span.End
}

func (p *Parser) stmtBase(start span.Position) ast.StmtBase {
	return ast.StmtBase{NodeBase: ast.NodeBase{Span: p.spanFrom(start)}}
}

func (p *Parser) exprBase(start span.Position) ast.ExprBase {
	return ast.ExprBase{NodeBase: ast.NodeBase{Span: p.spanFrom(start)}}
}
