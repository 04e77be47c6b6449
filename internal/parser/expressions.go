package parser

import (
	"lit-front/internal/ast"
	"lit-front/internal/diag"
	"lit-front/internal/host"
	"lit-front/internal/span"
	"lit-front/internal/token"
)

// compoundOps maps a compound-assignment token to the binary operator it
// desugars to: `x += y` becomes `x = x + y` (with the left operand's
// IgnoreLeft flag set, per ast.BinaryExpr's doc comment).
var compoundOps = map[token.Kind]token.Kind{
	token.PLUS_ASSIGN:    token.PLUS,
	token.MINUS_ASSIGN:   token.MINUS,
	token.STAR_ASSIGN:    token.STAR,
	token.SLASH_ASSIGN:   token.SLASH,
	token.PERCENT_ASSIGN: token.PERCENT,
	token.SHARP_ASSIGN:   token.SHARP,
	token.AMP_ASSIGN:     token.AMP,
	token.PIPE_ASSIGN:    token.PIPE,
	token.CARET_ASSIGN:   token.CARET,
}

// parseExpr is the Pratt driver: parse one prefix expression, then keep
// folding in infix operators whose precedence is at least prec.
func (p *Parser) parseExpr(prec Precedence) ast.Expr {
	left := p.parsePrefix()
	for {
		rule, ok := infixRules[p.cur().Kind]
		if !ok || rule.precedence < prec {
			break
		}
		left = p.parseInfix(left)
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expr {
	start := p.cur().Span.Start
	tk := p.cur()

	switch tk.Kind {
	case token.NUMBER, token.STRING:
		p.advance()
		return &ast.LiteralExpr{ExprBase: p.exprBase(start), Value: tk.Value}
	case token.KW_TRUE, token.KW_FALSE, token.KW_NULL:
		p.advance()
		return &ast.LiteralExpr{ExprBase: p.exprBase(start), Value: tk.Value}
	case token.INTERPOLATION:
		return p.parseInterpolation()
	case token.IDENT:
		p.advance()
		return &ast.VariableExpr{ExprBase: p.exprBase(start), Name: tk.Lexeme}
	case token.KW_THIS:
		p.advance()
		return &ast.ThisExpr{ExprBase: p.exprBase(start)}
	case token.KW_SUPER:
		return p.parseSuper()
	case token.KW_NEW:
		return p.parseNewExpr()
	case token.KW_REF:
		p.advance()
		target := p.parseExpr(PrecUnary)
		return &ast.ReferenceExpr{ExprBase: p.exprBase(start), Target: target}
	case token.BANG, token.MINUS, token.TILDE:
		p.advance()
		operand := p.parseExpr(PrecUnary)
		return &ast.UnaryExpr{ExprBase: p.exprBase(start), Op: tk.Kind, Operand: operand}
	case token.PLUS_PLUS, token.MINUS_MINUS:
		p.advance()
		operand := p.parseExpr(PrecUnary)
		return &ast.UnaryExpr{ExprBase: p.exprBase(start), Op: tk.Kind, Operand: operand}
	case token.LPAREN:
		return p.parseGroupingOrLambda()
	case token.KW_FUNCTION:
		return p.parseFunctionLambda()
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	default:
		p.errorAtCur(diag.ErrExpectedExpression, "expected an expression, found %s", tk.Kind)
		p.advance()
		return &ast.LiteralExpr{ExprBase: p.exprBase(start), Value: nil}
	}
}

func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	tk := p.cur()
	start := left.GetSpan().Start

	switch tk.Kind {
	case token.ASSIGN:
		p.advance()
		value := p.parseExpr(PrecAssignment)
		return p.makeAssign(start, left, value)

	case token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN,
		token.PERCENT_ASSIGN, token.SHARP_ASSIGN, token.AMP_ASSIGN, token.PIPE_ASSIGN, token.CARET_ASSIGN:
		p.advance()
		rhs := p.parseExpr(PrecAssignment)
		op := compoundOps[tk.Kind]
		desugared := &ast.BinaryExpr{ExprBase: p.exprBase(start), Op: op, Left: left, Right: rhs, IgnoreLeft: true}
		return p.makeAssign(start, left, desugared)

	case token.PLUS_PLUS, token.MINUS_MINUS:
		p.advance()
		one := &ast.LiteralExpr{ExprBase: p.exprBase(start), Value: intOne()}
		op := token.PLUS
		if tk.Kind == token.MINUS_MINUS {
			op = token.MINUS
		}
		desugared := &ast.BinaryExpr{ExprBase: p.exprBase(start), Op: op, Left: left, Right: one, IgnoreLeft: true}
		return p.makeAssign(start, left, desugared)

	case token.QUESTION:
		p.advance()
		if p.match(token.DOT) {
			name := p.expect(token.IDENT, "member access after '?.'").Lexeme
			return &ast.GetExpr{ExprBase: p.exprBase(start), Object: left, Name: name, Jump: true}
		}
		p.skipNewlines()
		then := p.parseExpr(PrecAssignment)
		p.skipNewlines()
		p.expect(token.COLON, "ternary expression")
		p.skipNewlines()
		els := p.parseExpr(PrecAssignment)
		return &ast.TernaryExpr{ExprBase: p.exprBase(start), Condition: left, Then: then, Else: els}

	case token.QUESTION_QUESTION, token.OR_OR, token.AND_AND,
		token.PIPE, token.AMP, token.CARET, token.SHL, token.SHR,
		token.EQ, token.NEQ, token.LT, token.LTE, token.GT, token.GTE,
		token.KW_IS, token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.PERCENT, token.SHARP, token.STAR_STAR:
		rule := infixRules[tk.Kind]
		p.advance()
		nextPrec := rule.precedence + 1
		if rule.rightAssoc {
			nextPrec = rule.precedence
		}
		right := p.parseExpr(nextPrec)
		return &ast.BinaryExpr{ExprBase: p.exprBase(start), Op: tk.Kind, Left: left, Right: right}

	case token.DOT_DOT, token.DOT_DOT_DOT:
		p.advance()
		to := p.parseExpr(PrecRange + 1)
		return &ast.RangeExpr{ExprBase: p.exprBase(start), From: left, To: to, Inclusive: tk.Kind == token.DOT_DOT_DOT}

	case token.DOT:
		p.advance()
		name := p.expect(token.IDENT, "member access").Lexeme
		return &ast.GetExpr{ExprBase: p.exprBase(start), Object: left, Name: name}

	case token.ARROW:
		p.advance()
		name := p.expect(token.IDENT, "property name after '->'").Lexeme
		return &ast.GetExpr{ExprBase: p.exprBase(start), Object: left, Name: name, IgnoreResult: true}

	case token.LBRACKET:
		p.advance()
		index := p.parseExpr(PrecAssignment)
		p.expect(token.RBRACKET, "subscript")
		return &ast.SubscriptExpr{ExprBase: p.exprBase(start), Object: left, Index: index}

	case token.LPAREN:
		return p.parseCallTail(left, start)

	default:
		p.advance()
		return left
	}
}

// makeAssign validates that target is a legal lvalue (a bare variable, a
// property get, or a subscript). A property get becomes a SetExpr; the
// other two are wrapped in an AssignExpr. Anything else (e.g. assigning
// to a literal or a call result) is ErrInvalidAssignTarget.
func (p *Parser) makeAssign(start span.Position, target ast.Expr, value ast.Expr) ast.Expr {
	switch t := target.(type) {
	case *ast.GetExpr:
		return &ast.SetExpr{ExprBase: p.exprBase(start), Object: t.Object, Name: t.Name, Value: value}
	case *ast.VariableExpr, *ast.SubscriptExpr:
	default:
		p.errorAt(target.GetSpan(), diag.ErrInvalidAssignTarget, "invalid assignment target")
	}
	return &ast.AssignExpr{ExprBase: p.exprBase(start), Target: target, Value: value}
}

func intOne() host.Value {
	return host.Number{Value: 1, IsInt: true}
}
