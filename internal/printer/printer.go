// Package printer renders an internal/ast tree back to source text,
// walking every node variant the same way internal/ast/json.go's
// NodeToMap does, but producing source text instead of a JSON-able map.
// Used by `cmd/litfront parse --text` and by the round-trip property test
// (print, reparse, compare ASTs).
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"lit-front/internal/ast"
	"lit-front/internal/host"
)

const indentUnit = "    "

// Print renders any node: a whole file, a single statement, or a single
// expression.
func Print(node ast.Node) string {
	switch n := node.(type) {
	case *ast.File:
		return printStmts(n.Body, 0)
	case ast.Stmt:
		return printStmt(n, 0)
	case ast.Expr:
		return printExpr(n)
	default:
		return ""
	}
}

func ind(depth int) string { return strings.Repeat(indentUnit, depth) }

func printStmts(stmts []ast.Stmt, depth int) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(printStmt(s, depth))
		b.WriteString("\n")
	}
	return b.String()
}

func printStmt(s ast.Stmt, depth int) string {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		return ind(depth) + printExpr(n.Expr)
	case *ast.BlockStmt:
		var b strings.Builder
		b.WriteString(ind(depth) + "{\n")
		for _, st := range n.Stmts {
			b.WriteString(printStmt(st, depth+1))
			b.WriteString("\n")
		}
		b.WriteString(ind(depth) + "}")
		return b.String()
	case *ast.IfStmt:
		var b strings.Builder
		b.WriteString(ind(depth) + "if " + printExpr(n.Condition) + "\n")
		b.WriteString(printStmt(n.Body, depth))
		for _, ei := range n.ElseIfs {
			b.WriteString("\n" + ind(depth) + "else if " + printExpr(ei.Condition) + "\n")
			b.WriteString(printStmt(ei.Body, depth))
		}
		if n.ElseBody != nil {
			b.WriteString("\n" + ind(depth) + "else\n")
			b.WriteString(printStmt(n.ElseBody, depth))
		}
		return b.String()
	case *ast.WhileStmt:
		return ind(depth) + "while " + printExpr(n.Condition) + "\n" + printStmt(n.Body, depth)
	case *ast.ForStmt:
		if n.CStyle {
			initStr, condStr, updateStr := "", "", ""
			if n.Init != nil {
				initStr = printForClause(n.Init)
			}
			if n.Condition != nil {
				condStr = printExpr(n.Condition)
			}
			if n.Update != nil {
				updateStr = printExpr(n.Update)
			}
			header := fmt.Sprintf("for (%s; %s; %s)", initStr, condStr, updateStr)
			return ind(depth) + header + "\n" + printStmt(n.Body, depth)
		}
		header := fmt.Sprintf("for (var %s in %s)", n.VarName, printExpr(n.Iterable))
		return ind(depth) + header + "\n" + printStmt(n.Body, depth)
	case *ast.VarDeclStmt:
		return ind(depth) + varDeclCore(n)
	case *ast.ReturnStmt:
		if n.Value != nil {
			return ind(depth) + "return " + printExpr(n.Value)
		}
		return ind(depth) + "return"
	case *ast.BreakStmt:
		return ind(depth) + "break"
	case *ast.ContinueStmt:
		return ind(depth) + "continue"
	case *ast.FunctionDecl:
		prefix := ""
		if n.Exported {
			prefix = "export "
		}
		header := prefix + "function " + n.Name + paramsStr(n.Params)
		return ind(depth) + header + " " + strings.TrimPrefix(printStmt(n.Body, depth), ind(depth))
	case *ast.ClassDecl:
		var b strings.Builder
		header := "class " + n.Name
		if n.Parent != "" {
			header += " : " + n.Parent
		}
		b.WriteString(ind(depth) + header + " {\n")
		for _, fd := range n.Fields {
			b.WriteString(printField(fd, depth+1))
			b.WriteString("\n")
		}
		for _, md := range n.Methods {
			b.WriteString(printMethod(md, depth+1))
			b.WriteString("\n")
		}
		b.WriteString(ind(depth) + "}")
		return b.String()
	default:
		return ind(depth)
	}
}

// printForClause renders a for-loop's init clause (a var/const declaration
// or a bare expression) without indentation, since it sits inline between
// '(' and ';' in the header.
func printForClause(s ast.Stmt) string {
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		return varDeclCore(n)
	case *ast.ExpressionStmt:
		return printExpr(n.Expr)
	default:
		return ""
	}
}

func varDeclCore(n *ast.VarDeclStmt) string {
	kw := "var"
	if n.Constant {
		kw = "const"
	}
	if n.Init != nil {
		return kw + " " + n.Name + " = " + printExpr(n.Init)
	}
	return kw + " " + n.Name
}

func printMethod(md *ast.MethodDecl, depth int) string {
	name := md.Name
	if md.Operator != "" {
		name = "operator " + md.Operator
	}
	prefix := ""
	if md.IsStatic {
		prefix = "static "
	}
	header := prefix + "function " + name + paramsStr(md.Params)
	return ind(depth) + header + " " + strings.TrimPrefix(printStmt(md.Body, depth), ind(depth))
}

// printField renders a FieldDecl. The `static var` data-field form prints
// as a plain var declaration; the getter/setter form prints as a
// `function name { ... }` body, with a bare `=> expr` getter (no setter)
// rendered as the shorthand single-expression form.
func printField(fd *ast.FieldDecl, depth int) string {
	prefix := ""
	if fd.IsStatic {
		prefix = "static "
	}
	if fd.Getter == nil && fd.Setter == nil {
		if fd.Init != nil {
			return ind(depth) + prefix + "var " + fd.Name + " = " + printExpr(fd.Init)
		}
		return ind(depth) + prefix + "var " + fd.Name
	}
	if fd.Setter == nil {
		if es, ok := fd.Getter.(*ast.ExpressionStmt); ok {
			return ind(depth) + prefix + "function " + fd.Name + " => " + printExpr(es.Expr)
		}
	}
	var b strings.Builder
	b.WriteString(ind(depth) + prefix + "function " + fd.Name + " {\n")
	if fd.Getter != nil {
		b.WriteString(printAccessor(depth+1, "get", fd.Getter))
	}
	if fd.Setter != nil {
		b.WriteString(printAccessor(depth+1, "set", fd.Setter))
	}
	b.WriteString(ind(depth) + "}")
	return b.String()
}

func printAccessor(depth int, keyword string, body ast.Stmt) string {
	if es, ok := body.(*ast.ExpressionStmt); ok && !es.Pop {
		return ind(depth) + keyword + " => " + printExpr(es.Expr) + "\n"
	}
	return ind(depth) + keyword + " " + strings.TrimPrefix(printStmt(body, depth), ind(depth)) + "\n"
}

func paramsStr(params []ast.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		s := p.Name
		if p.Variadic {
			s = "..." + s
		}
		if p.Default != nil {
			s += " = " + printExpr(p.Default)
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func printExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return printLiteral(n.Value)
	case *ast.VariableExpr:
		return n.Name
	case *ast.ThisExpr:
		return "this"
	case *ast.SuperExpr:
		if n.Method != "" {
			return "super." + n.Method + "(" + joinExprs(n.Args) + ")"
		}
		return "super(" + joinExprs(n.Args) + ")"
	case *ast.UnaryExpr:
		return n.Op.String() + printExpr(n.Operand)
	case *ast.BinaryExpr:
		return printExpr(n.Left) + " " + n.Op.String() + " " + printExpr(n.Right)
	case *ast.AssignExpr:
		return printExpr(n.Target) + " = " + printExpr(n.Value)
	case *ast.CallExpr:
		s := printExpr(n.Callee) + "(" + joinExprs(n.Args) + ")"
		if n.ObjectLiteral != nil {
			s += " " + printExpr(n.ObjectLiteral)
		}
		return s
	case *ast.GetExpr:
		return printExpr(n.Object) + "." + n.Name
	case *ast.SetExpr:
		return printExpr(n.Object) + "." + n.Name + " = " + printExpr(n.Value)
	case *ast.SubscriptExpr:
		return printExpr(n.Object) + "[" + printExpr(n.Index) + "]"
	case *ast.LambdaExpr:
		if es, ok := n.Body.(*ast.ExpressionStmt); ok {
			return "function" + paramsStr(n.Params) + " => " + printExpr(es.Expr)
		}
		return "function" + paramsStr(n.Params) + " " + printStmt(n.Body, 0)
	case *ast.ArrayExpr:
		return "[" + joinExprs(n.Elements) + "]"
	case *ast.ObjectExpr:
		parts := make([]string, len(n.Keys))
		for i, k := range n.Keys {
			parts[i] = k + " = " + printExpr(n.Values[i])
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case *ast.RangeExpr:
		op := ".."
		if n.Inclusive {
			op = "..."
		}
		return printExpr(n.From) + op + printExpr(n.To)
	case *ast.InterpolationExpr:
		var b strings.Builder
		b.WriteString(`$"`)
		for i, part := range n.Parts {
			b.WriteString(part)
			if i < len(n.Exprs) {
				b.WriteString("{" + printExpr(n.Exprs[i]) + "}")
			}
		}
		b.WriteString(`"`)
		return b.String()
	case *ast.ReferenceExpr:
		return "ref " + printExpr(n.Target)
	case *ast.TernaryExpr:
		return printExpr(n.Condition) + " ? " + printExpr(n.Then) + " : " + printExpr(n.Else)
	default:
		return ""
	}
}

func printLiteral(v host.Value) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case host.String:
		return strconv.Quote(val.Value)
	default:
		return v.String()
	}
}

func joinExprs(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = printExpr(e)
	}
	return strings.Join(parts, ", ")
}
