package ast

import (
	"lit-front/internal/span"
)

// NodeToMap converts an AST node into a map suitable for JSON
// serialization. Every node produces a "kind" field naming its concrete
// Go type, which doubles as the discriminator a tagged-union model would
// otherwise need a stored enum for — the type switch below is that
// discriminator, checked exhaustively by the compiler.
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return m("File", n.Span, "body", stmtSlice(n.Body))

	// ---- Expressions ----
	case *LiteralExpr:
		value := ""
		if n.Value != nil {
			value = n.Value.String()
		}
		return m("LiteralExpr", n.Span, "value", value)
	case *VariableExpr:
		return m("VariableExpr", n.Span, "name", n.Name)
	case *ThisExpr:
		return m("ThisExpr", n.Span)
	case *SuperExpr:
		return m("SuperExpr", n.Span,
			"method", n.Method,
			"args", exprSlice(n.Args),
			"ignoreResult", n.IgnoreResult)
	case *UnaryExpr:
		return m("UnaryExpr", n.Span, "op", n.Op.String(), "operand", NodeToMap(n.Operand))
	case *BinaryExpr:
		return m("BinaryExpr", n.Span,
			"op", n.Op.String(),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right),
			"ignoreLeft", n.IgnoreLeft)
	case *AssignExpr:
		return m("AssignExpr", n.Span,
			"target", NodeToMap(n.Target),
			"value", NodeToMap(n.Value))
	case *CallExpr:
		result := m("CallExpr", n.Span,
			"callee", NodeToMap(n.Callee),
			"args", exprSlice(n.Args))
		if n.ObjectLiteral != nil {
			result["objectLiteral"] = NodeToMap(n.ObjectLiteral)
		}
		return result
	case *GetExpr:
		return m("GetExpr", n.Span,
			"object", NodeToMap(n.Object),
			"name", n.Name,
			"jump", n.Jump,
			"ignoreEmit", n.IgnoreEmit,
			"ignoreResult", n.IgnoreResult)
	case *SetExpr:
		return m("SetExpr", n.Span,
			"object", NodeToMap(n.Object),
			"name", n.Name,
			"value", NodeToMap(n.Value))
	case *SubscriptExpr:
		return m("SubscriptExpr", n.Span,
			"object", NodeToMap(n.Object),
			"index", NodeToMap(n.Index))
	case *LambdaExpr:
		return m("LambdaExpr", n.Span,
			"params", paramSlice(n.Params),
			"body", NodeToMap(n.Body))
	case *ArrayExpr:
		return m("ArrayExpr", n.Span, "elements", exprSlice(n.Elements))
	case *ObjectExpr:
		return m("ObjectExpr", n.Span, "keys", n.Keys, "values", exprSlice(n.Values))
	case *RangeExpr:
		return m("RangeExpr", n.Span,
			"from", NodeToMap(n.From),
			"to", NodeToMap(n.To),
			"inclusive", n.Inclusive)
	case *InterpolationExpr:
		return m("InterpolationExpr", n.Span, "parts", n.Parts, "exprs", exprSlice(n.Exprs))
	case *ReferenceExpr:
		return m("ReferenceExpr", n.Span, "target", NodeToMap(n.Target))
	case *TernaryExpr:
		return m("TernaryExpr", n.Span,
			"condition", NodeToMap(n.Condition),
			"then", NodeToMap(n.Then),
			"else", NodeToMap(n.Else))

	// ---- Statements ----
	case *ExpressionStmt:
		return m("ExpressionStmt", n.Span, "expr", NodeToMap(n.Expr), "pop", n.Pop)
	case *BlockStmt:
		return m("BlockStmt", n.Span, "stmts", stmtSlice(n.Stmts))
	case *IfStmt:
		result := m("IfStmt", n.Span,
			"condition", NodeToMap(n.Condition),
			"body", NodeToMap(n.Body))
		if len(n.ElseIfs) > 0 {
			elseIfs := make([]interface{}, len(n.ElseIfs))
			for i, ei := range n.ElseIfs {
				elseIfs[i] = map[string]interface{}{
					"kind":      "ElseIfClause",
					"span":      spanToMap(ei.Span),
					"condition": NodeToMap(ei.Condition),
					"body":      NodeToMap(ei.Body),
				}
			}
			result["elseIfs"] = elseIfs
		}
		if n.ElseBody != nil {
			result["elseBody"] = NodeToMap(n.ElseBody)
		}
		return result
	case *WhileStmt:
		return m("WhileStmt", n.Span,
			"condition", NodeToMap(n.Condition),
			"body", NodeToMap(n.Body))
	case *ForStmt:
		result := m("ForStmt", n.Span, "cStyle", n.CStyle, "body", NodeToMap(n.Body))
		if n.CStyle {
			if n.Init != nil {
				result["init"] = NodeToMap(n.Init)
			}
			if n.Condition != nil {
				result["condition"] = NodeToMap(n.Condition)
			}
			if n.Update != nil {
				result["update"] = NodeToMap(n.Update)
			}
		} else {
			result["varName"] = n.VarName
			result["iterable"] = NodeToMap(n.Iterable)
		}
		return result
	case *VarDeclStmt:
		result := m("VarDeclStmt", n.Span, "name", n.Name, "constant", n.Constant)
		if n.Init != nil {
			result["init"] = NodeToMap(n.Init)
		}
		return result
	case *ReturnStmt:
		result := m("ReturnStmt", n.Span)
		if n.Value != nil {
			result["value"] = NodeToMap(n.Value)
		}
		return result
	case *BreakStmt:
		return m("BreakStmt", n.Span)
	case *ContinueStmt:
		return m("ContinueStmt", n.Span)
	case *FunctionDecl:
		return m("FunctionDecl", n.Span,
			"name", n.Name,
			"exported", n.Exported,
			"params", paramSlice(n.Params),
			"body", NodeToMap(n.Body))
	case *ClassDecl:
		result := m("ClassDecl", n.Span, "name", n.Name, "parent", n.Parent)
		if len(n.Methods) > 0 {
			methods := make([]interface{}, len(n.Methods))
			for i, md := range n.Methods {
				methods[i] = methodToMap(md)
			}
			result["methods"] = methods
		}
		if len(n.Fields) > 0 {
			fields := make([]interface{}, len(n.Fields))
			for i, fd := range n.Fields {
				fields[i] = fieldToMap(fd)
			}
			result["fields"] = fields
		}
		return result

	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

func methodToMap(md *MethodDecl) map[string]interface{} {
	return map[string]interface{}{
		"kind":     "MethodDecl",
		"span":     spanToMap(md.Span),
		"name":     md.Name,
		"params":   paramSlice(md.Params),
		"body":     NodeToMap(md.Body),
		"isStatic": md.IsStatic,
		"operator": md.Operator,
	}
}

func fieldToMap(fd *FieldDecl) map[string]interface{} {
	result := map[string]interface{}{
		"kind":     "FieldDecl",
		"span":     spanToMap(fd.Span),
		"name":     fd.Name,
		"isStatic": fd.IsStatic,
	}
	if fd.Init != nil {
		result["init"] = NodeToMap(fd.Init)
	}
	if fd.Getter != nil {
		result["getter"] = NodeToMap(fd.Getter)
	}
	if fd.Setter != nil {
		result["setter"] = NodeToMap(fd.Setter)
	}
	return result
}

// ---- helpers ----

func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": map[string]interface{}{
			"offset": s.Start.Offset,
			"line":   s.Start.Line,
			"column": s.Start.Column,
		},
		"end": map[string]interface{}{
			"offset": s.End.Offset,
			"line":   s.End.Line,
			"column": s.End.Column,
		},
	}
}

func stmtSlice(stmts []Stmt) []interface{} {
	result := make([]interface{}, len(stmts))
	for i, n := range stmts {
		result[i] = NodeToMap(n)
	}
	return result
}

func exprSlice(exprs []Expr) []interface{} {
	result := make([]interface{}, len(exprs))
	for i, e := range exprs {
		result[i] = NodeToMap(e)
	}
	return result
}

func paramSlice(params []Parameter) []interface{} {
	result := make([]interface{}, len(params))
	for i, p := range params {
		entry := map[string]interface{}{
			"name":     p.Name,
			"variadic": p.Variadic,
		}
		if p.Default != nil {
			entry["default"] = NodeToMap(p.Default)
		}
		result[i] = entry
	}
	return result
}
