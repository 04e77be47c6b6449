package parser

import (
	"testing"

	"lit-front/internal/ast"
	"lit-front/internal/diag"
	"lit-front/internal/printer"
)

func parseOK(t *testing.T, source string) *ast.File {
	t.Helper()
	file, diags := ParseFile(source, "<test>")
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics for %q: %v", source, diags)
	}
	return file
}

func singleExpr(t *testing.T, file *ast.File) ast.Expr {
	t.Helper()
	if len(file.Body) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(file.Body))
	}
	es, ok := file.Body[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("expected ExpressionStmt, got %T", file.Body[0])
	}
	return es.Expr
}

func TestBinaryPrecedence(t *testing.T) {
	file := parseOK(t, "1 + 2 * 3\n")
	bin, ok := singleExpr(t, file).(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected top-level BinaryExpr, got %T", singleExpr(t, file))
	}
	if bin.Op.String() != "+" {
		t.Fatalf("expected '+' at the top, got %s", bin.Op)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || rhs.Op.String() != "*" {
		t.Fatalf("expected '*' nested on the right, got %#v", bin.Right)
	}
}

func TestOrAndPrecedence(t *testing.T) {
	file := parseOK(t, "a && b || c && d\n")
	top, ok := singleExpr(t, file).(*ast.BinaryExpr)
	if !ok || top.Op.String() != "||" {
		t.Fatalf("expected top-level '||', got %#v", singleExpr(t, file))
	}
	if _, ok := top.Left.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected left side to be a nested '&&', got %#v", top.Left)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	file := parseOK(t, "a = b = 1\n")
	assign, ok := singleExpr(t, file).(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected AssignExpr, got %T", singleExpr(t, file))
	}
	if _, ok := assign.Value.(*ast.AssignExpr); !ok {
		t.Fatalf("expected nested AssignExpr on the right, got %#v", assign.Value)
	}
}

func TestCompoundAssignDesugars(t *testing.T) {
	file := parseOK(t, "x += 1\n")
	assign, ok := singleExpr(t, file).(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected AssignExpr, got %T", singleExpr(t, file))
	}
	bin, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || bin.Op.String() != "+" || !bin.IgnoreLeft {
		t.Fatalf("expected desugared '+' with IgnoreLeft, got %#v", assign.Value)
	}
}

func TestPostfixIncrementDesugars(t *testing.T) {
	file := parseOK(t, "x++\n")
	assign, ok := singleExpr(t, file).(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected AssignExpr, got %T", singleExpr(t, file))
	}
	bin, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || bin.Op.String() != "+" {
		t.Fatalf("expected desugared '+', got %#v", assign.Value)
	}
}

func TestInvalidAssignTargetIsDiagnosed(t *testing.T) {
	_, diags := ParseFile("1 = 2\n", "<test>")
	if len(diags) != 1 || diags[0].Code != diag.ErrInvalidAssignTarget {
		t.Fatalf("expected one %s diagnostic, got %v", diag.ErrInvalidAssignTarget, diags)
	}
}

func TestTernaryExpr(t *testing.T) {
	file := parseOK(t, "a ? b : c\n")
	tern, ok := singleExpr(t, file).(*ast.TernaryExpr)
	if !ok {
		t.Fatalf("expected TernaryExpr, got %T", singleExpr(t, file))
	}
	if _, ok := tern.Condition.(*ast.VariableExpr); !ok {
		t.Fatalf("expected VariableExpr condition, got %#v", tern.Condition)
	}
}

func TestRangeExpr(t *testing.T) {
	file := parseOK(t, "0..10\n")
	r, ok := singleExpr(t, file).(*ast.RangeExpr)
	if !ok || r.Inclusive {
		t.Fatalf("expected exclusive RangeExpr, got %#v", singleExpr(t, file))
	}

	file = parseOK(t, "0...10\n")
	r, ok = singleExpr(t, file).(*ast.RangeExpr)
	if !ok || !r.Inclusive {
		t.Fatalf("expected inclusive RangeExpr, got %#v", singleExpr(t, file))
	}
}

func TestArrayAndObjectLiterals(t *testing.T) {
	file := parseOK(t, "[1, 2, 3]\n")
	arr, ok := singleExpr(t, file).(*ast.ArrayExpr)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("expected 3-element ArrayExpr, got %#v", singleExpr(t, file))
	}

	// A '{' at the start of a statement opens a block, so the object
	// literal is parenthesized to put it in expression position.
	file = parseOK(t, "({a = 1, b = 2})\n")
	obj, ok := singleExpr(t, file).(*ast.ObjectExpr)
	if !ok || len(obj.Keys) != 2 || obj.Keys[0] != "a" || obj.Keys[1] != "b" {
		t.Fatalf("expected 2-key ObjectExpr, got %#v", singleExpr(t, file))
	}
}

func TestGroupingVsLambdaDisambiguation(t *testing.T) {
	file := parseOK(t, "(1 + 2) * 3\n")
	if _, ok := singleExpr(t, file).(*ast.BinaryExpr); !ok {
		t.Fatalf("expected grouped BinaryExpr, got %#v", singleExpr(t, file))
	}

	file = parseOK(t, "(a, b) => a + b\n")
	lambda, ok := singleExpr(t, file).(*ast.LambdaExpr)
	if !ok || len(lambda.Params) != 2 {
		t.Fatalf("expected 2-param LambdaExpr, got %#v", singleExpr(t, file))
	}
	if _, ok := lambda.Body.(*ast.ExpressionStmt); !ok {
		t.Fatalf("expected expression-bodied lambda, got %#v", lambda.Body)
	}
}

func TestStringInterpolationExpr(t *testing.T) {
	file := parseOK(t, `$"hi {name}, you are {age} years old"` + "\n")
	interp, ok := singleExpr(t, file).(*ast.InterpolationExpr)
	if !ok {
		t.Fatalf("expected InterpolationExpr, got %T", singleExpr(t, file))
	}
	if len(interp.Exprs) != 2 || len(interp.Parts) != 3 {
		t.Fatalf("expected 2 holes / 3 parts, got %d/%d", len(interp.Exprs), len(interp.Parts))
	}
}

func TestForCStyleAndForIn(t *testing.T) {
	file := parseOK(t, "for (var i = 0; i < 10; i++) {\n}\n")
	forStmt, ok := file.Body[0].(*ast.ForStmt)
	if !ok || !forStmt.CStyle {
		t.Fatalf("expected C-style ForStmt, got %#v", file.Body[0])
	}

	file = parseOK(t, "for (var item in items) {\n}\n")
	forStmt, ok = file.Body[0].(*ast.ForStmt)
	if !ok || forStmt.CStyle || forStmt.VarName != "item" {
		t.Fatalf("expected for-in ForStmt, got %#v", file.Body[0])
	}
}

func TestForInWithoutVarIsDiagnosed(t *testing.T) {
	_, diags := ParseFile("for (item in items) {\n}\n", "<test>")
	if len(diags) != 1 || diags[0].Code != diag.ErrMissingForInVar {
		t.Fatalf("expected one %s diagnostic, got %v", diag.ErrMissingForInVar, diags)
	}
}

func TestIfElseIfElse(t *testing.T) {
	file := parseOK(t, "if a {\n} else if b {\n} else {\n}\n")
	ifStmt, ok := file.Body[0].(*ast.IfStmt)
	if !ok || len(ifStmt.ElseIfs) != 1 || ifStmt.ElseBody == nil {
		t.Fatalf("expected 1 else-if and an else body, got %#v", file.Body[0])
	}
}

func TestMultipleElseBranchesIsDiagnosed(t *testing.T) {
	_, diags := ParseFile("if a {\n} else {\n} else {\n}\n", "<test>")
	if len(diags) != 1 || diags[0].Code != diag.ErrMultipleElseBranches {
		t.Fatalf("expected one %s diagnostic, got %v", diag.ErrMultipleElseBranches, diags)
	}
}

func TestClassWithInheritanceAndOperator(t *testing.T) {
	source := `
class Vector {
    function operator +(other) {
        return this
    }
    static function zero() {
        return 0
    }
}
class Vector3 : Vector {
}
`
	file := parseOK(t, source)
	if len(file.Body) != 2 {
		t.Fatalf("expected 2 class declarations, got %d", len(file.Body))
	}
	vec, ok := file.Body[0].(*ast.ClassDecl)
	if !ok || len(vec.Methods) != 2 {
		t.Fatalf("expected 2 methods on Vector, got %#v", file.Body[0])
	}
	if vec.Methods[0].Operator != "+" {
		t.Errorf("expected operator method spelled '+', got %q", vec.Methods[0].Operator)
	}
	if !vec.Methods[1].IsStatic {
		t.Errorf("expected zero() to be static")
	}
	vec3, ok := file.Body[1].(*ast.ClassDecl)
	if !ok || vec3.Parent != "Vector" {
		t.Fatalf("expected Vector3 to inherit from Vector, got %#v", file.Body[1])
	}
}

func TestClassSelfInheritanceIsDiagnosed(t *testing.T) {
	_, diags := ParseFile("class A : A {\n}\n", "<test>")
	if len(diags) != 1 || diags[0].Code != diag.ErrClassInheritsSelf {
		t.Fatalf("expected one %s diagnostic, got %v", diag.ErrClassInheritsSelf, diags)
	}
}

func TestStaticVarFieldBeforeMethods(t *testing.T) {
	file := parseOK(t, "class Counter {\n    static var n = 0\n    function bump() {\n    }\n}\n")
	cls, ok := file.Body[0].(*ast.ClassDecl)
	if !ok || len(cls.Fields) != 1 || len(cls.Methods) != 1 {
		t.Fatalf("expected 1 field and 1 method, got %#v", file.Body[0])
	}
	fd := cls.Fields[0]
	if fd.Name != "n" || !fd.IsStatic || fd.Init == nil || fd.Getter != nil || fd.Setter != nil {
		t.Fatalf("unexpected static var field shape: %#v", fd)
	}
}

func TestStaticVarFieldAfterMethodIsDiagnosed(t *testing.T) {
	_, diags := ParseFile("class A {\n    function f() {\n    }\n    static var n = 0\n}\n", "<test>")
	if len(diags) != 1 || diags[0].Code != diag.ErrStaticFieldOrder {
		t.Fatalf("expected one %s diagnostic, got %v", diag.ErrStaticFieldOrder, diags)
	}
}

func TestGetterOnlyFieldShorthand(t *testing.T) {
	file := parseOK(t, "class A {\n    function area => 1\n}\n")
	cls, ok := file.Body[0].(*ast.ClassDecl)
	if !ok || len(cls.Fields) != 1 || len(cls.Methods) != 0 {
		t.Fatalf("expected 1 field and no methods, got %#v", file.Body[0])
	}
	fd := cls.Fields[0]
	if fd.Name != "area" || fd.Setter != nil {
		t.Fatalf("expected getter-only field %q, got %#v", "area", fd)
	}
	es, ok := fd.Getter.(*ast.ExpressionStmt)
	if !ok || es.Pop {
		t.Fatalf("expected getter body to be a non-popping ExpressionStmt, got %#v", fd.Getter)
	}
}

func TestFieldWithGetAndSet(t *testing.T) {
	file := parseOK(t, "class A {\n    function value {\n        get => 1\n        set => 2\n    }\n}\n")
	cls, ok := file.Body[0].(*ast.ClassDecl)
	if !ok || len(cls.Fields) != 1 {
		t.Fatalf("expected 1 field, got %#v", file.Body[0])
	}
	fd := cls.Fields[0]
	if fd.Getter == nil || fd.Setter == nil {
		t.Fatalf("expected both a getter and a setter, got %#v", fd)
	}
}

func TestFieldWithNeitherGetterNorSetterIsDiagnosed(t *testing.T) {
	_, diags := ParseFile("class A {\n    function value {\n    }\n}\n", "<test>")
	if len(diags) != 1 || diags[0].Code != diag.ErrNoGetterOrSetter {
		t.Fatalf("expected one %s diagnostic, got %v", diag.ErrNoGetterOrSetter, diags)
	}
}

func TestFunctionWithDefaultAndVariadicParams(t *testing.T) {
	file := parseOK(t, "function f(a, b = 1, ...rest) {\n}\n")
	fn, ok := file.Body[0].(*ast.FunctionDecl)
	if !ok || len(fn.Params) != 3 {
		t.Fatalf("expected 3 params, got %#v", file.Body[0])
	}
	if fn.Params[1].Default == nil {
		t.Errorf("expected param 'b' to carry a default value")
	}
	if !fn.Params[2].Variadic {
		t.Errorf("expected trailing param to be variadic")
	}
}

func TestDefaultArgNotTrailingIsDiagnosed(t *testing.T) {
	_, diags := ParseFile("function f(a = 1, b) {\n}\n", "<test>")
	if len(diags) != 1 || diags[0].Code != diag.ErrDefaultArgNotTrailing {
		t.Fatalf("expected one %s diagnostic, got %v", diag.ErrDefaultArgNotTrailing, diags)
	}
}

func TestSynchronizeRecoversAfterError(t *testing.T) {
	// The stray ')' on line 1 is a parse error, but the following function
	// declaration should still be recovered and parsed.
	file, diags := ParseFile(")\nfunction f() {\n}\n", "<test>")
	foundSyntaxError := false
	for _, d := range diags {
		if d.Code == diag.ErrExpectedExpression {
			foundSyntaxError = true
		}
	}
	if !foundSyntaxError {
		t.Fatalf("expected at least one syntax error, got %v", diags)
	}
	if len(file.Body) == 0 {
		t.Fatalf("expected the function declaration to be recovered, got no statements")
	}
	fn, ok := file.Body[len(file.Body)-1].(*ast.FunctionDecl)
	if !ok || fn.Name != "f" {
		t.Fatalf("expected the last statement to be function f, got %#v", file.Body[len(file.Body)-1])
	}
}

func TestRoundTripThroughPrinter(t *testing.T) {
	sources := []string{
		"var x = 1 + 2 * 3\n",
		"if a {\n    b()\n} else {\n    c()\n}\n",
		"function add(a, b) {\n    return a + b\n}\n",
		"class A {\n    static var n = 0\n    function area => 1\n    function f() {\n    }\n}\n",
	}
	for _, source := range sources {
		file := parseOK(t, source)
		printed := printer.Print(file)
		reparsed, diags := ParseFile(printed, "<reprint>")
		if len(diags) > 0 {
			t.Fatalf("reprinting %q produced %q, which failed to reparse: %v", source, printed, diags)
		}
		if len(reparsed.Body) != len(file.Body) {
			t.Errorf("round-trip statement count mismatch for %q: got %d, want %d",
				source, len(reparsed.Body), len(file.Body))
		}
	}
}
