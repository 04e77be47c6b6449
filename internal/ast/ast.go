// Package ast defines the abstract syntax tree produced by the parser: one
// Node sum type realized as a small Expr/Stmt interface pair, covering the
// full node set a dynamically-typed, class-based scripting language front
// end needs.
package ast

import (
	"lit-front/internal/host"
	"lit-front/internal/span"
	"lit-front/internal/token"
)

// ============================================================
// Node interfaces
// ============================================================

// Node is implemented by every AST node.
type Node interface {
	nodeNode()
	GetSpan() span.Span
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement and declaration nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ============================================================
// Base types
// ============================================================

// NodeBase supplies the common Span field.
type NodeBase struct {
	Span span.Span
}

func (n NodeBase) nodeNode()          {}
func (n NodeBase) GetSpan() span.Span { return n.Span }

// ExprBase is embedded by all expression nodes.
type ExprBase struct{ NodeBase }

func (ExprBase) exprNode() {}

// StmtBase is embedded by all statement nodes.
type StmtBase struct{ NodeBase }

func (StmtBase) stmtNode() {}

// ============================================================
// File (top-level root)
// ============================================================

// File is the root node: a sequence of top-level statements/declarations.
type File struct {
	NodeBase
	Body []Stmt
}

// ============================================================
// Expressions
// ============================================================

// LiteralExpr is a scalar literal: number, string, true/false, or null.
type LiteralExpr struct {
	ExprBase
	Value host.Value
}

// VariableExpr references a bound name.
type VariableExpr struct {
	ExprBase
	Name string
}

// ThisExpr is the `this` keyword.
type ThisExpr struct {
	ExprBase
}

// SuperExpr is `super.method`, `super->method`, or `super(args)` inside a
// subclass method. IgnoreResult marks the `super->method` spelling, whose
// value is discarded, the same way `->` marks a GetExpr.
type SuperExpr struct {
	ExprBase
	Method       string // method name for super.method(); empty for bare super(args)
	Args         []Expr
	IgnoreResult bool
}

// UnaryExpr is a prefix operator: !x, -x, ~x, ++x, --x.
type UnaryExpr struct {
	ExprBase
	Op      token.Kind
	Operand Expr
}

// BinaryExpr is an infix operator. IgnoreLeft marks a binary node
// synthesized for compound-assignment desugaring (x += y ->
// Assign(x, Binary(x, y, +, IgnoreLeft: true))): the left operand still
// needs to be evaluated for its side effects even though its value feeds
// only the right-hand evaluation, not a user-visible left operand.
type BinaryExpr struct {
	ExprBase
	Op         token.Kind
	Left       Expr
	Right      Expr
	IgnoreLeft bool
}

// AssignExpr is `target = value` for a variable or subscript target (or a
// compound-assignment already desugared into this shape by the parser).
// Assignment to a property is a SetExpr instead.
type AssignExpr struct {
	ExprBase
	Target Expr
	Value  Expr
}

// CallExpr is `callee(args)`. ObjectLiteral is non-nil when the call is
// the `new Foo { field = value, ... }` object-literal-construction sugar,
// carrying the trailing brace block as field initializers.
type CallExpr struct {
	ExprBase
	Callee        Expr
	Args          []Expr
	ObjectLiteral *ObjectExpr // non-nil only for `new Foo(...) { ... }` sugar
}

// GetExpr is `object.name` property access. Jump marks the null-safe
// `object?.name` spelling; IgnoreResult marks the `object->name` spelling,
// whose value is discarded. IgnoreEmit is carried for downstream
// emitters; the parser never sets it.
type GetExpr struct {
	ExprBase
	Object       Expr
	Name         string
	Jump         bool
	IgnoreEmit   bool
	IgnoreResult bool
}

// SetExpr is `object.name = value` (also the target shape of a compound
// assignment such as `object.name += value`).
type SetExpr struct {
	ExprBase
	Object Expr
	Name   string
	Value  Expr
}

// SubscriptExpr is `object[index]`.
type SubscriptExpr struct {
	ExprBase
	Object Expr
	Index  Expr
}

// LambdaExpr is an anonymous function: `function(params) => expr` or
// `function(params) { ... }`, or the bare `(params) => expr` short form.
type LambdaExpr struct {
	ExprBase
	Params []Parameter
	Body   Stmt // *BlockStmt for a braced body, *ExpressionStmt for `=> expr`
}

// ArrayExpr is an array literal: `[a, b, c]`.
type ArrayExpr struct {
	ExprBase
	Elements []Expr
}

// ObjectExpr is an object literal: `{ key = value, ... }`. Keys are bare
// identifiers, stored as plain strings in a list parallel to Values,
// preserving declaration order.
type ObjectExpr struct {
	ExprBase
	Keys   []string
	Values []Expr
}

// RangeExpr is `lo..hi` or `lo...hi` (Inclusive marks the `...` form).
type RangeExpr struct {
	ExprBase
	From      Expr
	To        Expr
	Inclusive bool
}

// InterpolationExpr is a `$"...{expr}..."` interpolated string: Parts
// holds the literal text runs, Exprs the embedded expressions, with
// len(Parts) == len(Exprs)+1 (a leading and trailing literal run, possibly
// empty, around each expression).
type InterpolationExpr struct {
	ExprBase
	Parts []string
	Exprs []Expr
}

// ReferenceExpr is `ref x`, a pass-by-reference marker on a call argument.
type ReferenceExpr struct {
	ExprBase
	Target Expr
}

// TernaryExpr is `cond ? then : else`, the expression form of IfClause.
type TernaryExpr struct {
	ExprBase
	Condition Expr
	Then      Expr
	Else      Expr
}

// Parameter is a single formal parameter: a plain name, an optional
// default value expression (nil if none), and a Variadic flag for a
// trailing `...name` parameter that collects extra positional arguments.
type Parameter struct {
	Name     string
	Default  Expr
	Variadic bool
}

// ============================================================
// Statements
// ============================================================

// ExpressionStmt wraps an expression used as a statement. Pop marks that
// the expression's value must be discarded after evaluation; every
// top-level expression statement sets it. A lambda's `=> expr` short body
// also wraps its expression in an ExpressionStmt, but with Pop false,
// since that value is returned rather than discarded.
type ExpressionStmt struct {
	StmtBase
	Expr Expr
	Pop  bool
}

// BlockStmt is a brace-delimited statement sequence.
type BlockStmt struct {
	StmtBase
	Stmts []Stmt
}

// ElseIfClause is one `else if` branch in an IfStmt's chain.
type ElseIfClause struct {
	Span      span.Span
	Condition Expr
	Body      *BlockStmt
}

// IfStmt is an if/else-if.../else chain. At most one ElseBody may be
// present (spec's multiple-else-branches rule); ElseIfs may be any length.
type IfStmt struct {
	StmtBase
	Condition Expr
	Body      *BlockStmt
	ElseIfs   []ElseIfClause
	ElseBody  *BlockStmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	StmtBase
	Condition Expr
	Body      *BlockStmt
}

// ForStmt covers both loop forms. CStyle distinguishes them: when true,
// Init/Condition/Update are the three (each independently optional)
// clauses of `for (init; cond; update)`; when false, VarName names the
// loop variable bound by `for (var x in iterable)` and Iterable is the
// expression producing the sequence walked.
type ForStmt struct {
	StmtBase
	CStyle bool

	// C-style fields.
	Init      Stmt // *VarDeclStmt or *ExpressionStmt, may be nil
	Condition Expr // may be nil
	Update    Expr // may be nil

	// for-in fields.
	VarName  string
	Iterable Expr

	Body *BlockStmt
}

// VarDeclStmt is `var name = init` or `const name = init`.
type VarDeclStmt struct {
	StmtBase
	Name     string
	Constant bool
	Init     Expr // may be nil for `var x` with no initializer
}

// ReturnStmt is `return` or `return expr`.
type ReturnStmt struct {
	StmtBase
	Value Expr // may be nil
}

// BreakStmt is `break`.
type BreakStmt struct {
	StmtBase
}

// ContinueStmt is `continue`.
type ContinueStmt struct {
	StmtBase
}

// FunctionDecl is a top-level or nested named function declaration.
// Exported marks a leading `export` keyword.
type FunctionDecl struct {
	StmtBase
	Name     string
	Params   []Parameter
	Body     *BlockStmt
	Exported bool
}

// MethodDecl is a method inside a ClassDecl. IsStatic marks `static`
// methods; Operator is non-empty for `function operator +(...)`-style
// operator overloads, naming the operator token's canonical spelling.
type MethodDecl struct {
	StmtBase
	Name     string
	Params   []Parameter
	Body     *BlockStmt
	IsStatic bool
	Operator string
}

// FieldDecl is a class field: either `static var name [= init]`, the only
// data-field form the grammar allows (Init set, Getter/Setter both nil),
// or a field declared through `function name` syntax carrying a getter
// and/or setter body (at least one of the two is always present). Getter
// and Setter are each either an *ExpressionStmt, for the `=> expr`
// shorthand, or a *BlockStmt for a `{ ... }` body.
type FieldDecl struct {
	StmtBase
	Name     string
	IsStatic bool
	Init     Expr // set only for the `static var` data-field form
	Getter   Stmt // may be nil
	Setter   Stmt // may be nil
}

// ClassDecl is a class declaration, with an optional parent class name
// for `class X : Y`. Members are kept in two lists, Methods and Fields,
// each in declaration order; the relative source order of a method and a
// field is not recorded, and the printer emits all fields before all
// methods.
type ClassDecl struct {
	StmtBase
	Name    string
	Parent  string // empty if no parent
	Methods []*MethodDecl
	Fields  []*FieldDecl
}
