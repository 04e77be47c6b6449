// Package host provides the small set of capabilities the scanner and
// parser need from their embedding environment: string interning, literal
// value boxing, and structured error formatting. It deliberately stops
// there — it is not a bytecode compiler, a virtual machine, a garbage
// collector, or a tree-walking evaluator; those belong to a downstream
// consumer of the AST this module produces.
package host

import (
	"fmt"
	"strings"
)

// Value is the interface for the handful of literal value shapes the
// scanner can produce: numbers, strings, booleans, and null. It carries no
// behavior beyond identifying its own type and rendering for debugging —
// arithmetic, truthiness, and method dispatch are a runtime's job, not a
// front end's.
type Value interface {
	TypeName() string
	String() string
}

// Number is a boxed floating-point literal. The scanner does not
// distinguish integer and float literals at the token-kind level (both are
// NUMBER); Number.IsInt reports whether the literal text had no fractional
// part, for callers that care (e.g. the printer, round-tripping "3" vs
// "3.0").
type Number struct {
	Value float64
	IsInt bool
}

func (n Number) TypeName() string { return "number" }
func (n Number) String() string {
	if n.IsInt {
		return fmt.Sprintf("%d", int64(n.Value))
	}
	s := fmt.Sprintf("%g", n.Value)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

// String is a boxed, interned string literal.
type String struct {
	Value string
}

func (s String) TypeName() string { return "string" }
func (s String) String() string   { return s.Value }

// Bool is a boxed boolean literal.
type Bool bool

func (b Bool) TypeName() string { return "bool" }
func (b Bool) String() string   { return fmt.Sprintf("%t", bool(b)) }

// Null is the single null value.
type Null struct{}

func (Null) TypeName() string { return "null" }
func (Null) String() string   { return "null" }

// NullValue is the shared Null instance.
var NullValue Value = Null{}
