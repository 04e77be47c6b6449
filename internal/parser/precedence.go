package parser

import "lit-front/internal/token"

// Precedence is the binding-power ladder used by the Pratt driver. Values
// increase with binding strength; parseExpr(p, prec) keeps consuming infix
// operators whose table precedence is >= prec.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment        // =, += -= *= /= etc (right-assoc)
	PrecCompound          // ++ -- as postfix
	PrecNull              // ??
	PrecOr                // ||
	PrecAnd               // &&
	PrecBitOr             // |
	PrecBitAnd            // &
	PrecShift             // << >>
	PrecEquality          // == !=, and ? (ternary or ?. null-safe get)
	PrecComparison        // < <= > >=
	PrecIs                // is
	PrecRange             // .. ...
	PrecTerm              // + -
	PrecFactor            // * / % # **
	PrecUnary             // ! - ~ (prefix), ++ -- (prefix)
	PrecCall              // . () [] ->
	PrecPrimary
)

// infixRule describes one token kind's infix (led) binding.
type infixRule struct {
	precedence Precedence
	rightAssoc bool
}

var infixRules = map[token.Kind]infixRule{
	token.ASSIGN:         {PrecAssignment, true},
	token.PLUS_ASSIGN:    {PrecAssignment, true},
	token.MINUS_ASSIGN:   {PrecAssignment, true},
	token.STAR_ASSIGN:    {PrecAssignment, true},
	token.SLASH_ASSIGN:   {PrecAssignment, true},
	token.PERCENT_ASSIGN: {PrecAssignment, true},
	token.SHARP_ASSIGN:   {PrecAssignment, true},
	token.AMP_ASSIGN:     {PrecAssignment, true},
	token.PIPE_ASSIGN:    {PrecAssignment, true},
	token.CARET_ASSIGN:   {PrecAssignment, true},

	token.QUESTION:          {PrecEquality, true},
	token.QUESTION_QUESTION: {PrecNull, true},
	token.ARROW:             {PrecCall, false},

	token.OR_OR:  {PrecOr, false},
	token.AND_AND: {PrecAnd, false},

	token.PIPE:  {PrecBitOr, false},
	token.AMP:   {PrecBitAnd, false},
	token.CARET: {PrecBitOr, false},
	token.SHL:   {PrecShift, false},
	token.SHR:   {PrecShift, false},

	token.EQ:  {PrecEquality, false},
	token.NEQ: {PrecEquality, false},

	token.LT:  {PrecComparison, false},
	token.LTE: {PrecComparison, false},
	token.GT:  {PrecComparison, false},
	token.GTE: {PrecComparison, false},

	token.KW_IS: {PrecIs, false},

	token.DOT_DOT:     {PrecRange, false},
	token.DOT_DOT_DOT: {PrecRange, false},

	token.PLUS:  {PrecTerm, false},
	token.MINUS: {PrecTerm, false},

	token.STAR:      {PrecFactor, false},
	token.SLASH:     {PrecFactor, false},
	token.PERCENT:   {PrecFactor, false},
	token.SHARP:     {PrecFactor, false},
	token.STAR_STAR: {PrecFactor, true},

	token.PLUS_PLUS:   {PrecCompound, false},
	token.MINUS_MINUS: {PrecCompound, false},

	token.LPAREN:   {PrecCall, false},
	token.LBRACKET: {PrecCall, false},
	token.DOT:      {PrecCall, false},
}
