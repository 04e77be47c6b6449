package lexer

import (
	"testing"

	"lit-front/internal/host"
	"lit-front/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, source string, want []token.Kind) []token.Token {
	t.Helper()
	l := New(source, "<test>")
	toks, diags := l.Tokenize()
	for _, d := range diags {
		t.Errorf("unexpected diagnostic: %s", d.String())
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch for %q: got %v, want %v", source, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d for %q: got %s, want %s", i, source, got[i], want[i])
		}
	}
	return toks
}

func TestTokenizeNumbers(t *testing.T) {
	cases := []struct {
		source string
		isInt  bool
		value  float64
	}{
		{"42", true, 42},
		{"0", true, 0},
		{"3.14", false, 3.14},
		{"0x1F", true, 31},
		{"0b101", true, 5},
	}
	for _, c := range cases {
		toks := assertKinds(t, c.source, []token.Kind{token.NUMBER, token.EOF})
		n, ok := toks[0].Value.(host.Number)
		if !ok {
			t.Fatalf("%q: expected host.Number value, got %T", c.source, toks[0].Value)
		}
		if n.IsInt != c.isInt || n.Value != c.value {
			t.Errorf("%q: got Number{%v,%v}, want {%v,%v}", c.source, n.Value, n.IsInt, c.value, c.isInt)
		}
	}
}

func TestNumberDotIdentDisambiguation(t *testing.T) {
	// `1.toString` must not swallow the dot into a float literal: NUMBER(1)
	// DOT IDENT, since there is no digit after the '.'.
	assertKinds(t, "1.toString", []token.Kind{token.NUMBER, token.DOT, token.IDENT, token.EOF})
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks := assertKinds(t, `"a\nb\tc"`, []token.Kind{token.STRING, token.EOF})
	s, ok := toks[0].Value.(host.String)
	if !ok {
		t.Fatalf("expected host.String value, got %T", toks[0].Value)
	}
	if s.Value != "a\nb\tc" {
		t.Errorf("got %q, want %q", s.Value, "a\nb\tc")
	}
}

func TestInvalidEscapeIsDiagnosed(t *testing.T) {
	l := New(`"a\qb"`, "<test>")
	_, diags := l.Tokenize()
	if len(diags) != 1 || diags[0].Code != "E1002" {
		t.Fatalf("expected one E1002 diagnostic, got %v", diags)
	}
}

func TestUnterminatedStringIsDiagnosed(t *testing.T) {
	l := New(`"abc`, "<test>")
	_, diags := l.Tokenize()
	if len(diags) != 1 || diags[0].Code != "E1001" {
		t.Fatalf("expected one E1001 diagnostic, got %v", diags)
	}
}

func TestMultilineStringIsAllowed(t *testing.T) {
	toks := assertKinds(t, "\"a\nb\"", []token.Kind{token.STRING, token.EOF})
	s, ok := toks[0].Value.(host.String)
	if !ok || s.Value != "a\nb" {
		t.Fatalf("got %#v, want string %q", toks[0].Value, "a\nb")
	}
}

func TestMultilineInterpolatedStringIsAllowed(t *testing.T) {
	toks := assertKinds(t, "$\"a\n{x}\nb\"", []token.Kind{
		token.INTERPOLATION, token.IDENT, token.STRING, token.EOF,
	})
	if toks[0].Lexeme != "a\n" || toks[2].Lexeme != "\nb" {
		t.Fatalf("got lexemes %q / %q", toks[0].Lexeme, toks[2].Lexeme)
	}
}

func TestInterpolatedStringNoHoles(t *testing.T) {
	// With no '{' in the body, an interpolated string tokenizes as a plain
	// STRING (the INTERPOLATION kind is only used once a hole is seen).
	assertKinds(t, `$"hello"`, []token.Kind{token.STRING, token.EOF})
}

func TestInterpolatedStringWithHole(t *testing.T) {
	toks := assertKinds(t, `$"x={x}!"`,
		[]token.Kind{token.INTERPOLATION, token.IDENT, token.STRING, token.EOF})
	if toks[0].Lexeme != "x=" {
		t.Errorf("got lexeme %q, want %q", toks[0].Lexeme, "x=")
	}
	if toks[2].Lexeme != "!" {
		t.Errorf("got lexeme %q, want %q", toks[2].Lexeme, "!")
	}
}

func TestInterpolatedStringWithNestedBlock(t *testing.T) {
	// The '{' that opens an object literal inside a hole must not be
	// confused with the '}' that closes the hole itself.
	assertKinds(t, `$"v={ {a = 1}.a }"`, []token.Kind{
		token.INTERPOLATION,
		token.LBRACE, token.IDENT, token.ASSIGN, token.NUMBER, token.RBRACE, token.DOT, token.IDENT,
		token.STRING, token.EOF,
	})
}

func TestOperatorsAndKeywords(t *testing.T) {
	assertKinds(t, "var x = 1 + 2 ** 3", []token.Kind{
		token.KW_VAR, token.IDENT, token.ASSIGN, token.NUMBER, token.PLUS, token.NUMBER,
		token.STAR_STAR, token.NUMBER, token.EOF,
	})
}

func TestCompoundAndIncrementOperators(t *testing.T) {
	assertKinds(t, "x += 1\nx++", []token.Kind{
		token.IDENT, token.PLUS_ASSIGN, token.NUMBER, token.NEWLINE,
		token.IDENT, token.PLUS_PLUS, token.EOF,
	})
}

func TestBoolAndNullLiterals(t *testing.T) {
	toks := assertKinds(t, "true false null", []token.Kind{
		token.KW_TRUE, token.KW_FALSE, token.KW_NULL, token.EOF,
	})
	if b, ok := toks[0].Value.(host.Bool); !ok || bool(b) != true {
		t.Errorf("true literal: got %#v", toks[0].Value)
	}
	if b, ok := toks[1].Value.(host.Bool); !ok || bool(b) != false {
		t.Errorf("false literal: got %#v", toks[1].Value)
	}
	if toks[2].Value != host.NullValue {
		t.Errorf("null literal: got %#v", toks[2].Value)
	}
}

func TestLineComments(t *testing.T) {
	assertKinds(t, "1 // comment\n2", []token.Kind{token.NUMBER, token.NEWLINE, token.NUMBER, token.EOF})
}

func TestBlockComments(t *testing.T) {
	assertKinds(t, "1 /* c1\nc2 */ 2", []token.Kind{token.NUMBER, token.NUMBER, token.EOF})
}

func TestUnexpectedCharacterProducesErrorToken(t *testing.T) {
	l := New("`", "<test>")
	toks, diags := l.Tokenize()
	got := kinds(toks)
	if len(got) != 2 || got[0] != token.ERROR || got[1] != token.EOF {
		t.Fatalf("got %v, want [ERROR EOF]", got)
	}
	if len(diags) != 1 || diags[0].Code != "E1004" {
		t.Fatalf("expected one E1004 diagnostic, got %v", diags)
	}
	if toks[0].Value == nil {
		t.Fatalf("expected ERROR token to carry a formatted message")
	}
}

func TestCheckpointSaveRestore(t *testing.T) {
	l := New("abc def", "<test>")
	cp := l.Save()
	first := l.nextToken()
	if first.Lexeme != "abc" {
		t.Fatalf("got %q, want %q", first.Lexeme, "abc")
	}
	l.Restore(cp)
	again := l.nextToken()
	if again.Lexeme != "abc" {
		t.Fatalf("restore did not rewind: got %q", again.Lexeme)
	}
}
