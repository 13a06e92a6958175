package lexer

import (
	"testing"

	"github.com/oberon-go/oberonc/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `MODULE M;
VAR x: INTEGER;
BEGIN
	x := 5 + 10;
END M.`

	tests := []struct {
		expectedLexeme string
		expectedType   token.Type
	}{
		{"MODULE", token.MODULE},
		{"M", token.IDENT},
		{";", token.SEMI},
		{"VAR", token.VAR},
		{"x", token.IDENT},
		{":", token.COLON},
		{"INTEGER", token.INTEGER},
		{";", token.SEMI},
		{"BEGIN", token.BEGIN},
		{"x", token.IDENT},
		{":=", token.ASSIGN},
		{"5", token.INT},
		{"+", token.PLUS},
		{"10", token.INT},
		{";", token.SEMI},
		{"END", token.END},
		{"M", token.IDENT},
		{".", token.DOT},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestCaseSensitiveKeywords(t *testing.T) {
	// "begin" is a plain identifier; only "BEGIN" is the keyword.
	l := New("begin BEGIN")
	first := l.NextToken()
	if first.Type != token.IDENT || first.Lexeme != "begin" {
		t.Fatalf("expected lowercase 'begin' to lex as IDENT, got %s %q", first.Type, first.Lexeme)
	}
	second := l.NextToken()
	if second.Type != token.BEGIN {
		t.Fatalf("expected uppercase 'BEGIN' to lex as keyword BEGIN, got %s", second.Type)
	}
}

func TestRealLiteral(t *testing.T) {
	l := New("3.14")
	tok := l.NextToken()
	if tok.Type != token.REAL || tok.Lexeme != "3.14" {
		t.Fatalf("expected REAL 3.14, got %s %q", tok.Type, tok.Lexeme)
	}
}

func TestStringLiteral(t *testing.T) {
	l := New(`"Hi"`)
	tok := l.NextToken()
	if tok.Type != token.STRING || tok.Lexeme != "Hi" {
		t.Fatalf("expected STRING Hi, got %s %q", tok.Type, tok.Lexeme)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	l := New("x (* a comment *) y")
	first := l.NextToken()
	second := l.NextToken()
	if first.Lexeme != "x" || second.Lexeme != "y" {
		t.Fatalf("expected comment to be skipped, got %q then %q", first.Lexeme, second.Lexeme)
	}
}

func TestUnterminatedStringError(t *testing.T) {
	l := New(`"abc`)
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexical error, got %d", len(l.Errors()))
	}
}

func TestUnterminatedCommentError(t *testing.T) {
	l := New("(* never closed")
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexical error, got %d", len(l.Errors()))
	}
}

func TestIntegerOverflowError(t *testing.T) {
	l := New("99999999999")
	tok := l.NextToken()
	if tok.Type != token.INT {
		t.Fatalf("expected INT token despite overflow, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexical error for overflow, got %d", len(l.Errors()))
	}
}

func TestInvalidCharacterError(t *testing.T) {
	l := New("x @ y")
	l.NextToken()
	l.NextToken() // @
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexical error for invalid character, got %d", len(l.Errors()))
	}
}

func TestLongestMatchOperators(t *testing.T) {
	l := New("<= >= := < > =")
	want := []token.Type{token.LEQ, token.GEQ, token.ASSIGN, token.LT, token.GT, token.EQ}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("tests[%d]: expected %s, got %s (%q)", i, w, tok.Type, tok.Lexeme)
		}
	}
}

// TestLexerTotality is a weak form of the "Lexer totality" law from
// spec.md §8: scanning to EOF on well-formed input never panics and the
// final token is always EOF.
func TestLexerTotality(t *testing.T) {
	input := `MODULE T; VAR a: ARRAY 3 OF INTEGER; BEGIN a[0] := 1; END T.`
	l := New(input)
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
	}
	if len(l.Errors()) != 0 {
		t.Fatalf("expected no lexical errors, got %v", l.Errors())
	}
}
