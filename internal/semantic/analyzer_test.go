package semantic_test

import (
	"testing"

	"github.com/oberon-go/oberonc/internal/lexer"
	"github.com/oberon-go/oberonc/internal/parser"
	"github.com/oberon-go/oberonc/internal/semantic"
)

func analyze(t *testing.T, src string) error {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	module := p.ParseModule()
	if err := p.Err(); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return semantic.NewAnalyzer().Analyze(module)
}

func TestAnalyzeAcceptsValidProgram(t *testing.T) {
	src := `MODULE Sum;
VAR a, b, c: INTEGER;
BEGIN
	a := 3;
	b := 4;
	c := a + b;
	WriteLn(c)
END Sum.
`
	if err := analyze(t, src); err != nil {
		t.Fatalf("expected valid program to analyze cleanly, got %v", err)
	}
}

func TestAnalyzeRejectsUndeclaredName(t *testing.T) {
	src := `MODULE Bad;
BEGIN
	x := 1
END Bad.
`
	if err := analyze(t, src); err == nil {
		t.Fatal("expected undeclared-name error")
	}
}

func TestAnalyzeRejectsRedeclaration(t *testing.T) {
	src := `MODULE Bad;
VAR x, x: INTEGER;
BEGIN
END Bad.
`
	if err := analyze(t, src); err == nil {
		t.Fatal("expected redeclaration error")
	}
}

func TestAnalyzeRejectsAssigningToConst(t *testing.T) {
	src := `MODULE Bad;
CONST Limit = 10;
BEGIN
	Limit := 20
END Bad.
`
	if err := analyze(t, src); err == nil {
		t.Fatal("expected assignment-to-constant error")
	}
}

func TestAnalyzeRejectsDivOnReal(t *testing.T) {
	src := `MODULE Bad;
VAR x: REAL;
BEGIN
	x := 1.0 DIV 2.0
END Bad.
`
	if err := analyze(t, src); err == nil {
		t.Fatal("expected DIV to reject REAL operands")
	}
}

func TestAnalyzeAllowsIntegerToRealAssignment(t *testing.T) {
	src := `MODULE Ok;
VAR x: REAL;
BEGIN
	x := 1
END Ok.
`
	if err := analyze(t, src); err != nil {
		t.Fatalf("expected INTEGER->REAL coercion to be accepted, got %v", err)
	}
}

func TestAnalyzeRejectsRealToIntegerAssignment(t *testing.T) {
	src := `MODULE Bad;
VAR x: INTEGER;
BEGIN
	x := 1.5
END Bad.
`
	if err := analyze(t, src); err == nil {
		t.Fatal("expected REAL->INTEGER assignment to be rejected")
	}
}

func TestAnalyzeAllowsMutualProcedureReferences(t *testing.T) {
	src := `MODULE Mutual;
PROCEDURE IsEven(n: INTEGER): INTEGER;
BEGIN
	IF n = 0 THEN
		RETURN 1
	END;
	RETURN IsOdd(n - 1)
END IsEven;

PROCEDURE IsOdd(n: INTEGER): INTEGER;
BEGIN
	IF n = 0 THEN
		RETURN 0
	END;
	RETURN IsEven(n - 1)
END IsOdd;

BEGIN
	WriteLn(IsEven(10))
END Mutual.
`
	if err := analyze(t, src); err != nil {
		t.Fatalf("expected forward-referenced mutual recursion to analyze cleanly, got %v", err)
	}
}

func TestAnalyzeRejectsMissingReturn(t *testing.T) {
	src := `MODULE Bad;
PROCEDURE F(x: INTEGER): INTEGER;
BEGIN
	x := x + 1
END F;
BEGIN
	WriteLn(F(1))
END Bad.
`
	if err := analyze(t, src); err == nil {
		t.Fatal("expected missing-RETURN error")
	}
}

func TestAnalyzeRejectsWriteOnArray(t *testing.T) {
	src := `MODULE Bad;
VAR a: ARRAY 3 OF INTEGER;
BEGIN
	Write(a)
END Bad.
`
	if err := analyze(t, src); err == nil {
		t.Fatal("expected Write on an array argument to be rejected")
	}
}

func TestAnalyzeRejectsArrayRankMismatch(t *testing.T) {
	src := `MODULE Bad;
VAR a: ARRAY 3 OF INTEGER;
BEGIN
	a[0, 0] := 1
END Bad.
`
	if err := analyze(t, src); err == nil {
		t.Fatal("expected over-indexing a single-dim array to be rejected")
	}
}

