package interp_test

import (
	"bytes"
	"testing"

	"github.com/oberon-go/oberonc/internal/interp"
	"github.com/oberon-go/oberonc/internal/lexer"
	"github.com/oberon-go/oberonc/internal/parser"
	"github.com/oberon-go/oberonc/internal/semantic"
)

func runSource(t *testing.T, src string) string {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	module := p.ParseModule()
	if err := p.Err(); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := semantic.NewAnalyzer().Analyze(module); err != nil {
		t.Fatalf("semantic error: %v", err)
	}

	var out bytes.Buffer
	if err := interp.New(&out).Run(module); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return out.String()
}

func TestInterpHelloWorld(t *testing.T) {
	got := runSource(t, `MODULE Hello;
BEGIN
	WriteLn("Hello, World!")
END Hello.
`)
	want := "Hello, World!\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpSumOfTwoVars(t *testing.T) {
	got := runSource(t, `MODULE Sum;
VAR a, b, c: INTEGER;
BEGIN
	a := 3;
	b := 4;
	c := a + b;
	WriteLn(c)
END Sum.
`)
	if got != "7\n" {
		t.Fatalf("got %q, want %q", got, "7\n")
	}
}

func TestInterpForLoopSum(t *testing.T) {
	got := runSource(t, `MODULE LoopSum;
VAR i, total: INTEGER;
BEGIN
	total := 0;
	FOR i := 1 TO 10 DO
		total := total + i
	END;
	WriteLn(total)
END LoopSum.
`)
	if got != "55\n" {
		t.Fatalf("got %q, want %q", got, "55\n")
	}
}

func TestInterpProcedureWithReturn(t *testing.T) {
	got := runSource(t, `MODULE Squares;
PROCEDURE Square(x: INTEGER): INTEGER;
BEGIN
	RETURN x * x
END Square;
BEGIN
	WriteLn(Square(5))
END Squares.
`)
	if got != "25\n" {
		t.Fatalf("got %q, want %q", got, "25\n")
	}
}

func TestInterpRecursiveFactorial(t *testing.T) {
	got := runSource(t, `MODULE Fact;
PROCEDURE Factorial(n: INTEGER): INTEGER;
BEGIN
	IF n = 0 THEN
		RETURN 1
	END;
	RETURN n * Factorial(n - 1)
END Factorial;
BEGIN
	WriteLn(Factorial(5))
END Fact.
`)
	if got != "120\n" {
		t.Fatalf("got %q, want %q", got, "120\n")
	}
}

func TestInterpMultiDimArray(t *testing.T) {
	got := runSource(t, `MODULE Grid;
VAR m: ARRAY 2, 3 OF INTEGER;
BEGIN
	m[0, 0] := 1;
	m[1, 2] := 9;
	WriteLn(m[1, 2])
END Grid.
`)
	if got != "9\n" {
		t.Fatalf("got %q, want %q", got, "9\n")
	}
}

func TestInterpIntegerToRealPromotion(t *testing.T) {
	got := runSource(t, `MODULE Promote;
VAR x: REAL;
BEGIN
	x := 1;
	x := x + 1;
	WriteLn(x)
END Promote.
`)
	if got != "2.000000\n" {
		t.Fatalf("got %q, want %q", got, "2.000000\n")
	}
}

func TestInterpStringComparison(t *testing.T) {
	got := runSource(t, `MODULE Cmp;
BEGIN
	IF "abc" < "abd" THEN
		WriteLn("less")
	ELSE
		WriteLn("not less")
	END
END Cmp.
`)
	if got != "less\n" {
		t.Fatalf("got %q, want %q", got, "less\n")
	}
}
