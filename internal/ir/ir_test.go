package ir_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/oberon-go/oberonc/internal/ir"
	"github.com/oberon-go/oberonc/internal/lexer"
	"github.com/oberon-go/oberonc/internal/parser"
	"github.com/oberon-go/oberonc/internal/semantic"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	module := p.ParseModule()
	if err := p.Err(); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	analyzer := semantic.NewAnalyzer()
	if err := analyzer.Analyze(module); err != nil {
		t.Fatalf("semantic error: %v", err)
	}
	text, err := ir.New(module).Emit()
	if err != nil {
		t.Fatalf("emit error: %v", err)
	}
	return text
}

func TestEmitHelloWorld(t *testing.T) {
	src := `MODULE Hello;
BEGIN
	WriteLn("Hello, World!")
END Hello.
`
	snaps.MatchSnapshot(t, compile(t, src))
}

func TestEmitSumOfTwoVars(t *testing.T) {
	src := `MODULE Sum;
VAR a, b, c: INTEGER;
BEGIN
	a := 3;
	b := 4;
	c := a + b;
	WriteLn(c)
END Sum.
`
	snaps.MatchSnapshot(t, compile(t, src))
}

func TestEmitForLoopSum(t *testing.T) {
	src := `MODULE LoopSum;
VAR i, total: INTEGER;
BEGIN
	total := 0;
	FOR i := 1 TO 10 DO
		total := total + i
	END;
	WriteLn(total)
END LoopSum.
`
	snaps.MatchSnapshot(t, compile(t, src))
}

func TestEmitProcedureWithReturn(t *testing.T) {
	src := `MODULE Squares;
PROCEDURE Square(x: INTEGER): INTEGER;
BEGIN
	RETURN x * x
END Square;
BEGIN
	WriteLn(Square(5))
END Squares.
`
	snaps.MatchSnapshot(t, compile(t, src))
}

func TestEmitMultiDimArray(t *testing.T) {
	src := `MODULE Grid;
VAR m: ARRAY 2, 3 OF INTEGER;
BEGIN
	m[0, 0] := 1;
	m[1, 2] := 9;
	WriteLn(m[1, 2])
END Grid.
`
	snaps.MatchSnapshot(t, compile(t, src))
}
