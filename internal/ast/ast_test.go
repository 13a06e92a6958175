package ast

import (
	"testing"

	"github.com/oberon-go/oberonc/internal/token"
)

func TestModuleString(t *testing.T) {
	m := &Module{
		Name: "H",
		Body: []Statement{
			&ProcCall{Callee: "Write", Args: []Expression{
				&Literal{Kind: StringLiteral, StrValue: "Hi"},
			}},
		},
		TrailingName: "H",
	}
	got := m.String()
	want := "MODULE H;\nBEGIN\n\tWrite(\"Hi\");\nEND H.\n"
	if got != want {
		t.Fatalf("String() mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestDesignatorStringWithIndices(t *testing.T) {
	d := &Designator{
		Name: "m",
		Indices: []Expression{
			&Literal{Kind: IntLiteral, IntValue: 1},
			&Literal{Kind: IntLiteral, IntValue: 0},
		},
	}
	if got, want := d.String(), "m[1, 0]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBinaryExprPos(t *testing.T) {
	left := &Literal{LitPos: token.Position{Line: 3, Column: 5}, Kind: IntLiteral, IntValue: 1}
	right := &Literal{LitPos: token.Position{Line: 3, Column: 9}, Kind: IntLiteral, IntValue: 2}
	b := &BinaryExpr{Op: OpAdd, Left: left, Right: right}
	if b.Pos() != left.Pos() {
		t.Fatalf("expected BinaryExpr.Pos() to be left operand's position")
	}
}
