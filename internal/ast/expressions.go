package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/oberon-go/oberonc/internal/token"
)

// BinaryOpKind is the set of recognized binary operators, shared by the
// parser's precedence table (spec.md §4.2) and the emitter's lowering
// table (spec.md §4.4).
type BinaryOpKind string

const (
	OpAdd BinaryOpKind = "+"
	OpSub BinaryOpKind = "-"
	OpMul BinaryOpKind = "*"
	OpDiv BinaryOpKind = "/"
	OpDivI BinaryOpKind = "DIV"
	OpMod BinaryOpKind = "MOD"
	OpAnd BinaryOpKind = "AND"
	OpOr  BinaryOpKind = "OR"
	OpEq  BinaryOpKind = "="
	OpNeq BinaryOpKind = "#"
	OpLt  BinaryOpKind = "<"
	OpLeq BinaryOpKind = "<="
	OpGt  BinaryOpKind = ">"
	OpGeq BinaryOpKind = ">="
)

// IsRelational reports whether op is one of the six relational operators.
func (op BinaryOpKind) IsRelational() bool {
	switch op {
	case OpEq, OpNeq, OpLt, OpLeq, OpGt, OpGeq:
		return true
	}
	return false
}

// BinaryExpr is a left-associative binary operator application.
type BinaryExpr struct {
	exprBase
	OpPos token.Position
	Op    BinaryOpKind
	Left  Expression
	Right Expression
}

func (b *BinaryExpr) Pos() token.Position { return b.Left.Pos() }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
func (*BinaryExpr) expressionNode() {}

// UnaryOpKind is + or - applied to a single operand.
type UnaryOpKind string

const (
	UnaryPlus  UnaryOpKind = "+"
	UnaryMinus UnaryOpKind = "-"
)

// UnaryExpr is a unary sign applied to its operand.
type UnaryExpr struct {
	exprBase
	OpPos   token.Position
	Op      UnaryOpKind
	Operand Expression
}

func (u *UnaryExpr) Pos() token.Position { return u.OpPos }
func (u *UnaryExpr) String() string      { return fmt.Sprintf("(%s%s)", u.Op, u.Operand) }
func (*UnaryExpr) expressionNode()       {}

// Designator is a (possibly indexed) reference to a declared name:
// spec.md §3 "Designator". Indices is empty for a plain scalar reference;
// `a[i, j]` is parsed as two entries, sugar for `a[i][j]` (spec.md §4.2).
//
// Resolved is set by the semantic analyzer to the *semantic.Symbol this
// name refers to (spec.md §3 invariant: "every identifier reference
// resolves to exactly one declaration"). It is declared as `any` here to
// avoid an import cycle between ast and semantic; the emitter and the
// analyzer both type-assert it back to *semantic.Symbol.
type Designator struct {
	exprBase
	NamePos   token.Position
	Name      string
	Indices   []Expression
	Resolved  any
}

func (d *Designator) Pos() token.Position { return d.NamePos }
func (d *Designator) String() string {
	if len(d.Indices) == 0 {
		return d.Name
	}
	parts := make([]string, len(d.Indices))
	for i, ix := range d.Indices {
		parts[i] = ix.String()
	}
	return fmt.Sprintf("%s[%s]", d.Name, strings.Join(parts, ", "))
}
func (*Designator) expressionNode() {}

// LiteralKind tags which payload field of Literal is valid.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	RealLiteral
	StringLiteral
)

// Literal is a constant value appearing directly in source: spec.md §3
// "Literal". Exactly one of IntValue/RealValue/StrValue is meaningful,
// selected by Kind.
type Literal struct {
	exprBase
	LitPos    token.Position
	Kind      LiteralKind
	IntValue  int32
	RealValue float64
	StrValue  string
}

func (l *Literal) Pos() token.Position { return l.LitPos }
func (l *Literal) String() string {
	switch l.Kind {
	case IntLiteral:
		return fmt.Sprintf("%d", l.IntValue)
	case RealLiteral:
		return fmt.Sprintf("%g", l.RealValue)
	default:
		return fmt.Sprintf("%q", l.StrValue)
	}
}
func (*Literal) expressionNode() {}

// FuncCall is a call used in expression position, i.e. one whose callee
// is declared with a return type: spec.md §3 "FuncCall".
type FuncCall struct {
	exprBase
	CalleePos token.Position
	Callee    string
	Args      []Expression
	Resolved  any
}

func (f *FuncCall) Pos() token.Position { return f.CalleePos }
func (f *FuncCall) String() string {
	var out bytes.Buffer
	out.WriteString(f.Callee)
	out.WriteString("(")
	for i, a := range f.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}
func (*FuncCall) expressionNode() {}
