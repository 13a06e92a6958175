package ast

import (
	"bytes"
	"fmt"

	"github.com/oberon-go/oberonc/internal/token"
)

// Assignment stores the value of Value into the location named by
// Target: spec.md §3 "Assignment".
type Assignment struct {
	TargetExpr *Designator
	Value      Expression
}

func (a *Assignment) Pos() token.Position { return a.TargetExpr.Pos() }
func (a *Assignment) String() string      { return fmt.Sprintf("%s := %s;\n", a.TargetExpr, a.Value) }
func (*Assignment) statementNode()        {}

// ProcCall is a call used in statement position (its result, if any, is
// discarded): spec.md §3 "ProcCall". Write and WriteLn are ordinary
// ProcCall nodes resolved to built-ins by the analyzer and lowered
// specially by the emitter (spec.md §4.4).
type ProcCall struct {
	CalleePos token.Position
	Callee    string
	Args      []Expression
	Resolved  any
}

func (p *ProcCall) Pos() token.Position { return p.CalleePos }
func (p *ProcCall) String() string {
	var out bytes.Buffer
	out.WriteString(p.Callee)
	out.WriteString("(")
	for i, a := range p.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(");\n")
	return out.String()
}
func (*ProcCall) statementNode() {}

// ReturnStmt is `RETURN expr?`: spec.md §3 "Return". Value is nil for a
// bare `RETURN` inside a procedure with no declared return type.
type ReturnStmt struct {
	KeywordPos token.Position
	Value      Expression // nil if none
}

func (r *ReturnStmt) Pos() token.Position { return r.KeywordPos }
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "RETURN;\n"
	}
	return fmt.Sprintf("RETURN %s;\n", r.Value)
}
func (*ReturnStmt) statementNode() {}
