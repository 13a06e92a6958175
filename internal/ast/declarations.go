package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/oberon-go/oberonc/internal/token"
)

// ConstDecl declares a named compile-time constant: spec.md §3 "ConstDecl".
//
// Resolved is set by the semantic analyzer to the *semantic.Symbol this
// declaration introduces; declared as `any` to avoid an ast->semantic
// import cycle, as with Designator.Resolved.
type ConstDecl struct {
	NamePos  token.Position
	Name     string
	Value    Expression
	Resolved any
}

func (c *ConstDecl) Pos() token.Position { return c.NamePos }
func (c *ConstDecl) String() string      { return fmt.Sprintf("CONST %s = %s;\n", c.Name, c.Value) }
func (*ConstDecl) declNode()             {}

// VarDecl declares one or more names sharing a type: spec.md §3 "VarDecl".
// Names are ordered and must be unique within the enclosing scope.
//
// Resolved holds one *semantic.Symbol per entry of Names, in order, set
// by the analyzer; the emitter uses it to find each variable's storage
// slot without re-resolving names through a scope that no longer exists
// once analysis has finished.
type VarDecl struct {
	NamePos  token.Position
	Names    []string
	Type     TypeExpr
	Resolved []any
}

func (v *VarDecl) Pos() token.Position { return v.NamePos }
func (v *VarDecl) String() string {
	return fmt.Sprintf("VAR %s: %s;\n", strings.Join(v.Names, ", "), v.Type)
}
func (*VarDecl) declNode() {}

// Param is a single by-value procedure parameter. Resolved is set by the
// analyzer to the *semantic.Symbol representing this parameter inside
// the procedure's body scope.
type Param struct {
	Name     string
	Type     TypeExpr
	Resolved any
}

// ProcDecl declares a procedure: spec.md §3 "ProcDecl". ReturnType is nil
// for a procedure with no result. Resolved is set by the analyzer to this
// procedure's own *semantic.Symbol (its signature).
type ProcDecl struct {
	NamePos      token.Position
	Name         string
	Params       []*Param
	ReturnType   TypeExpr // nil if none
	Locals       []Decl
	Body         []Statement
	TrailingName string
	Resolved     any
}

func (p *ProcDecl) Pos() token.Position { return p.NamePos }

func (p *ProcDecl) String() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "PROCEDURE %s(", p.Name)
	for i, param := range p.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		fmt.Fprintf(&out, "%s: %s", param.Name, param.Type)
	}
	out.WriteString(")")
	if p.ReturnType != nil {
		fmt.Fprintf(&out, ": %s", p.ReturnType)
	}
	out.WriteString(";\n")
	for _, d := range p.Locals {
		out.WriteString(d.String())
	}
	out.WriteString("BEGIN\n")
	for _, s := range p.Body {
		out.WriteString(stmtIndent(s))
	}
	fmt.Fprintf(&out, "END %s;\n", p.TrailingName)
	return out.String()
}
func (*ProcDecl) declNode() {}
