// Package ast defines the abstract syntax tree produced by the parser and
// annotated in place by the semantic analyzer.
//
// Node variants are plain structs grouped by concern across this file and
// control_flow.go / declarations.go / statements.go / expressions.go /
// types.go, rather than one inheritance hierarchy: exhaustive case
// analysis in the analyzer and the IR emitter stays a compile-time
// property (a missing type switch case is a bug you can see, not one you
// have to run into).
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/oberon-go/oberonc/internal/token"
	"github.com/oberon-go/oberonc/internal/types"
)

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is a Node that produces a value. ResolvedType is filled in
// by the semantic analyzer and read (never mutated) by the IR emitter.
type Expression interface {
	Node
	expressionNode()
	Type() types.Type
	SetType(types.Type)
}

// Statement is a Node that performs an action but produces no value.
type Statement interface {
	Node
	statementNode()
}

// Decl is a top-level or procedure-local declaration.
type Decl interface {
	Node
	declNode()
}

// exprBase centralizes the ResolvedType bookkeeping shared by every
// Expression variant below.
type exprBase struct {
	ResolvedType types.Type
}

func (e *exprBase) Type() types.Type     { return e.ResolvedType }
func (e *exprBase) SetType(t types.Type) { e.ResolvedType = t }

// Module is the root of the AST: spec.md §3 "Module". Name and
// TrailingName must match; mismatch is caught during parsing (spec.md
// §4.2) since the parser has the trailing identifier available right
// where the grammar production ends.
type Module struct {
	NamePos      token.Position
	Name         string
	Decls        []Decl
	Body         []Statement
	TrailingName string
}

func (m *Module) Pos() token.Position { return m.NamePos }

func (m *Module) String() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "MODULE %s;\n", m.Name)
	for _, d := range m.Decls {
		out.WriteString(d.String())
	}
	out.WriteString("BEGIN\n")
	for _, s := range m.Body {
		out.WriteString(stmtIndent(s))
	}
	fmt.Fprintf(&out, "END %s.\n", m.TrailingName)
	return out.String()
}

func stmtIndent(s Statement) string {
	lines := strings.Split(strings.TrimRight(s.String(), "\n"), "\n")
	var out bytes.Buffer
	for _, l := range lines {
		out.WriteString("\t")
		out.WriteString(l)
		out.WriteString("\n")
	}
	return out.String()
}

