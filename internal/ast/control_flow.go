package ast

import (
	"bytes"
	"fmt"

	"github.com/oberon-go/oberonc/internal/token"
)

// IfStmt is `IF cond THEN ... ELSE ... END`: spec.md §3 "If". Else is nil
// when there is no ELSE branch.
type IfStmt struct {
	KeywordPos token.Position
	Cond       Expression
	Then       []Statement
	Else       []Statement // nil if no ELSE branch
}

func (i *IfStmt) Pos() token.Position { return i.KeywordPos }
func (i *IfStmt) String() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "IF %s THEN\n", i.Cond)
	for _, s := range i.Then {
		out.WriteString(stmtIndent(s))
	}
	if i.Else != nil {
		out.WriteString("ELSE\n")
		for _, s := range i.Else {
			out.WriteString(stmtIndent(s))
		}
	}
	out.WriteString("END;\n")
	return out.String()
}
func (*IfStmt) statementNode() {}

// WhileStmt is `WHILE cond DO ... END`: spec.md §3 "While". The
// condition is re-evaluated on every iteration (spec.md §4.4).
type WhileStmt struct {
	KeywordPos token.Position
	Cond       Expression
	Body       []Statement
}

func (w *WhileStmt) Pos() token.Position { return w.KeywordPos }
func (w *WhileStmt) String() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "WHILE %s DO\n", w.Cond)
	for _, s := range w.Body {
		out.WriteString(stmtIndent(s))
	}
	out.WriteString("END;\n")
	return out.String()
}
func (*WhileStmt) statementNode() {}

// ForStmt is `FOR v := start TO end DO ... END`: spec.md §3 "For". The
// bound is inclusive and evaluated once, per spec.md §4.4 and the
// "FOR inclusivity" law in spec.md §8.
type ForStmt struct {
	KeywordPos token.Position
	Var        string
	Start      Expression
	End        Expression
	Body       []Statement
	Resolved   any // the loop variable's *semantic.Symbol
}

func (f *ForStmt) Pos() token.Position { return f.KeywordPos }
func (f *ForStmt) String() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "FOR %s := %s TO %s DO\n", f.Var, f.Start, f.End)
	for _, s := range f.Body {
		out.WriteString(stmtIndent(s))
	}
	out.WriteString("END;\n")
	return out.String()
}
func (*ForStmt) statementNode() {}
