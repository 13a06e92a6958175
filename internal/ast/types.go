package ast

import (
	"fmt"
	"strings"
)

// TypeExpr is the surface syntax for a type in a VarDecl/Param/array
// element position: spec.md §3 "Type". It is resolved to an
// internal/types.Type during semantic analysis.
type TypeExpr interface {
	typeExprNode()
	String() string
}

// NamedType is one of the three scalar type keywords.
type NamedType struct {
	Name string // "INTEGER" | "REAL" | "STRING"
}

func (*NamedType) typeExprNode()    {}
func (n *NamedType) String() string { return n.Name }

// ArrayTypeExpr is the surface syntax for an array type. Lengths holds
// one entry per dimension as written (`ARRAY n, m OF T` or nested
// `ARRAY n OF ARRAY m OF T` both populate this the same way once parsed);
// semantic analysis canonicalizes it to a right-associated nested
// types.ArrayType, per spec.md §4.2 "Multi-dimensional arrays".
type ArrayTypeExpr struct {
	Lengths []int
	Element TypeExpr
}

func (*ArrayTypeExpr) typeExprNode() {}
func (a *ArrayTypeExpr) String() string {
	dims := make([]string, len(a.Lengths))
	for i, n := range a.Lengths {
		dims[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("ARRAY %s OF %s", strings.Join(dims, ", "), a.Element)
}
