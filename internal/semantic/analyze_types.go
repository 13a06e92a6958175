package semantic

import (
	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/types"
)

// resolveType canonicalizes surface type syntax to an internal/types.Type,
// per spec.md §4.3 "Type resolution". Array types are canonicalized to
// right-associated nested form: `ARRAY n, m OF T` and `ARRAY n OF ARRAY m
// OF T` both resolve to the identical *types.ArrayType tree.
func (a *Analyzer) resolveType(t ast.TypeExpr) types.Type {
	switch te := t.(type) {
	case *ast.NamedType:
		switch te.Name {
		case "INTEGER":
			return types.INTEGER
		case "REAL":
			return types.REAL
		case "STRING":
			return types.STRING
		}
		return nil
	case *ast.ArrayTypeExpr:
		elem := a.resolveType(te.Element)
		if elem == nil {
			return nil
		}
		// Build right-associated: the last length wraps the element
		// type first, so ARRAY 2, 3 OF INTEGER becomes
		// ARRAY 2 OF ARRAY 3 OF INTEGER.
		result := elem
		for i := len(te.Lengths) - 1; i >= 0; i-- {
			result = types.NewArrayType(result, te.Lengths[i])
		}
		return result
	}
	return nil
}
