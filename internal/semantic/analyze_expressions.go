package semantic

import (
	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/token"
	"github.com/oberon-go/oberonc/internal/types"
)

// assignable reports whether a value of type from may be stored into (or
// passed where) a location of type to, per spec.md §4.3 "assignment
// compatibility": identical types, or INTEGER promoted to REAL.
func assignable(to, from types.Type) bool {
	if to == nil || from == nil {
		return false
	}
	if to.Equals(from) {
		return true
	}
	return to.Equals(types.REAL) && from.Equals(types.INTEGER)
}

// analyzeExpr type-checks expr, annotates it with its resolved type via
// SetType, and returns that type (nil on error, with a diagnostic already
// recorded).
func (a *Analyzer) analyzeExpr(expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case *ast.Literal:
		return a.analyzeLiteral(e)
	case *ast.Designator:
		return a.analyzeDesignator(e)
	case *ast.UnaryExpr:
		return a.analyzeUnaryExpr(e)
	case *ast.BinaryExpr:
		return a.analyzeBinaryExpr(e)
	case *ast.FuncCall:
		return a.analyzeFuncCall(e)
	}
	a.fail(newError(ErrTypeMismatch, expr.Pos(), "unsupported expression"))
	return nil
}

func (a *Analyzer) analyzeLiteral(l *ast.Literal) types.Type {
	var t types.Type
	switch l.Kind {
	case ast.IntLiteral:
		t = types.INTEGER
	case ast.RealLiteral:
		t = types.REAL
	default:
		t = types.STRING
	}
	l.SetType(t)
	return t
}

func (a *Analyzer) analyzeDesignator(d *ast.Designator) types.Type {
	sym, ok := a.scope.Resolve(d.Name)
	if !ok {
		a.fail(newError(ErrUndeclared, d.Pos(), "undeclared identifier %q", d.Name))
		return nil
	}
	if sym.Kind == ProcSymbol {
		a.fail(newError(ErrTypeMismatch, d.Pos(), "%q is a procedure, not a value", d.Name))
		return nil
	}
	d.Resolved = sym

	if len(d.Indices) == 0 {
		d.SetType(sym.Type)
		return sym.Type
	}

	rank := types.Dimensions(sym.Type)
	if len(d.Indices) > rank {
		a.fail(newError(ErrArrayRank, d.Pos(), "%q has %d dimension(s), %d given", d.Name, rank, len(d.Indices)))
		return nil
	}
	for _, ix := range d.Indices {
		ixType := a.analyzeExpr(ix)
		if ixType == nil {
			return nil
		}
		if !ixType.Equals(types.INTEGER) {
			a.fail(newError(ErrTypeMismatch, ix.Pos(), "array index must be INTEGER, got %s", ixType))
			return nil
		}
	}
	elemType := types.ElementAfter(sym.Type, len(d.Indices))
	d.SetType(elemType)
	return elemType
}

func (a *Analyzer) analyzeUnaryExpr(u *ast.UnaryExpr) types.Type {
	operandType := a.analyzeExpr(u.Operand)
	if operandType == nil {
		return nil
	}
	if !types.IsNumericType(operandType) {
		a.fail(newError(ErrTypeMismatch, u.Pos(), "unary %s requires a numeric operand, got %s", u.Op, operandType))
		return nil
	}
	u.SetType(operandType)
	return operandType
}

func (a *Analyzer) analyzeBinaryExpr(b *ast.BinaryExpr) types.Type {
	leftType := a.analyzeExpr(b.Left)
	rightType := a.analyzeExpr(b.Right)
	if leftType == nil || rightType == nil {
		return nil
	}

	switch b.Op {
	case ast.OpAnd, ast.OpOr:
		if !leftType.Equals(types.BOOLEAN) || !rightType.Equals(types.BOOLEAN) {
			a.fail(newError(ErrTypeMismatch, b.Pos(), "%s requires BOOLEAN operands, got %s and %s", b.Op, leftType, rightType))
			return nil
		}
		b.SetType(types.BOOLEAN)
		return types.BOOLEAN

	case ast.OpDivI, ast.OpMod:
		if !leftType.Equals(types.INTEGER) || !rightType.Equals(types.INTEGER) {
			a.fail(newError(ErrTypeMismatch, b.Pos(), "%s requires INTEGER operands, got %s and %s", b.Op, leftType, rightType))
			return nil
		}
		b.SetType(types.INTEGER)
		return types.INTEGER

	case ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpLeq, ast.OpGt, ast.OpGeq:
		if leftType.Equals(types.STRING) && rightType.Equals(types.STRING) {
			b.SetType(types.BOOLEAN)
			return types.BOOLEAN
		}
		if !types.IsNumericType(leftType) || !types.IsNumericType(rightType) {
			a.fail(newError(ErrTypeMismatch, b.Pos(), "%s requires comparable operands, got %s and %s", b.Op, leftType, rightType))
			return nil
		}
		b.SetType(types.BOOLEAN)
		return types.BOOLEAN

	case ast.OpDiv:
		if !types.IsNumericType(leftType) || !types.IsNumericType(rightType) {
			a.fail(newError(ErrTypeMismatch, b.Pos(), "%s requires numeric operands, got %s and %s", b.Op, leftType, rightType))
			return nil
		}
		// / always yields REAL, even for two INTEGER operands (spec.md
		// §4.3) — unlike + - *, which follow ordinary INTEGER/REAL
		// promotion.
		b.SetType(types.REAL)
		return types.REAL

	default: // + - *
		if !types.IsNumericType(leftType) || !types.IsNumericType(rightType) {
			a.fail(newError(ErrTypeMismatch, b.Pos(), "%s requires numeric operands, got %s and %s", b.Op, leftType, rightType))
			return nil
		}
		result := types.PromoteTypes(leftType, rightType)
		b.SetType(result)
		return result
	}
}

func (a *Analyzer) analyzeFuncCall(f *ast.FuncCall) types.Type {
	sym, ok := a.resolveProc(f.Callee)
	if !ok {
		a.fail(newError(ErrUndeclared, f.Pos(), "undeclared procedure %q", f.Callee))
		return nil
	}
	if sym.ReturnType == nil {
		a.fail(newError(ErrNotAProcedure, f.Pos(), "%q has no return value and cannot be used in an expression", f.Callee))
		return nil
	}
	if !a.checkArgs(f.Pos(), f.Callee, sym, f.Args) {
		return nil
	}
	f.Resolved = sym
	f.SetType(sym.ReturnType)
	return sym.ReturnType
}

// checkArgs type-checks a call's argument list against sym's declared
// parameters: arity, then per-position assignment compatibility.
func (a *Analyzer) checkArgs(pos token.Position, name string, sym *Symbol, args []ast.Expression) bool {
	if len(args) != len(sym.ParamTypes) {
		a.fail(newError(ErrArity, pos, "%q expects %d argument(s), got %d", name, len(sym.ParamTypes), len(args)))
		return false
	}
	for i, arg := range args {
		argType := a.analyzeExpr(arg)
		if argType == nil {
			return false
		}
		if !assignable(sym.ParamTypes[i], argType) {
			a.fail(newError(ErrTypeMismatch, arg.Pos(), "argument %d of %q: expected %s, got %s", i+1, name, sym.ParamTypes[i], argType))
			return false
		}
	}
	return true
}
