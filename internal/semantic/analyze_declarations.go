package semantic

import (
	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/types"
)

// analyzeConstDecl checks a CONST declaration: spec.md §4.3 "Constant
// initializers must be compile-time evaluable (literal or reference to
// previously declared constant)."
func (a *Analyzer) analyzeConstDecl(decl *ast.ConstDecl) {
	value, typ, ok := a.evalConstExpr(decl.Value)
	if !ok {
		return // evalConstExpr already recorded the error
	}
	sym := &Symbol{Name: decl.Name, Kind: ConstSymbol, Type: typ, ConstValue: value}
	if !a.scope.Define(sym) {
		a.fail(newError(ErrRedeclared, decl.Pos(), "%q is already declared in this scope", decl.Name))
		return
	}
	decl.Resolved = sym
	decl.Value.SetType(typ)
}

// evalConstExpr evaluates a compile-time-constant expression, the only
// kind CONST initializers may use.
func (a *Analyzer) evalConstExpr(expr ast.Expression) (any, types.Type, bool) {
	switch e := expr.(type) {
	case *ast.Literal:
		switch e.Kind {
		case ast.IntLiteral:
			e.SetType(types.INTEGER)
			return e.IntValue, types.INTEGER, true
		case ast.RealLiteral:
			e.SetType(types.REAL)
			return e.RealValue, types.REAL, true
		default:
			e.SetType(types.STRING)
			return e.StrValue, types.STRING, true
		}
	case *ast.Designator:
		if len(e.Indices) > 0 {
			break
		}
		sym, ok := a.scope.Resolve(e.Name)
		if !ok {
			a.fail(newError(ErrUndeclared, e.Pos(), "undeclared identifier %q", e.Name))
			return nil, nil, false
		}
		if sym.Kind != ConstSymbol {
			break
		}
		e.Resolved = sym
		e.SetType(sym.Type)
		return sym.ConstValue, sym.Type, true
	case *ast.UnaryExpr:
		val, typ, ok := a.evalConstExpr(e.Operand)
		if !ok {
			break
		}
		if e.Op == ast.UnaryMinus {
			switch v := val.(type) {
			case int32:
				e.SetType(typ)
				return -v, typ, true
			case float64:
				e.SetType(typ)
				return -v, typ, true
			}
		} else {
			e.SetType(typ)
			return val, typ, true
		}
	}
	a.fail(newError(ErrNotConstant, expr.Pos(), "constant initializer must be a literal or a previously declared constant"))
	return nil, nil, false
}

// analyzeVarDecl declares each name in decl.Names into scope, rejecting
// duplicates (spec.md §4.3 "rejects duplicate names in the same frame").
func (a *Analyzer) analyzeVarDecl(decl *ast.VarDecl, scope *Scope) {
	typ := a.resolveType(decl.Type)
	if typ == nil {
		a.fail(newError(ErrTypeMismatch, decl.Pos(), "invalid type in declaration of %v", decl.Names))
		return
	}
	decl.Resolved = make([]any, len(decl.Names))
	for i, name := range decl.Names {
		sym := &Symbol{Name: name, Kind: VarSymbol, Type: typ}
		if !scope.Define(sym) {
			a.fail(newError(ErrRedeclared, decl.Pos(), "%q is already declared in this scope", name))
			return
		}
		decl.Resolved[i] = sym
	}
}

// declareProcSignature inserts a ProcSymbol into scope before any
// procedure body is analyzed, so mutually (or self-) recursive calls
// resolve. This mirrors spec.md §3 Symbol: "for procs: signature and a
// forward pointer to its declaration." scope is the global scope for a
// top-level procedure, or the enclosing procedure's own scope for a
// nested one (spec.md §3: "Nested procedures see enclosing procedure
// locals").
func (a *Analyzer) declareProcSignature(decl *ast.ProcDecl, scope *Scope) {
	paramTypes := make([]types.Type, len(decl.Params))
	for i, p := range decl.Params {
		t := a.resolveType(p.Type)
		if t == nil {
			a.fail(newError(ErrTypeMismatch, decl.Pos(), "invalid parameter type for %q", p.Name))
			return
		}
		paramTypes[i] = t
	}

	var retType types.Type
	if decl.ReturnType != nil {
		retType = a.resolveType(decl.ReturnType)
		if retType == nil {
			a.fail(newError(ErrTypeMismatch, decl.Pos(), "invalid return type for procedure %q", decl.Name))
			return
		}
	}

	sym := &Symbol{
		Name:       decl.Name,
		Kind:       ProcSymbol,
		Proc:       decl,
		ReturnType: retType,
		ParamTypes: paramTypes,
	}
	if !scope.Define(sym) {
		a.fail(newError(ErrRedeclared, decl.Pos(), "%q is already declared in this scope", decl.Name))
		return
	}
	decl.Resolved = sym
}

// resolveProc looks up name as a procedure via the ordinary scope chain
// (not a flat name table), so a nested procedure correctly shadows an
// outer one of the same name and is itself invisible once its enclosing
// procedure's scope is gone — spec.md §3's static scoping rule applied
// to call resolution, not just variable lookup.
func (a *Analyzer) resolveProc(name string) (*Symbol, bool) {
	sym, ok := a.scope.Resolve(name)
	if !ok || sym.Kind != ProcSymbol {
		return nil, false
	}
	return sym, true
}

// analyzeProcBody opens a new scope, chained under parentScope, for
// decl's parameters and locals, checks the trailing name, analyzes
// locals and statements, and enforces the RETURN-presence rule.
// parentScope is the global scope for a top-level procedure, or the
// enclosing procedure's scope for a nested one, giving nested
// procedures static-scope visibility into the locals that enclose them.
func (a *Analyzer) analyzeProcBody(decl *ast.ProcDecl, parentScope *Scope) {
	if decl.Name != decl.TrailingName {
		a.fail(newError(ErrTrailingName, decl.Pos(), "procedure trailing name %q does not match procedure name %q", decl.TrailingName, decl.Name))
		return
	}

	sym := decl.Resolved.(*Symbol)
	procScope := NewScope(parentScope)
	for i, p := range decl.Params {
		paramSym := &Symbol{Name: p.Name, Kind: ParamSymbol, Type: sym.ParamTypes[i]}
		if !procScope.Define(paramSym) {
			a.fail(newError(ErrRedeclared, decl.Pos(), "parameter %q is already declared", p.Name))
			return
		}
		p.Resolved = paramSym
	}

	prevScope, prevProc, prevHasReturn := a.scope, a.currentProc, a.currentHasReturn
	a.scope, a.currentProc, a.currentHasReturn = procScope, sym, false

	// Nested procedure signatures are declared up front, same as at
	// module level, so nested procedures may call each other (or
	// themselves) regardless of declaration order.
	for _, d := range decl.Locals {
		if nested, ok := d.(*ast.ProcDecl); ok {
			a.declareProcSignature(nested, procScope)
			if a.failed() {
				a.scope, a.currentProc, a.currentHasReturn = prevScope, prevProc, prevHasReturn
				return
			}
		}
	}

	for _, d := range decl.Locals {
		switch local := d.(type) {
		case *ast.ConstDecl:
			a.analyzeConstDecl(local)
		case *ast.VarDecl:
			a.analyzeVarDecl(local, a.scope)
		case *ast.ProcDecl:
			a.analyzeProcBody(local, procScope)
		}
		if a.failed() {
			a.scope, a.currentProc, a.currentHasReturn = prevScope, prevProc, prevHasReturn
			return
		}
	}

	a.analyzeStmtList(decl.Body)

	if !a.failed() && sym.ReturnType != nil && !a.currentHasReturn {
		a.fail(newError(ErrReturn, decl.Pos(), "procedure %q declares a return type but has no RETURN statement", decl.Name))
	}

	a.scope, a.currentProc, a.currentHasReturn = prevScope, prevProc, prevHasReturn
}
