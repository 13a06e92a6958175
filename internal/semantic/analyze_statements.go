package semantic

import (
	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/types"
)

// builtinProcs names the two output procedures every module may call
// without declaring them (spec.md §4.4 "Write restricted to scalars and
// string literals"). They are not ordinary Symbols since they have no
// fixed arity or parameter type.
var builtinProcs = map[string]bool{"Write": true, "WriteLn": true}

func (a *Analyzer) analyzeStmtList(stmts []ast.Statement) {
	for _, s := range stmts {
		a.analyzeStmt(s)
		if a.failed() {
			return
		}
	}
}

func (a *Analyzer) analyzeStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		a.analyzeAssignment(s)
	case *ast.ProcCall:
		a.analyzeProcCall(s)
	case *ast.IfStmt:
		a.analyzeIf(s)
	case *ast.WhileStmt:
		a.analyzeWhile(s)
	case *ast.ForStmt:
		a.analyzeFor(s)
	case *ast.ReturnStmt:
		a.analyzeReturn(s)
	default:
		a.fail(newError(ErrTypeMismatch, stmt.Pos(), "unsupported statement"))
	}
}

func (a *Analyzer) analyzeAssignment(s *ast.Assignment) {
	targetType := a.analyzeDesignator(s.TargetExpr)
	if targetType == nil {
		return
	}
	if sym, ok := s.TargetExpr.Resolved.(*Symbol); ok && sym.Kind == ConstSymbol {
		a.fail(newError(ErrTypeMismatch, s.Pos(), "cannot assign to constant %q", sym.Name))
		return
	}
	valueType := a.analyzeExpr(s.Value)
	if valueType == nil {
		return
	}
	if !assignable(targetType, valueType) {
		a.fail(newError(ErrTypeMismatch, s.Pos(), "cannot assign %s to %s", valueType, targetType))
	}
}

func (a *Analyzer) analyzeProcCall(s *ast.ProcCall) {
	if builtinProcs[s.Callee] {
		a.analyzeWriteCall(s)
		return
	}
	sym, ok := a.resolveProc(s.Callee)
	if !ok {
		a.fail(newError(ErrUndeclared, s.Pos(), "undeclared procedure %q", s.Callee))
		return
	}
	if !a.checkArgs(s.Pos(), s.Callee, sym, s.Args) {
		return
	}
	s.Resolved = sym
}

// analyzeWriteCall checks a call to the Write/WriteLn builtins: each
// argument must be a scalar (INTEGER/REAL/BOOLEAN/STRING) expression, per
// spec.md §4.4. WriteLn additionally accepts being called with zero
// arguments.
func (a *Analyzer) analyzeWriteCall(s *ast.ProcCall) {
	if s.Callee == "Write" && len(s.Args) != 1 {
		a.fail(newError(ErrArity, s.Pos(), "Write expects exactly 1 argument, got %d", len(s.Args)))
		return
	}
	if s.Callee == "WriteLn" && len(s.Args) > 1 {
		a.fail(newError(ErrArity, s.Pos(), "WriteLn expects at most 1 argument, got %d", len(s.Args)))
		return
	}
	for _, arg := range s.Args {
		argType := a.analyzeExpr(arg)
		if argType == nil {
			return
		}
		if types.Dimensions(argType) > 0 {
			a.fail(newError(ErrTypeMismatch, arg.Pos(), "%s cannot print a whole array", s.Callee))
			return
		}
	}
}

func (a *Analyzer) analyzeIf(s *ast.IfStmt) {
	if !a.requireBoolean(s.Cond) {
		return
	}
	a.analyzeStmtList(s.Then)
	if a.failed() || s.Else == nil {
		return
	}
	a.analyzeStmtList(s.Else)
}

func (a *Analyzer) analyzeWhile(s *ast.WhileStmt) {
	if !a.requireBoolean(s.Cond) {
		return
	}
	a.analyzeStmtList(s.Body)
}

func (a *Analyzer) analyzeFor(s *ast.ForStmt) {
	sym, ok := a.scope.Resolve(s.Var)
	if !ok {
		a.fail(newError(ErrUndeclared, s.Pos(), "undeclared identifier %q", s.Var))
		return
	}
	if !sym.Type.Equals(types.INTEGER) {
		a.fail(newError(ErrTypeMismatch, s.Pos(), "FOR variable %q must be INTEGER, got %s", s.Var, sym.Type))
		return
	}
	s.Resolved = sym

	startType := a.analyzeExpr(s.Start)
	if startType == nil {
		return
	}
	if !startType.Equals(types.INTEGER) {
		a.fail(newError(ErrTypeMismatch, s.Start.Pos(), "FOR start value must be INTEGER, got %s", startType))
		return
	}
	endType := a.analyzeExpr(s.End)
	if endType == nil {
		return
	}
	if !endType.Equals(types.INTEGER) {
		a.fail(newError(ErrTypeMismatch, s.End.Pos(), "FOR end value must be INTEGER, got %s", endType))
		return
	}
	a.analyzeStmtList(s.Body)
}

func (a *Analyzer) analyzeReturn(s *ast.ReturnStmt) {
	if a.currentProc == nil {
		a.fail(newError(ErrReturn, s.Pos(), "RETURN outside a procedure body"))
		return
	}
	want := a.currentProc.ReturnType
	if want == nil {
		if s.Value != nil {
			a.fail(newError(ErrReturn, s.Pos(), "procedure %q declares no return type but returns a value", a.currentProc.Name))
			return
		}
		a.currentHasReturn = true
		return
	}
	if s.Value == nil {
		a.fail(newError(ErrReturn, s.Pos(), "procedure %q must return a value of type %s", a.currentProc.Name, want))
		return
	}
	gotType := a.analyzeExpr(s.Value)
	if gotType == nil {
		return
	}
	if !assignable(want, gotType) {
		a.fail(newError(ErrReturn, s.Pos(), "procedure %q returns %s, expected %s", a.currentProc.Name, gotType, want))
		return
	}
	a.currentHasReturn = true
}

func (a *Analyzer) requireBoolean(expr ast.Expression) bool {
	t := a.analyzeExpr(expr)
	if t == nil {
		return false
	}
	if !t.Equals(types.BOOLEAN) {
		a.fail(newError(ErrTypeMismatch, expr.Pos(), "condition must be BOOLEAN, got %s", t))
		return false
	}
	return true
}
