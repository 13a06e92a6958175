// Package semantic type-checks and scope-resolves the AST produced by
// the parser, per the rules in spec.md §4.3. The Analyzer is a value
// that owns its own scope stack — no hidden global state, matching the
// teacher's internal/semantic.Analyzer / SymbolTable design.
package semantic

import (
	"github.com/oberon-go/oberonc/internal/ast"
)

// Analyzer walks a *ast.Module, annotating Designator/FuncCall/ProcCall
// nodes with resolved Symbols and Expression nodes with inferred types.
type Analyzer struct {
	errs []*Error

	global *Scope
	scope  *Scope // current scope

	// currentProc and currentHasReturn track the RETURN-presence check
	// for the procedure body currently being analyzed (spec.md §4.3
	// "Return: presence required if return type declared").
	currentProc      *Symbol
	currentHasReturn bool
}

// NewAnalyzer creates an Analyzer with a fresh global scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		global: NewScope(nil),
	}
}

// Errors returns every semantic error accumulated. Analyze aborts at the
// first one (spec.md §7 policy: "the first error of any kind aborts the
// pipeline"), so in practice this slice has at most one entry; it is kept
// as a slice to mirror the teacher's AnalysisError shape.
func (a *Analyzer) Errors() []*Error { return a.errs }

func (a *Analyzer) fail(e *Error) {
	a.errs = append(a.errs, e)
}

func (a *Analyzer) failed() bool { return len(a.errs) > 0 }

// Analyze type-checks and resolves m in place. Check Errors() afterward;
// a non-nil return is shorthand for len(Errors()) > 0.
func (a *Analyzer) Analyze(m *ast.Module) error {
	a.scope = a.global

	if m.Name != m.TrailingName {
		a.fail(newError(ErrTrailingName, m.Pos(), "module trailing name %q does not match module name %q", m.TrailingName, m.Name))
		return a.errs[0]
	}

	// First pass: declare every top-level procedure signature so that
	// mutual forward references between procedures resolve (a procedure may
	// call one declared after it, per ordinary Oberon scoping).
	for _, d := range m.Decls {
		if proc, ok := d.(*ast.ProcDecl); ok {
			a.declareProcSignature(proc, a.global)
			if a.failed() {
				return a.errs[0]
			}
		}
	}

	for _, d := range m.Decls {
		switch decl := d.(type) {
		case *ast.ConstDecl:
			a.analyzeConstDecl(decl)
		case *ast.VarDecl:
			a.analyzeVarDecl(decl, a.scope)
		case *ast.ProcDecl:
			a.analyzeProcBody(decl, a.global)
		}
		if a.failed() {
			return a.errs[0]
		}
	}

	a.analyzeStmtList(m.Body)
	if a.failed() {
		return a.errs[0]
	}
	return nil
}
