package interp

import (
	"fmt"
	"io"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/semantic"
	"github.com/oberon-go/oberonc/internal/types"
)

// Interpreter executes an already-analyzed module's statements directly,
// writing Write/WriteLn output to the given writer.
type Interpreter struct {
	output io.Writer
	frames []frame
	procs  map[string]*ast.ProcDecl

	// returning/returnValue implement RETURN: set by a ReturnStmt and
	// checked after every statement, propagating up through nested
	// IF/WHILE/FOR bodies until the enclosing procedure call observes it
	// (mirrors the teacher's exitSignal style control-flow flags).
	returning   bool
	returnValue Value
}

// New creates an Interpreter writing to output.
func New(output io.Writer) *Interpreter {
	return &Interpreter{output: output, procs: make(map[string]*ast.ProcDecl)}
}

// Run executes m's top-level declarations and statement list. m must
// already be free of semantic errors.
func (i *Interpreter) Run(m *ast.Module) error {
	i.pushFrame()
	defer i.popFrame()

	for _, d := range m.Decls {
		switch decl := d.(type) {
		case *ast.ConstDecl:
			i.declare(resolvedSymbol(decl.Resolved), i.evalConst(resolvedSymbol(decl.Resolved)))
		case *ast.VarDecl:
			for _, res := range decl.Resolved {
				sym := resolvedSymbol(res)
				i.declare(sym, zeroOfType(sym.Type))
			}
		case *ast.ProcDecl:
			i.procs[decl.Name] = decl
		}
	}

	i.execList(m.Body)
	return nil
}

func resolvedSymbol(v any) *semantic.Symbol {
	sym, _ := v.(*semantic.Symbol)
	return sym
}

func (i *Interpreter) evalConst(sym *semantic.Symbol) Value {
	switch v := sym.ConstValue.(type) {
	case int32:
		return IntegerValue{Value: v}
	case float64:
		return RealValue{Value: v}
	case string:
		return StringValue{Value: v}
	}
	return zeroOfType(sym.Type)
}

// zeroOfType builds a zero-valued Value for t, recursively allocating
// array elements so an ArrayValue always has the right shape.
func zeroOfType(t types.Type) Value {
	if arr, ok := t.(*types.ArrayType); ok {
		elems := make([]Value, arr.Length)
		for i := range elems {
			elems[i] = zeroOfType(arr.Element)
		}
		return &ArrayValue{Elements: elems}
	}
	return zeroValue(t.String())
}

func (i *Interpreter) execList(stmts []ast.Statement) {
	for _, s := range stmts {
		i.exec(s)
		if i.returning {
			return
		}
	}
}

func (i *Interpreter) exec(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		i.execAssignment(s)
	case *ast.ProcCall:
		i.execProcCall(s)
	case *ast.IfStmt:
		i.execIf(s)
	case *ast.WhileStmt:
		i.execWhile(s)
	case *ast.ForStmt:
		i.execFor(s)
	case *ast.ReturnStmt:
		i.execReturn(s)
	}
}

func (i *Interpreter) execAssignment(s *ast.Assignment) {
	value := i.eval(s.Value)
	dst := i.addr(s.TargetExpr)
	*dst = coerce(value, *dst)
}

// coerce applies the INTEGER->REAL promotion that assignment
// compatibility allows (spec.md §4.3); every other case is already
// type-correct by construction of the analyzer.
func coerce(v Value, into Value) Value {
	if _, wantReal := into.(RealValue); wantReal {
		if iv, ok := v.(IntegerValue); ok {
			return RealValue{Value: float64(iv.Value)}
		}
	}
	return v
}

func (i *Interpreter) execIf(s *ast.IfStmt) {
	if i.eval(s.Cond).(BooleanValue).Value {
		i.execList(s.Then)
		return
	}
	if s.Else != nil {
		i.execList(s.Else)
	}
}

func (i *Interpreter) execWhile(s *ast.WhileStmt) {
	for i.eval(s.Cond).(BooleanValue).Value {
		i.execList(s.Body)
		if i.returning {
			return
		}
	}
}

func (i *Interpreter) execFor(s *ast.ForStmt) {
	sym := resolvedSymbol(s.Resolved)
	start := i.eval(s.Start).(IntegerValue).Value
	end := i.eval(s.End).(IntegerValue).Value
	box := i.box(sym)
	for v := start; v <= end; v++ {
		*box = IntegerValue{Value: v}
		i.execList(s.Body)
		if i.returning {
			return
		}
	}
}

func (i *Interpreter) execReturn(s *ast.ReturnStmt) {
	if s.Value != nil {
		i.returnValue = i.eval(s.Value)
	}
	i.returning = true
}

func (i *Interpreter) execProcCall(s *ast.ProcCall) {
	if s.Callee == "Write" || s.Callee == "WriteLn" {
		i.execWrite(s)
		return
	}
	i.callProc(resolvedSymbol(s.Resolved).Proc, s.Args)
}

func (i *Interpreter) execWrite(s *ast.ProcCall) {
	for _, arg := range s.Args {
		fmt.Fprint(i.output, i.eval(arg).String())
	}
	if s.Callee == "WriteLn" {
		fmt.Fprintln(i.output)
	}
}

// callProc evaluates args in the caller's frame, pushes a fresh frame
// for the callee, binds parameters, executes its body, and returns its
// result (nil for a procedure with no return type).
func (i *Interpreter) callProc(decl *ast.ProcDecl, args []ast.Expression) Value {
	argValues := make([]Value, len(args))
	for idx, a := range args {
		argValues[idx] = i.eval(a)
	}

	i.pushFrame()
	for idx, p := range decl.Params {
		psym := resolvedSymbol(p.Resolved)
		i.declare(psym, coerce(argValues[idx], zeroOfType(psym.Type)))
	}
	for _, d := range decl.Locals {
		switch local := d.(type) {
		case *ast.ConstDecl:
			i.declare(resolvedSymbol(local.Resolved), i.evalConst(resolvedSymbol(local.Resolved)))
		case *ast.VarDecl:
			for _, res := range local.Resolved {
				sym := resolvedSymbol(res)
				i.declare(sym, zeroOfType(sym.Type))
			}
		case *ast.ProcDecl:
			// Nested procedures need no storage: a call to one resolves
			// directly through the Symbol the analyzer attached to the
			// call site (sym.Proc), and box's innermost-first frame
			// search already exposes this frame's locals to it, since
			// this frame is still on the stack for any call reachable
			// from decl's own body (spec.md §3 static scope).
		}
	}

	wasReturning := i.returning
	i.returning = false
	i.returnValue = nil
	i.execList(decl.Body)
	result := i.returnValue
	i.returning = wasReturning
	i.popFrame()
	return result
}
