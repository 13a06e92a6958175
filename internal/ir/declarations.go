package ir

import (
	"fmt"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/semantic"
)

// slotCounter disambiguates alloca register names within one function,
// since shadowed declarations in the source share a bare name.
type slotCounter struct{ n int }

func (c *slotCounter) next() int {
	c.n++
	return c.n - 1
}

// declareLocal allocates storage for sym and records the register name
// on sym.Slot, so later Designator lowering can find it.
func (e *Emitter) declareLocal(sym *semantic.Symbol, counter *slotCounter) {
	reg := fmt.Sprintf("%%v%d_%s", counter.next(), sym.Name)
	sym.Slot = reg
	e.emit("%s = alloca %s", reg, llvmType(sym.Type))
}

// emitProc lowers one PROCEDURE declaration to an LLVM function
// definition, appending it to e.funcs. Nested procedures declared in
// decl.Locals are emitted first, as independent top-level functions,
// since LLVM IR has no notion of function nesting (spec.md §3: nested
// procedures are a scoping concept only, not a codegen one).
func (e *Emitter) emitProc(decl *ast.ProcDecl) {
	for _, d := range decl.Locals {
		if nested, ok := d.(*ast.ProcDecl); ok {
			e.emitProc(nested)
		}
	}

	e.beginFunction()
	counter := &slotCounter{}

	sym := resolvedSymbol(decl.Resolved)
	retType := "void"
	e.curRetType = sym.ReturnType
	if sym.ReturnType != nil {
		retType = llvmType(sym.ReturnType)
	}

	paramDecls := make([]string, len(decl.Params))
	for i, p := range decl.Params {
		psym := resolvedSymbol(p.Resolved)
		paramDecls[i] = fmt.Sprintf("%s %%arg%d", llvmType(psym.Type), i)
	}

	e.emitLabel("entry")
	for i, p := range decl.Params {
		psym := resolvedSymbol(p.Resolved)
		e.declareLocal(psym, counter)
		e.emit("store %s %%arg%d, %s* %s", llvmType(psym.Type), i, llvmType(psym.Type), psym.Slot)
	}

	e.declareLocals(decl.Locals, counter)
	e.lowerStmtList(decl.Body)

	if !e.terminated {
		if retType == "void" {
			e.emit("ret void")
		} else {
			// The analyzer only proves a RETURN statement occurs
			// somewhere in the body, not that every path reaches one;
			// this is the fallback for a path it does not cover.
			e.emit("unreachable")
		}
	}

	e.funcs = append(e.funcs, fmt.Sprintf("define %s @%s(%s) {\n%s}\n",
		retType, decl.Name, joinParams(paramDecls), e.body.String()))
}

// declareLocals allocates storage for every VAR declared in locals.
// CONST declarations need no storage: their uses are lowered to
// immediate values directly from Symbol.ConstValue. Nested PROCEDURE
// declarations need no storage either — emitProc's own recursion into
// decl.Locals is what emits them, as independent functions.
func (e *Emitter) declareLocals(locals []ast.Decl, counter *slotCounter) {
	for _, d := range locals {
		vd, ok := d.(*ast.VarDecl)
		if !ok {
			continue
		}
		for _, res := range vd.Resolved {
			e.declareLocal(resolvedSymbol(res), counter)
		}
	}
}

// emitMain lowers the module's top-level var/const declarations and
// statement list into the program's entry point.
func (e *Emitter) emitMain() {
	e.beginFunction()
	e.curRetType = nil
	counter := &slotCounter{}

	e.emitLabel("entry")
	e.declareLocals(e.module.Decls, counter)
	e.lowerStmtList(e.module.Body)
	if !e.terminated {
		e.emit("ret i32 0")
	}

	e.funcs = append(e.funcs, fmt.Sprintf("define i32 @main() {\n%s}\n", e.body.String()))
}

func joinParams(params []string) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
