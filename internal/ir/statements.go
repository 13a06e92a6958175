package ir

import (
	"fmt"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/types"
)

func (e *Emitter) lowerStmtList(stmts []ast.Statement) {
	for _, s := range stmts {
		if e.terminated {
			return // unreachable code after RETURN; nothing more to lower
		}
		e.lowerStmt(s)
	}
}

func (e *Emitter) lowerStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		e.lowerAssignment(s)
	case *ast.ProcCall:
		e.lowerProcCall(s)
	case *ast.IfStmt:
		e.lowerIf(s)
	case *ast.WhileStmt:
		e.lowerWhile(s)
	case *ast.ForStmt:
		e.lowerFor(s)
	case *ast.ReturnStmt:
		e.lowerReturn(s)
	}
}

func (e *Emitter) lowerAssignment(s *ast.Assignment) {
	value := e.lowerExpr(s.Value)
	ptr, elemType := e.lowerDesignatorAddr(s.TargetExpr)
	value = e.promoteTo(value, elemType)
	e.emit("store %s %s, %s* %s", llvmType(elemType), value.text, llvmType(elemType), ptr)
}

func (e *Emitter) lowerProcCall(s *ast.ProcCall) {
	if s.Callee == "Write" || s.Callee == "WriteLn" {
		e.lowerWriteCall(s)
		return
	}
	sym := resolvedSymbol(s.Resolved)
	argText := ""
	for i, arg := range s.Args {
		v := e.lowerExpr(arg)
		v = e.promoteTo(v, sym.ParamTypes[i])
		if i > 0 {
			argText += ", "
		}
		argText += fmt.Sprintf("%s %s", llvmType(sym.ParamTypes[i]), v.text)
	}
	retType := "void"
	if sym.ReturnType != nil {
		retType = llvmType(sym.ReturnType)
	}
	if retType == "void" {
		e.emit("call void @%s(%s)", s.Callee, argText)
	} else {
		reg := e.newTemp()
		e.emit("%s = call %s @%s(%s)", reg, retType, s.Callee, argText)
	}
}

// formatSpecifier maps an argument type to its printf conversion
// specifier, per spec.md §4.4 "Write restricted to scalars and string
// literals".
func formatSpecifier(t types.Type) string {
	switch {
	case t.Equals(types.INTEGER):
		return "%d"
	case t.Equals(types.REAL):
		return "%f"
	case t.Equals(types.STRING):
		return "%s"
	case t.Equals(types.BOOLEAN):
		return "%s" // callers substitute a TRUE/FALSE operand, see lowerWriteCall
	}
	return "%d"
}

func (e *Emitter) lowerWriteCall(s *ast.ProcCall) {
	format := ""
	var callArgs []operand

	for _, arg := range s.Args {
		v := e.lowerExpr(arg)
		if v.typ.Equals(types.BOOLEAN) {
			v = e.lowerBoolToString(v)
		}
		format += formatSpecifier(v.typ)
		callArgs = append(callArgs, v)
	}
	if s.Callee == "WriteLn" {
		format += "\n"
	}

	fmtOperand := e.internString(format)
	argText := fmt.Sprintf("i8* %s", fmtOperand)
	for _, v := range callArgs {
		argText += fmt.Sprintf(", %s %s", llvmType(v.typ), v.text)
	}
	reg := e.newTemp()
	e.emit("%s = call i32 (i8*, ...) @printf(%s)", reg, argText)
}

func (e *Emitter) lowerBoolToString(v operand) operand {
	trueStr := e.internString("TRUE")
	falseStr := e.internString("FALSE")
	reg := e.newTemp()
	e.emit("%s = select i1 %s, i8* %s, i8* %s", reg, v.text, trueStr, falseStr)
	return operand{text: reg, typ: types.STRING}
}

func (e *Emitter) lowerIf(s *ast.IfStmt) {
	n := e.labelN
	thenLabel := fmt.Sprintf("if.then%d", n)
	elseLabel := fmt.Sprintf("if.else%d", n)
	endLabel := fmt.Sprintf("if.end%d", n)
	e.labelN++

	cond := e.lowerExpr(s.Cond)
	target := elseLabel
	if s.Else == nil {
		target = endLabel
	}
	e.emit("br i1 %s, label %%%s, label %%%s", cond.text, thenLabel, target)

	e.emitLabel(thenLabel)
	e.lowerStmtList(s.Then)
	if !e.terminated {
		e.emit("br label %%%s", endLabel)
	}

	if s.Else != nil {
		e.emitLabel(elseLabel)
		e.lowerStmtList(s.Else)
		if !e.terminated {
			e.emit("br label %%%s", endLabel)
		}
	}

	e.emitLabel(endLabel)
}

func (e *Emitter) lowerWhile(s *ast.WhileStmt) {
	n := e.labelN
	headLabel := fmt.Sprintf("while.head%d", n)
	bodyLabel := fmt.Sprintf("while.body%d", n)
	endLabel := fmt.Sprintf("while.end%d", n)
	e.labelN++

	e.emit("br label %%%s", headLabel)
	e.emitLabel(headLabel)
	cond := e.lowerExpr(s.Cond)
	e.emit("br i1 %s, label %%%s, label %%%s", cond.text, bodyLabel, endLabel)

	e.emitLabel(bodyLabel)
	e.lowerStmtList(s.Body)
	if !e.terminated {
		e.emit("br label %%%s", headLabel)
	}

	e.emitLabel(endLabel)
}

// lowerFor lowers an inclusive-bound FOR loop: spec.md §4.4 "The bound is
// inclusive and evaluated once."
func (e *Emitter) lowerFor(s *ast.ForStmt) {
	sym := resolvedSymbol(s.Resolved)
	ptr := sym.Slot.(string)

	start := e.lowerExpr(s.Start)
	e.emit("store i32 %s, i32* %s", start.text, ptr)

	endVal := e.lowerExpr(s.End)
	endReg := e.newTemp()
	e.emit("%s = add i32 %s, 0", endReg, endVal.text) // snapshot the bound once

	n := e.labelN
	headLabel := fmt.Sprintf("for.head%d", n)
	bodyLabel := fmt.Sprintf("for.body%d", n)
	endLabel := fmt.Sprintf("for.end%d", n)
	e.labelN++

	e.emit("br label %%%s", headLabel)
	e.emitLabel(headLabel)
	cur := e.newTemp()
	e.emit("%s = load i32, i32* %s", cur, ptr)
	cond := e.newTemp()
	e.emit("%s = icmp sle i32 %s, %s", cond, cur, endReg)
	e.emit("br i1 %s, label %%%s, label %%%s", cond, bodyLabel, endLabel)

	e.emitLabel(bodyLabel)
	e.lowerStmtList(s.Body)
	if !e.terminated {
		cur2 := e.newTemp()
		e.emit("%s = load i32, i32* %s", cur2, ptr)
		next := e.newTemp()
		e.emit("%s = add i32 %s, 1", next, cur2)
		e.emit("store i32 %s, i32* %s", next, ptr)
		e.emit("br label %%%s", headLabel)
	}

	e.emitLabel(endLabel)
}

func (e *Emitter) lowerReturn(s *ast.ReturnStmt) {
	if s.Value == nil {
		e.emit("ret void")
		e.terminated = true
		return
	}
	v := e.lowerExpr(s.Value)
	if e.curRetType != nil {
		// analyzeReturn accepts RETURN of an INTEGER expression from a
		// REAL-declared procedure (spec.md §4.3 assignment
		// compatibility); promote here so the emitted ret's operand
		// type always matches the function's declared return type.
		v = e.promoteTo(v, e.curRetType)
	}
	e.emit("ret %s %s", llvmType(v.typ), v.text)
	e.terminated = true
}
