package ir

import (
	"fmt"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/semantic"
	"github.com/oberon-go/oberonc/internal/types"
)

// operand is a value ready to be used as an instruction argument: either
// an SSA register, an immediate constant, or a string constant-expr.
type operand struct {
	text string
	typ  types.Type
}

func (o operand) llvm() string { return llvmType(o.typ) }

// lowerExpr evaluates expr, emitting whatever instructions are needed,
// and returns the resulting operand.
func (e *Emitter) lowerExpr(expr ast.Expression) operand {
	switch ex := expr.(type) {
	case *ast.Literal:
		return e.lowerLiteral(ex)
	case *ast.Designator:
		return e.lowerDesignatorValue(ex)
	case *ast.UnaryExpr:
		return e.lowerUnary(ex)
	case *ast.BinaryExpr:
		return e.lowerBinary(ex)
	case *ast.FuncCall:
		return e.lowerFuncCall(ex)
	}
	internalErrorf("lowerExpr: unhandled expression node %T", expr)
	return operand{}
}

func (e *Emitter) lowerLiteral(l *ast.Literal) operand {
	switch l.Kind {
	case ast.IntLiteral:
		return operand{text: fmt.Sprintf("%d", l.IntValue), typ: types.INTEGER}
	case ast.RealLiteral:
		return operand{text: fmt.Sprintf("%e", l.RealValue), typ: types.REAL}
	default:
		return operand{text: e.internString(l.StrValue), typ: types.STRING}
	}
}

// lowerDesignatorAddr resolves d to the pointer holding its storage,
// emitting any GEP needed to reach an indexed element, and returns that
// pointer operand together with the element type it points to.
func (e *Emitter) lowerDesignatorAddr(d *ast.Designator) (string, types.Type) {
	sym := resolvedSymbol(d.Resolved)
	base, _ := sym.Slot.(string)

	if len(d.Indices) == 0 {
		return base, sym.Type
	}

	idxOperands := make([]operand, len(d.Indices))
	for i, ix := range d.Indices {
		idxOperands[i] = e.lowerExpr(ix)
	}

	fullType := llvmType(sym.Type)
	gep := fmt.Sprintf("getelementptr inbounds %s, %s* %s, i32 0", fullType, fullType, base)
	for _, ix := range idxOperands {
		gep += fmt.Sprintf(", i32 %s", ix.text)
	}
	reg := e.newTemp()
	e.emit("%s = %s", reg, gep)

	elemType := types.ElementAfter(sym.Type, len(d.Indices))
	return reg, elemType
}

func (e *Emitter) lowerDesignatorValue(d *ast.Designator) operand {
	sym := resolvedSymbol(d.Resolved)
	if sym.Kind == semantic.ConstSymbol {
		if s, ok := sym.ConstValue.(string); ok {
			return operand{text: e.internString(s), typ: types.STRING}
		}
		return constOperand(sym)
	}

	ptr, elemType := e.lowerDesignatorAddr(d)
	reg := e.newTemp()
	e.emit("%s = load %s, %s* %s", reg, llvmType(elemType), llvmType(elemType), ptr)
	return operand{text: reg, typ: elemType}
}

func constOperand(sym *semantic.Symbol) operand {
	switch v := sym.ConstValue.(type) {
	case int32:
		return operand{text: fmt.Sprintf("%d", v), typ: types.INTEGER}
	case float64:
		return operand{text: fmt.Sprintf("%e", v), typ: types.REAL}
	case string:
		// A STRING constant needs a live Emitter to intern its backing
		// global, so lowerDesignatorValue interns it itself and never
		// calls this function for one; this branch returns the raw text
		// and is not a valid IR operand.
		return operand{text: v, typ: types.STRING}
	}
	internalErrorf("constOperand: const %q has no evaluable ConstValue", sym.Name)
	return operand{}
}

func (e *Emitter) lowerUnary(u *ast.UnaryExpr) operand {
	v := e.lowerExpr(u.Operand)
	if u.Op == ast.UnaryPlus {
		return v
	}
	reg := e.newTemp()
	if v.typ.Equals(types.REAL) {
		e.emit("%s = fsub double 0.0, %s", reg, v.text)
	} else {
		e.emit("%s = sub i32 0, %s", reg, v.text)
	}
	return operand{text: reg, typ: v.typ}
}

func (e *Emitter) lowerBinary(b *ast.BinaryExpr) operand {
	left := e.lowerExpr(b.Left)
	right := e.lowerExpr(b.Right)
	resultType := b.Type()
	if resultType == nil && !b.Op.IsRelational() && b.Op != ast.OpAnd && b.Op != ast.OpOr &&
		b.Op != ast.OpDivI && b.Op != ast.OpMod {
		internalErrorf("lowerBinary: %v expression reached codegen with no type annotation", b.Op)
	}

	if left.typ.Equals(types.STRING) && right.typ.Equals(types.STRING) {
		return e.lowerStringCompare(b.Op, left, right)
	}

	if b.Op.IsRelational() {
		return e.lowerRelational(b.Op, left, right)
	}

	switch b.Op {
	case ast.OpAnd:
		reg := e.newTemp()
		e.emit("%s = and i1 %s, %s", reg, left.text, right.text)
		return operand{text: reg, typ: types.BOOLEAN}
	case ast.OpOr:
		reg := e.newTemp()
		e.emit("%s = or i1 %s, %s", reg, left.text, right.text)
		return operand{text: reg, typ: types.BOOLEAN}
	case ast.OpDivI:
		reg := e.newTemp()
		e.emit("%s = sdiv i32 %s, %s", reg, left.text, right.text)
		return operand{text: reg, typ: types.INTEGER}
	case ast.OpMod:
		reg := e.newTemp()
		e.emit("%s = srem i32 %s, %s", reg, left.text, right.text)
		return operand{text: reg, typ: types.INTEGER}
	}

	left = e.promoteTo(left, resultType)
	right = e.promoteTo(right, resultType)
	llvmOp := arithOp(b.Op, resultType)
	reg := e.newTemp()
	e.emit("%s = %s %s %s, %s", reg, llvmOp, llvmType(resultType), left.text, right.text)
	return operand{text: reg, typ: resultType}
}

func arithOp(op ast.BinaryOpKind, resultType types.Type) string {
	isReal := resultType.Equals(types.REAL)
	switch op {
	case ast.OpAdd:
		if isReal {
			return "fadd"
		}
		return "add"
	case ast.OpSub:
		if isReal {
			return "fsub"
		}
		return "sub"
	case ast.OpMul:
		if isReal {
			return "fmul"
		}
		return "mul"
	default: // OpDiv
		if isReal {
			return "fdiv"
		}
		return "sdiv"
	}
}

// promoteTo converts v to target's type with an sitofp instruction if
// needed, per the INTEGER->REAL promotion rule of spec.md §4.3.
func (e *Emitter) promoteTo(v operand, target types.Type) operand {
	if v.typ.Equals(target) {
		return v
	}
	if target.Equals(types.REAL) && v.typ.Equals(types.INTEGER) {
		reg := e.newTemp()
		e.emit("%s = sitofp i32 %s to double", reg, v.text)
		return operand{text: reg, typ: types.REAL}
	}
	return v
}

var relPred = map[ast.BinaryOpKind]string{
	ast.OpEq:  "eq",
	ast.OpNeq: "ne",
	ast.OpLt:  "slt",
	ast.OpLeq: "sle",
	ast.OpGt:  "sgt",
	ast.OpGeq: "sge",
}

var fRelPred = map[ast.BinaryOpKind]string{
	ast.OpEq:  "oeq",
	ast.OpNeq: "one",
	ast.OpLt:  "olt",
	ast.OpLeq: "ole",
	ast.OpGt:  "ogt",
	ast.OpGeq: "oge",
}

func (e *Emitter) lowerRelational(op ast.BinaryOpKind, left, right operand) operand {
	isReal := left.typ.Equals(types.REAL) || right.typ.Equals(types.REAL)
	reg := e.newTemp()
	if isReal {
		left = e.promoteTo(left, types.REAL)
		right = e.promoteTo(right, types.REAL)
		e.emit("%s = fcmp %s double %s, %s", reg, fRelPred[op], left.text, right.text)
	} else {
		e.emit("%s = icmp %s i32 %s, %s", reg, relPred[op], left.text, right.text)
	}
	return operand{text: reg, typ: types.BOOLEAN}
}

func (e *Emitter) lowerStringCompare(op ast.BinaryOpKind, left, right operand) operand {
	e.needsStrcmp = true
	cmp := e.newTemp()
	e.emit("%s = call i32 @strcmp(i8* %s, i8* %s)", cmp, left.text, right.text)
	reg := e.newTemp()
	e.emit("%s = icmp %s i32 %s, 0", reg, relPred[op], cmp)
	return operand{text: reg, typ: types.BOOLEAN}
}

func (e *Emitter) lowerFuncCall(f *ast.FuncCall) operand {
	sym := resolvedSymbol(f.Resolved)
	argText := ""
	for i, arg := range f.Args {
		v := e.lowerExpr(arg)
		v = e.promoteTo(v, sym.ParamTypes[i])
		if i > 0 {
			argText += ", "
		}
		argText += fmt.Sprintf("%s %s", llvmType(sym.ParamTypes[i]), v.text)
	}
	reg := e.newTemp()
	e.emit("%s = call %s @%s(%s)", reg, llvmType(sym.ReturnType), f.Callee, argText)
	return operand{text: reg, typ: sym.ReturnType}
}
