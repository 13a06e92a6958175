package interp

import (
	"github.com/oberon-go/oberonc/internal/ast"
)

// addr returns the storage cell backing d, following any index chain
// into nested ArrayValues.
func (i *Interpreter) addr(d *ast.Designator) *Value {
	sym := resolvedSymbol(d.Resolved)
	cell := i.box(sym)
	for _, ixExpr := range d.Indices {
		idx := i.eval(ixExpr).(IntegerValue).Value
		arr := (*cell).(*ArrayValue)
		cell = &arr.Elements[idx]
	}
	return cell
}

func (i *Interpreter) eval(expr ast.Expression) Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return i.evalLiteral(e)
	case *ast.Designator:
		return *i.addr(e)
	case *ast.UnaryExpr:
		return i.evalUnary(e)
	case *ast.BinaryExpr:
		return i.evalBinary(e)
	case *ast.FuncCall:
		sym := resolvedSymbol(e.Resolved)
		return i.callProc(sym.Proc, e.Args)
	}
	return IntegerValue{}
}

func (i *Interpreter) evalLiteral(l *ast.Literal) Value {
	switch l.Kind {
	case ast.IntLiteral:
		return IntegerValue{Value: l.IntValue}
	case ast.RealLiteral:
		return RealValue{Value: l.RealValue}
	default:
		return StringValue{Value: l.StrValue}
	}
}

func (i *Interpreter) evalUnary(u *ast.UnaryExpr) Value {
	v := i.eval(u.Operand)
	if u.Op == ast.UnaryPlus {
		return v
	}
	switch val := v.(type) {
	case IntegerValue:
		return IntegerValue{Value: -val.Value}
	case RealValue:
		return RealValue{Value: -val.Value}
	}
	return v
}

func (i *Interpreter) evalBinary(b *ast.BinaryExpr) Value {
	left := i.eval(b.Left)
	right := i.eval(b.Right)

	if ls, ok := left.(StringValue); ok {
		rs := right.(StringValue)
		return compareStrings(b.Op, ls.Value, rs.Value)
	}
	if lb, ok := left.(BooleanValue); ok {
		rb := right.(BooleanValue)
		if b.Op == ast.OpAnd {
			return BooleanValue{Value: lb.Value && rb.Value}
		}
		return BooleanValue{Value: lb.Value || rb.Value}
	}

	lf, lIsInt := asFloat(left)
	rf, _ := asFloat(right)

	if b.Op.IsRelational() {
		return compareNumeric(b.Op, lf, rf)
	}

	switch b.Op {
	case ast.OpDivI:
		return IntegerValue{Value: toInt(left) / toInt(right)}
	case ast.OpMod:
		return IntegerValue{Value: toInt(left) % toInt(right)}
	case ast.OpDiv:
		// / always yields REAL, even for two INTEGER operands
		// (spec.md §4.3) — never falls through to the INTEGER result
		// below.
		return RealValue{Value: lf / rf}
	}

	var result float64
	switch b.Op {
	case ast.OpAdd:
		result = lf + rf
	case ast.OpSub:
		result = lf - rf
	case ast.OpMul:
		result = lf * rf
	}

	if b.Type().String() == "REAL" || !lIsInt {
		return RealValue{Value: result}
	}
	return IntegerValue{Value: int32(result)}
}

func asFloat(v Value) (float64, bool) {
	switch val := v.(type) {
	case IntegerValue:
		return float64(val.Value), true
	case RealValue:
		return val.Value, false
	}
	return 0, true
}

func toInt(v Value) int32 {
	return v.(IntegerValue).Value
}

func compareNumeric(op ast.BinaryOpKind, l, r float64) Value {
	switch op {
	case ast.OpEq:
		return BooleanValue{Value: l == r}
	case ast.OpNeq:
		return BooleanValue{Value: l != r}
	case ast.OpLt:
		return BooleanValue{Value: l < r}
	case ast.OpLeq:
		return BooleanValue{Value: l <= r}
	case ast.OpGt:
		return BooleanValue{Value: l > r}
	default: // OpGeq
		return BooleanValue{Value: l >= r}
	}
}

func compareStrings(op ast.BinaryOpKind, l, r string) Value {
	switch op {
	case ast.OpEq:
		return BooleanValue{Value: l == r}
	case ast.OpNeq:
		return BooleanValue{Value: l != r}
	case ast.OpLt:
		return BooleanValue{Value: l < r}
	case ast.OpLeq:
		return BooleanValue{Value: l <= r}
	case ast.OpGt:
		return BooleanValue{Value: l > r}
	default: // OpGeq
		return BooleanValue{Value: l >= r}
	}
}
