// Package interp is a tree-walking interpreter executing an
// already-analyzed *ast.Module directly, for the CLI's default run mode
// (spec.md §6). It implements only the Oberon subset's observational
// contract — INTEGER/REAL/STRING/BOOLEAN scalars, fixed arrays, and
// procedures — in the vein of the teacher's internal/interp.Interpreter,
// without its object system, units, or exception machinery.
package interp

import "strconv"

// Value is a runtime value. It intentionally mirrors the shape of the
// teacher's interp.Value (Type/String accessors over a small closed set
// of concrete structs) rather than a bare `any`.
type Value interface {
	Type() string
	String() string
}

// IntegerValue is a 32-bit signed INTEGER value.
type IntegerValue struct{ Value int32 }

func (v IntegerValue) Type() string   { return "INTEGER" }
func (v IntegerValue) String() string { return strconv.FormatInt(int64(v.Value), 10) }

// RealValue is a REAL value.
type RealValue struct{ Value float64 }

func (v RealValue) Type() string { return "REAL" }

// String formats v the same way the compiled-IR backend's printf "%f"
// does (6 fixed decimal places), so interpreted and compiled programs
// print identical stdout for a REAL value (spec.md §9).
func (v RealValue) String() string { return strconv.FormatFloat(v.Value, 'f', 6, 64) }

// StringValue is a STRING value.
type StringValue struct{ Value string }

func (v StringValue) Type() string   { return "STRING" }
func (v StringValue) String() string { return v.Value }

// BooleanValue is a BOOLEAN value, arising only from relational/logical
// expressions (there is no BOOLEAN literal keyword in the surface
// language).
type BooleanValue struct{ Value bool }

func (v BooleanValue) Type() string { return "BOOLEAN" }
func (v BooleanValue) String() string {
	if v.Value {
		return "TRUE"
	}
	return "FALSE"
}

// ArrayValue is a fixed-size, zero-based array. Elements are Value so
// that multi-dimensional arrays are represented as arrays of ArrayValue,
// mirroring the canonicalized nested *types.ArrayType shape.
type ArrayValue struct{ Elements []Value }

func (v *ArrayValue) Type() string   { return "ARRAY" }
func (v *ArrayValue) String() string { return "ARRAY" }

func zeroValue(typeName string) Value {
	switch typeName {
	case "INTEGER":
		return IntegerValue{}
	case "REAL":
		return RealValue{}
	case "STRING":
		return StringValue{}
	case "BOOLEAN":
		return BooleanValue{}
	}
	return IntegerValue{}
}
