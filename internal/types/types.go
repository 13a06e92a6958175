// Package types defines the small set of type descriptors used by the
// semantic analyzer and the IR emitter: INTEGER, REAL, STRING, an
// internal BOOLEAN (there is no BOOLEAN keyword in the surface language;
// it only arises from relational/logical expressions), and ARRAY.
package types

import "fmt"

// Type is implemented by every type descriptor in the analyzer.
type Type interface {
	// Equals reports structural equality, e.g. two array types of the
	// same length and element type are Equal even if distinct values.
	Equals(other Type) bool
	String() string
}

type primitive string

func (p primitive) Equals(other Type) bool {
	o, ok := other.(primitive)
	return ok && p == o
}

func (p primitive) String() string { return string(p) }

// Singleton primitive type instances referenced throughout the analyzer
// and emitter, mirroring the teacher's types.INTEGER / types.STRING style.
var (
	INTEGER Type = primitive("INTEGER")
	REAL    Type = primitive("REAL")
	STRING  Type = primitive("STRING")
	BOOLEAN Type = primitive("BOOLEAN")
)

// ArrayType describes a (possibly nested) fixed-size array. Multi-
// dimensional declarations (`ARRAY n, m OF T`) are canonicalized during
// semantic analysis to nested ArrayTypes (`ARRAY n OF ARRAY m OF T`), per
// spec.md §4.2.
type ArrayType struct {
	Element Type
	Length  int
}

func NewArrayType(element Type, length int) *ArrayType {
	return &ArrayType{Element: element, Length: length}
}

func (a *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	if !ok {
		return false
	}
	return a.Length == o.Length && a.Element.Equals(o.Element)
}

func (a *ArrayType) String() string {
	return fmt.Sprintf("ARRAY %d OF %s", a.Length, a.Element)
}

// IsNumericType reports whether t is INTEGER or REAL.
func IsNumericType(t Type) bool {
	return t != nil && (t.Equals(INTEGER) || t.Equals(REAL))
}

// PromoteTypes implements the arithmetic promotion rule from spec.md
// §4.3: both INTEGER yields INTEGER, either operand REAL yields REAL.
// Callers must have already checked IsNumericType on both operands.
func PromoteTypes(a, b Type) Type {
	if a.Equals(REAL) || b.Equals(REAL) {
		return REAL
	}
	return INTEGER
}

// Dimensions returns the number of nested array dimensions of t (0 for a
// non-array type). Used by the analyzer to type a Designator's index list and to reject
// over-indexing (spec.md §4.3 "dimensionality must not exceed that of
// the array").
func Dimensions(t Type) int {
	n := 0
	for {
		arr, ok := t.(*ArrayType)
		if !ok {
			return n
		}
		n++
		t = arr.Element
	}
}

// ElementAfter returns the type remaining after indexing n dimensions of
// an array type t, or nil if t does not have that many dimensions.
func ElementAfter(t Type, n int) Type {
	for i := 0; i < n; i++ {
		arr, ok := t.(*ArrayType)
		if !ok {
			return nil
		}
		t = arr.Element
	}
	return t
}
