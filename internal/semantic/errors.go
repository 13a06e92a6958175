package semantic

import (
	"fmt"

	"github.com/oberon-go/oberonc/internal/token"
	"github.com/oberon-go/oberonc/internal/types"
)

// ErrorKind classifies a semantic error, per the taxonomy in spec.md §7.
type ErrorKind string

const (
	ErrUndeclared     ErrorKind = "undeclared"
	ErrRedeclared     ErrorKind = "redeclared"
	ErrTypeMismatch   ErrorKind = "type_mismatch"
	ErrArity          ErrorKind = "arity_mismatch"
	ErrArrayRank      ErrorKind = "array_rank"
	ErrReturn         ErrorKind = "return_mismatch"
	ErrNotConstant    ErrorKind = "not_constant"
	ErrNotAProcedure  ErrorKind = "not_a_procedure"
	ErrTrailingName   ErrorKind = "trailing_name_mismatch"
)

// Error is a single semantic diagnostic: spec.md §7 "Semantic error —
// undeclared name, redeclaration, type mismatch, arity mismatch,
// array-rank violation, return-value mismatch; message names the
// involved identifier and both types where applicable."
type Error struct {
	Kind     ErrorKind
	Message  string
	Pos      token.Position
	Name     string
	Expected types.Type
	Got      types.Type
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

func newError(kind ErrorKind, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}
