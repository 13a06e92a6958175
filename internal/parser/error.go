package parser

import (
	"fmt"

	"github.com/oberon-go/oberonc/internal/token"
)

// Error is a single syntax error: spec.md §4.2 "on the first unexpected
// token, emit 'expected X at line:col, got Y' and abort."
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}
