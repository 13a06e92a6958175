// Package ir lowers a type-checked *ast.Module into textual LLVM IR,
// the shape described in spec.md §4.4. It has no direct analog in the
// teacher repo (go-dws targets a bytecode VM, not LLVM), so its
// structure borrows only the general "single-pass lowering over a
// typed AST" shape of internal/bytecode.Compiler: one emitter value
// walking the tree once, a per-function counter set for SSA names, and
// a string pool collected as a side effect of lowering instead of
// pre-scanned.
package ir

import (
	"fmt"
	"strings"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/semantic"
	"github.com/oberon-go/oberonc/internal/types"
)

// Emitter lowers one module at a time. Reuse is not supported; call New
// for each module.
type Emitter struct {
	module *ast.Module

	strPool  map[string]string // literal text -> global name
	strOrder []string

	funcs []string // completed function/definition text, in emission order

	// per-function state, reset by beginFunction (except needsStrcmp,
	// which is module-wide: it decides whether @strcmp is declared).
	body        strings.Builder
	tempN       int
	labelN      int
	terminated  bool
	needsStrcmp bool

	// curRetType is the declared return type of the function currently
	// being lowered (nil for a proper procedure, and for main), so
	// lowerReturn can promote an INTEGER result to a REAL-declared
	// return type before emitting ret.
	curRetType types.Type
}

// New creates an Emitter for m. m must already be free of semantic
// errors (*semantic.Analyzer.Analyze returned nil).
func New(m *ast.Module) *Emitter {
	return &Emitter{module: m, strPool: make(map[string]string)}
}

// InternalError reports a violated lowering invariant — e.g. an
// expression that reached codegen with no resolved type — rather than
// anything the source program did wrong. spec.md §6/§7 surfaces this
// class of failure as "internal compiler error" with its own exit code,
// distinct from a user's lex/parse/semantic error.
type InternalError struct{ msg string }

func (e InternalError) Error() string { return "internal compiler error: " + e.msg }

// internalErrorf panics with an InternalError; Emit recovers it at the
// top level and returns it as an ordinary error.
func internalErrorf(format string, args ...any) {
	panic(InternalError{msg: fmt.Sprintf(format, args...)})
}

// Emit returns the textual LLVM IR for the module, or an InternalError
// if lowering hit a violated invariant.
func (e *Emitter) Emit() (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(InternalError)
			if !ok {
				panic(r)
			}
			err = ie
		}
	}()

	for _, d := range e.module.Decls {
		if proc, ok := d.(*ast.ProcDecl); ok {
			e.emitProc(proc)
		}
	}
	e.emitMain()

	var sb strings.Builder
	sb.WriteString("; ModuleID = \"oberon_module\"\n\n")
	sb.WriteString("declare i32 @printf(i8*, ...)\n")
	if e.needsStrcmp {
		sb.WriteString("declare i32 @strcmp(i8*, i8*)\n")
	}
	sb.WriteString("\n")

	for _, f := range e.funcs {
		sb.WriteString(f)
		sb.WriteString("\n")
	}

	for _, name := range e.strOrder {
		sb.WriteString(e.strPool[name])
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (e *Emitter) beginFunction() {
	e.body.Reset()
	e.tempN = 0
	e.labelN = 0
	e.terminated = false
}

func (e *Emitter) newTemp() string {
	t := fmt.Sprintf("%%t%d", e.tempN)
	e.tempN++
	return t
}

func (e *Emitter) newLabel(tag string) string {
	l := fmt.Sprintf("%s%d", tag, e.labelN)
	e.labelN++
	return l
}

func (e *Emitter) emit(format string, args ...any) {
	fmt.Fprintf(&e.body, "  "+format+"\n", args...)
}

func (e *Emitter) emitLabel(name string) {
	fmt.Fprintf(&e.body, "%s:\n", name)
	e.terminated = false
}

// llvmType maps an internal/types.Type to its LLVM IR spelling.
func llvmType(t types.Type) string {
	switch {
	case t == nil:
		return "void"
	case t.Equals(types.INTEGER):
		return "i32"
	case t.Equals(types.REAL):
		return "double"
	case t.Equals(types.BOOLEAN):
		return "i1"
	case t.Equals(types.STRING):
		return "i8*"
	}
	if arr, ok := t.(*types.ArrayType); ok {
		return fmt.Sprintf("[%d x %s]", arr.Length, llvmType(arr.Element))
	}
	internalErrorf("llvmType: unrecognized type %v reached codegen with no type mapping", t)
	return ""
}

// internString appends a trailing NUL to s, interns the result as a
// global constant and returns a getelementptr constant expression
// yielding i8* to its first byte, the classic "hello world" pattern for
// string literals embedded directly as call operands.
func (e *Emitter) internString(s string) string {
	withNul := s + "\x00"
	if _, ok := e.strPool[withNul]; !ok {
		name := fmt.Sprintf("@.str%d", len(e.strOrder))
		n := len(withNul)
		escaped := escapeLLVMString(withNul)
		e.strOrder = append(e.strOrder, withNul)
		e.strPool[withNul] = fmt.Sprintf(
			"%s = private unnamed_addr constant [%d x i8] c\"%s\"",
			name, n, escaped)
	}
	name := e.strNameFor(withNul)
	n := len(withNul)
	return fmt.Sprintf("getelementptr inbounds ([%d x i8], [%d x i8]* %s, i32 0, i32 0)", n, n, name)
}

func (e *Emitter) strNameFor(withNul string) string {
	for i, s := range e.strOrder {
		if s == withNul {
			return fmt.Sprintf("@.str%d", i)
		}
	}
	return ""
}

func escapeLLVMString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			fmt.Fprintf(&b, "\\%02X", c)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&b, "\\%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func resolvedSymbol(v any) *semantic.Symbol {
	sym, _ := v.(*semantic.Symbol)
	return sym
}
