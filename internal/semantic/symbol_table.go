package semantic

import (
	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/types"
)

// SymbolKind classifies a Symbol, per spec.md §3 "Symbol".
type SymbolKind int

const (
	ConstSymbol SymbolKind = iota
	VarSymbol
	ParamSymbol
	ProcSymbol
)

// Symbol is the semantic stage's record of a declared name: spec.md §3
// "Symbol". Designators and calls resolve to a *Symbol, stored on the
// AST node's Resolved field.
//
// Slot is the storage location the emitter assigns (spec.md §3: "for
// vars/params: a storage location to be assigned by the emitter"). It is
// declared as `any` here so internal/semantic has no dependency on
// internal/ir; the emitter owns the concrete type it stores there (an
// alloca pointer name).
type Symbol struct {
	Name        string
	Kind        SymbolKind
	Type        types.Type
	ConstValue  any           // compile-time value, for ConstSymbol
	Proc        *ast.ProcDecl // declaration, for ProcSymbol
	ReturnType  types.Type    // for ProcSymbol; nil if no return value
	ParamTypes  []types.Type  // for ProcSymbol, in declaration order
	Slot        any
}

// Scope is one lexical frame: spec.md §3 "Scope". Lookup walks the
// parent chain; Define inserts into this frame only.
type Scope struct {
	symbols map[string]*Symbol
	outer   *Scope
}

// NewScope creates a scope nested inside outer (nil for the global scope).
func NewScope(outer *Scope) *Scope {
	return &Scope{symbols: make(map[string]*Symbol), outer: outer}
}

// Define inserts sym into this frame. Returns false if the name is
// already declared in this frame (spec.md §4.3 "rejects duplicate names
// in the same frame") — it does not consult outer scopes, since
// shadowing an enclosing declaration is legal.
func (s *Scope) Define(sym *Symbol) bool {
	if _, exists := s.symbols[sym.Name]; exists {
		return false
	}
	s.symbols[sym.Name] = sym
	return true
}

// Resolve looks up name in this frame, then recursively in outer frames,
// implementing "nested procedures see enclosing procedure locals"
// (spec.md §3 "Scope").
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	if sym, ok := s.symbols[name]; ok {
		return sym, true
	}
	if s.outer != nil {
		return s.outer.Resolve(name)
	}
	return nil, false
}
