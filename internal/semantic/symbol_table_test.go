package semantic

import (
	"testing"

	"github.com/oberon-go/oberonc/internal/types"
)

func TestScopeResolveWalksOuter(t *testing.T) {
	global := NewScope(nil)
	global.Define(&Symbol{Name: "g", Kind: VarSymbol, Type: types.INTEGER})

	inner := NewScope(global)
	inner.Define(&Symbol{Name: "x", Kind: VarSymbol, Type: types.REAL})

	if _, ok := inner.Resolve("x"); !ok {
		t.Fatal("expected to resolve local symbol x")
	}
	if _, ok := inner.Resolve("g"); !ok {
		t.Fatal("expected to resolve enclosing symbol g")
	}
	if _, ok := global.Resolve("x"); ok {
		t.Fatal("expected outer scope not to see inner symbol x")
	}
}

func TestScopeDefineRejectsDuplicate(t *testing.T) {
	s := NewScope(nil)
	if !s.Define(&Symbol{Name: "a", Kind: VarSymbol, Type: types.INTEGER}) {
		t.Fatal("expected first definition to succeed")
	}
	if s.Define(&Symbol{Name: "a", Kind: VarSymbol, Type: types.REAL}) {
		t.Fatal("expected duplicate definition in the same frame to fail")
	}
}

func TestScopeShadowingAcrossFramesIsAllowed(t *testing.T) {
	global := NewScope(nil)
	global.Define(&Symbol{Name: "a", Kind: VarSymbol, Type: types.INTEGER})

	inner := NewScope(global)
	if !inner.Define(&Symbol{Name: "a", Kind: VarSymbol, Type: types.REAL}) {
		t.Fatal("expected shadowing a name from an enclosing scope to succeed")
	}
	sym, _ := inner.Resolve("a")
	if !sym.Type.Equals(types.REAL) {
		t.Fatalf("expected the inner shadow to win, got %s", sym.Type)
	}
}
