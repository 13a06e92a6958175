package interp

import "github.com/oberon-go/oberonc/internal/semantic"

// frame is one call's local storage: a box per declared symbol, so
// nested/recursive calls of the same procedure each get independent
// storage instead of colliding on a shared Symbol.
type frame map[*semantic.Symbol]*Value

// declare introduces sym into the innermost frame with an initial value.
func (i *Interpreter) declare(sym *semantic.Symbol, v Value) {
	boxed := v
	i.frames[len(i.frames)-1][sym] = &boxed
}

// box returns the storage cell for sym, searching frames innermost-first
// (module globals always occupy frame 0; every active procedure call,
// including recursive and nested ones, pushes its own frame above it, so
// the most recent frame holding sym wins).
func (i *Interpreter) box(sym *semantic.Symbol) *Value {
	for k := len(i.frames) - 1; k >= 0; k-- {
		if b, ok := i.frames[k][sym]; ok {
			return b
		}
	}
	return nil
}

func (i *Interpreter) pushFrame() { i.frames = append(i.frames, make(frame)) }
func (i *Interpreter) popFrame()  { i.frames = i.frames[:len(i.frames)-1] }
