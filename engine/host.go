package engine

import (
	"github.com/lixenwraith/termhost/element"
	"github.com/lixenwraith/termhost/input"
)

// Host is the application driven by the engine
// S is the host's state, owned by the engine between calls and replaced wholesale by each update
type Host[S any] interface {
	// Init builds the initial state and element tree for the given terminal size
	Init(b element.Bounds) (S, []element.Element)

	// Update folds one event into the state
	Update(s S, ev input.Event) S

	// Render builds the element tree for the state
	Render(s S) []element.Element
}

// UpdateRenderer is implemented by hosts that update and render in one step
// When present it is used for Tick events instead of Update followed by Render
type UpdateRenderer[S any] interface {
	UpdateAndRender(s S, ev input.Event) (S, []element.Element)
}

// HostFuncs adapts plain functions to Host
type HostFuncs[S any] struct {
	InitFn   func(b element.Bounds) (S, []element.Element)
	UpdateFn func(s S, ev input.Event) S
	RenderFn func(s S) []element.Element
}

func (h HostFuncs[S]) Init(b element.Bounds) (S, []element.Element) {
	return h.InitFn(b)
}

func (h HostFuncs[S]) Update(s S, ev input.Event) S {
	if h.UpdateFn == nil {
		return s
	}
	return h.UpdateFn(s, ev)
}

func (h HostFuncs[S]) Render(s S) []element.Element {
	if h.RenderFn == nil {
		return nil
	}
	return h.RenderFn(s)
}
