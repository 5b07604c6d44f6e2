// Package engine runs the event loop connecting a host application to the terminal.
package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/termhost/core"
	"github.com/lixenwraith/termhost/element"
	"github.com/lixenwraith/termhost/input"
	"github.com/lixenwraith/termhost/render"
	"github.com/lixenwraith/termhost/status"
	"github.com/lixenwraith/termhost/terminal"
)

const (
	// DefaultTickInterval is the tick cadence when Options leaves it unset
	DefaultTickInterval = 50 * time.Millisecond

	queueSize = 256
)

// State is the engine lifecycle state
type State uint32

const (
	Running State = iota
	Exiting
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Exiting:
		return "Exiting"
	}
	return "Unknown"
}

// Options tunes the event loop
type Options struct {
	TickInterval time.Duration
	ExitKey      input.KeyCode    // Zero value (Null) means Esc, Null is never an exit key
	Stats        *status.Registry // Created when nil
}

// Engine owns the host state and drives it from terminal events
type Engine[S any] struct {
	host Host[S]
	term terminal.Terminal
	opts Options

	state atomic.Uint32
	rn    *render.Renderer

	statTicks   *atomic.Int64
	statFrames  *atomic.Int64
	statEvents  *atomic.Int64
	statFrameMs *status.AtomicFloat
	statState   *status.AtomicString
	statFocused *atomic.Bool

	appState S
	tree     []element.Element
	bounds   element.Bounds
}

// New creates an engine for host over term
func New[S any](host Host[S], term terminal.Terminal, opts Options) *Engine[S] {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.ExitKey == (input.KeyCode{}) {
		opts.ExitKey = input.Code(input.KindEsc)
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}

	e := &Engine[S]{
		host:        host,
		term:        term,
		opts:        opts,
		statTicks:   opts.Stats.Ints.Get("engine.ticks"),
		statFrames:  opts.Stats.Ints.Get("engine.frames"),
		statEvents:  opts.Stats.Ints.Get("engine.events"),
		statFrameMs: opts.Stats.Floats.Get("engine.frame_ms"),
		statState:   opts.Stats.Strings.Get("engine.state"),
		statFocused: opts.Stats.Bools.Get("engine.focused"),
	}
	e.statState.Store(Running.String())
	e.statFocused.Store(true)
	return e
}

// Stats returns the runtime metrics registry
func (e *Engine[S]) Stats() *status.Registry {
	return e.opts.Stats
}

func (e *Engine[S]) setState(s State) {
	e.state.Store(uint32(s))
	e.statState.Store(s.String())
}

// State returns the current lifecycle state, safe from any goroutine
func (e *Engine[S]) State() State {
	return State(e.state.Load())
}

// AppState returns the latest host state, only meaningful after Run returns
func (e *Engine[S]) AppState() S {
	return e.appState
}

// Run sets up the terminal, runs the loop until exit or a fatal error and restores the terminal
func (e *Engine[S]) Run() error {
	if err := e.term.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	core.SetCrashTerminal(e.term)
	defer func() {
		core.SetCrashTerminal(nil)
		e.term.Fini()
		log.Printf("engine: terminal restored")
	}()

	e.setState(Running)
	e.rn = render.New(e.term.ColorMode())
	w, h := e.term.Size()
	e.bounds = input.BoundsOf(w, h)
	log.Printf("engine: running %dx%d color=%s tick=%s exit=%s",
		e.bounds.Width, e.bounds.Height, e.term.ColorMode(), e.opts.TickInterval, e.opts.ExitKey)

	e.appState, e.tree = e.host.Init(e.bounds)
	if err := e.draw(); err != nil {
		return err
	}

	quit := make(chan struct{})
	defer close(quit)

	queue := make(chan message, queueSize)
	p := &poller{term: e.term, interval: e.opts.TickInterval, out: queue, quit: quit}
	core.Go(p.run)

	for e.State() == Running {
		m := <-queue
		if m.err != nil {
			log.Printf("engine: fatal: %+v", m.err)
			return m.err
		}
		if err := e.dispatch(m.ev); err != nil {
			log.Printf("engine: fatal: %+v", err)
			return err
		}
	}
	return nil
}

// dispatch applies one event to the host
func (e *Engine[S]) dispatch(ev input.Event) error {
	switch ev.Kind {
	case input.EventKeyPressed:
		if ev.Key.Code == e.opts.ExitKey {
			e.setState(Exiting)
			log.Printf("engine: exit key %s", ev.Key)
			return nil
		}

	case input.EventResize:
		e.bounds = ev.Bounds
		log.Printf("engine: resize %dx%d", ev.Bounds.Width, ev.Bounds.Height)

	case input.EventFocusGained, input.EventFocusLost:
		e.statFocused.Store(ev.Kind == input.EventFocusGained)

	case input.EventTick:
		e.statTicks.Add(1)
		if ur, ok := e.host.(UpdateRenderer[S]); ok {
			e.appState, e.tree = ur.UpdateAndRender(e.appState, ev)
		} else {
			e.appState = e.host.Update(e.appState, ev)
			e.tree = e.host.Render(e.appState)
		}
		return e.draw()
	}

	e.statEvents.Add(1)
	e.appState = e.host.Update(e.appState, ev)
	return nil
}

// Bounds returns the last known terminal size
func (e *Engine[S]) Bounds() element.Bounds {
	return e.bounds
}

// draw presents the current tree as one frame
func (e *Engine[S]) draw() error {
	start := time.Now()
	err := e.term.Draw(func(s terminal.Surface) {
		e.rn.RenderAll(e.tree, render.NewFrame(s))
	})
	if err != nil {
		return errors.Wrap(err, "draw")
	}
	e.statFrames.Add(1)
	e.statFrameMs.Set(float64(time.Since(start).Microseconds()) / 1000)
	return nil
}
