package engine

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termhost/element"
	"github.com/lixenwraith/termhost/input"
	"github.com/lixenwraith/termhost/terminal"
)

// scriptTerm is a simulation-backed terminal whose input is fed from a test channel
type scriptTerm struct {
	terminal.Terminal
	script chan tcell.Event

	initErr error
	drawErr error

	finis atomic.Int32
	draws atomic.Int32

	mu   sync.Mutex
	row0 string
}

func newScriptTerm(t *testing.T) *scriptTerm {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	return &scriptTerm{
		Terminal: terminal.NewWithScreen(sim, terminal.Config{ColorMode: terminal.ColorModeTrueColor}),
		script:   make(chan tcell.Event, 64),
	}
}

func (s *scriptTerm) Init() error {
	if s.initErr != nil {
		return s.initErr
	}
	return s.Terminal.Init()
}

func (s *scriptTerm) Fini() {
	s.finis.Add(1)
	s.Terminal.Fini()
}

func (s *scriptTerm) ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{}) {
	defer close(ch)
	for {
		select {
		case <-quit:
			return
		case ev, ok := <-s.script:
			if !ok {
				return
			}
			select {
			case ch <- ev:
			case <-quit:
				return
			}
		}
	}
}

func (s *scriptTerm) Draw(fn func(terminal.Surface)) error {
	s.draws.Add(1)
	if s.drawErr != nil {
		return s.drawErr
	}
	return s.Terminal.Draw(func(sf terminal.Surface) {
		fn(sf)
		w, _ := sf.Size()
		var b strings.Builder
		for x := 0; x < w; x++ {
			r, _, _, _ := sf.GetContent(x, 0)
			b.WriteRune(r)
		}
		s.mu.Lock()
		s.row0 = strings.TrimRight(b.String(), " ")
		s.mu.Unlock()
	})
}

func (s *scriptTerm) firstRow() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.row0
}

func (s *scriptTerm) push(evs ...tcell.Event) {
	for _, ev := range evs {
		s.script <- ev
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// recState records every event delivered through Update
type recState struct {
	events []string
	ticks  int
}

type recHost struct {
	text    string
	renders atomic.Int32
}

func (h *recHost) Init(b element.Bounds) (recState, []element.Element) {
	return recState{}, h.tree()
}

func (h *recHost) Update(s recState, ev input.Event) recState {
	if ev.Kind == input.EventTick {
		s.ticks++
		return s
	}
	s.events = append(s.events, ev.String())
	return s
}

func (h *recHost) Render(s recState) []element.Element {
	h.renders.Add(1)
	return h.tree()
}

func (h *recHost) tree() []element.Element {
	return []element.Element{&element.Paragraph{Lines: element.Lines(h.text, element.StyleDefault)}}
}

// fusedHost adds the combined update and render path
type fusedHost struct {
	recHost
	fused atomic.Int32
}

func (h *fusedHost) UpdateAndRender(s recState, ev input.Event) (recState, []element.Element) {
	h.fused.Add(1)
	s.ticks++
	return s, []element.Element{&element.Paragraph{Lines: element.Lines("fused", element.StyleDefault)}}
}

func runAsync(run func() error) <-chan error {
	done := make(chan error, 1)
	go func() { done <- run() }()
	return done
}

func waitExit(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not exit")
		return nil
	}
}

// Long enough that no tick fires during a test
const noTicks = time.Hour

func TestRun_ExitKeySkipsHost(t *testing.T) {
	term := newScriptTerm(t)
	host := &recHost{text: "hello"}
	e := New[recState](host, term, Options{TickInterval: noTicks})

	term.push(runeKey('a'), key(tcell.KeyEsc), runeKey('b'))
	require.NoError(t, waitExit(t, runAsync(e.Run)))

	assert.Equal(t, Exiting, e.State())
	assert.Equal(t, []string{"KeyPressed(a)"}, e.AppState().events)
	assert.Equal(t, int32(1), term.finis.Load())
}

func TestRun_InitialTreeDrawnImmediately(t *testing.T) {
	term := newScriptTerm(t)
	host := &recHost{text: "hello"}
	e := New[recState](host, term, Options{TickInterval: noTicks})

	term.push(key(tcell.KeyEsc))
	require.NoError(t, waitExit(t, runAsync(e.Run)))

	assert.Equal(t, int32(1), term.draws.Load())
	assert.Equal(t, "hello", term.firstRow())
	assert.Equal(t, int32(0), host.renders.Load())
}

func TestRun_InputEventsDoNotRedraw(t *testing.T) {
	term := newScriptTerm(t)
	host := &recHost{text: "x"}
	e := New[recState](host, term, Options{TickInterval: noTicks})

	term.push(
		runeKey('a'),
		tcell.NewEventFocus(false),
		tcell.NewEventFocus(true),
		tcell.NewEventResize(100, 30),
		key(tcell.KeyEsc),
	)
	require.NoError(t, waitExit(t, runAsync(e.Run)))

	assert.Equal(t, []string{
		"KeyPressed(a)",
		"FocusLost",
		"FocusGained",
		"Resize(100x30)",
	}, e.AppState().events)
	assert.Equal(t, element.Bounds{Width: 100, Height: 30}, e.Bounds())
	assert.Equal(t, int32(1), term.draws.Load())

	stats := e.Stats()
	assert.Equal(t, int64(1), stats.Ints.Get("engine.frames").Load())
	assert.Equal(t, int64(4), stats.Ints.Get("engine.events").Load())
	assert.Equal(t, int64(0), stats.Ints.Get("engine.ticks").Load())
	assert.Equal(t, "Exiting", stats.Strings.Get("engine.state").Load())
	assert.True(t, stats.Bools.Get("engine.focused").Load())
}

func TestRun_PasteDeliveredOnce(t *testing.T) {
	term := newScriptTerm(t)
	host := &recHost{}
	e := New[recState](host, term, Options{TickInterval: noTicks})

	term.push(
		tcell.NewEventPaste(true),
		runeKey('x'),
		key(tcell.KeyEsc),
		runeKey('y'),
		tcell.NewEventPaste(false),
		key(tcell.KeyEsc),
	)
	require.NoError(t, waitExit(t, runAsync(e.Run)))

	// Esc inside a paste is pasted content, not the exit key
	assert.Equal(t, []string{"Paste(2 bytes)"}, e.AppState().events)
}

func TestRun_CustomExitKey(t *testing.T) {
	term := newScriptTerm(t)
	host := &recHost{}
	e := New[recState](host, term, Options{TickInterval: noTicks, ExitKey: input.Scalar("q")})

	term.push(key(tcell.KeyEsc), runeKey('q'))
	require.NoError(t, waitExit(t, runAsync(e.Run)))

	assert.Equal(t, []string{"KeyPressed(Esc)"}, e.AppState().events)
}

func TestRun_TickUpdatesThenRenders(t *testing.T) {
	term := newScriptTerm(t)
	host := &recHost{text: "tick"}
	e := New[recState](host, term, Options{TickInterval: 5 * time.Millisecond})

	done := runAsync(e.Run)
	assert.Eventually(t, func() bool { return host.renders.Load() >= 3 }, 2*time.Second, time.Millisecond)
	term.push(key(tcell.KeyEsc))
	require.NoError(t, waitExit(t, done))

	st := e.AppState()
	assert.GreaterOrEqual(t, st.ticks, 3)
	assert.Equal(t, int32(st.ticks), host.renders.Load())
	// One frame per tick plus the initial frame
	assert.Equal(t, int32(st.ticks+1), term.draws.Load())
	assert.Empty(t, st.events)
}

func TestRun_TickPrefersFusedPath(t *testing.T) {
	term := newScriptTerm(t)
	host := &fusedHost{recHost: recHost{text: "plain"}}
	e := New[recState](host, term, Options{TickInterval: 5 * time.Millisecond})

	done := runAsync(e.Run)
	assert.Eventually(t, func() bool { return host.fused.Load() >= 2 }, 2*time.Second, time.Millisecond)
	term.push(key(tcell.KeyEsc))
	require.NoError(t, waitExit(t, done))

	assert.Equal(t, int32(0), host.renders.Load())
	assert.Equal(t, "fused", term.firstRow())
}

func TestRun_InputClosedIsFatal(t *testing.T) {
	term := newScriptTerm(t)
	e := New[recState](&recHost{}, term, Options{TickInterval: noTicks})

	close(term.script)
	err := waitExit(t, runAsync(e.Run))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))
	assert.Equal(t, int32(1), term.finis.Load())
}

func TestRun_DrawFailureIsFatal(t *testing.T) {
	term := newScriptTerm(t)
	term.drawErr = errors.New("boom")
	e := New[recState](&recHost{}, term, Options{TickInterval: noTicks})

	err := waitExit(t, runAsync(e.Run))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "draw: boom")
	assert.Equal(t, int32(1), term.finis.Load())
}

func TestRun_InitFailureSkipsTeardown(t *testing.T) {
	term := newScriptTerm(t)
	term.initErr = errors.New("no tty")
	e := New[recState](&recHost{}, term, Options{})

	err := waitExit(t, runAsync(e.Run))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal init")
	assert.Equal(t, int32(0), term.finis.Load())
}

func TestNew_Defaults(t *testing.T) {
	e := New[recState](&recHost{}, nil, Options{})
	assert.Equal(t, DefaultTickInterval, e.opts.TickInterval)
	assert.Equal(t, input.Code(input.KindEsc), e.opts.ExitKey)
	assert.Equal(t, Running, e.State())
}

func TestNew_NullExitKeyMeansEsc(t *testing.T) {
	e := New[recState](&recHost{}, nil, Options{ExitKey: input.Code(input.KindNull)})
	assert.Equal(t, input.Code(input.KindEsc), e.opts.ExitKey)
}

func TestHostFuncs(t *testing.T) {
	h := HostFuncs[int]{
		InitFn: func(b element.Bounds) (int, []element.Element) { return int(b.Width), nil },
	}
	s, tree := h.Init(element.Bounds{Width: 7})
	assert.Equal(t, 7, s)
	assert.Nil(t, tree)
	assert.Equal(t, 7, h.Update(s, input.Tick()))
	assert.Nil(t, h.Render(s))
}
