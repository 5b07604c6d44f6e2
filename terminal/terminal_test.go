package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTerminal(t *testing.T, cfg Config) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(sim, cfg)
	require.NoError(t, term.Init())
	t.Cleanup(term.Fini)
	return term, sim
}

func TestDrawPresentsFrame(t *testing.T) {
	term, sim := newSimTerminal(t, Config{ColorMode: ColorModeTrueColor})

	w, h := term.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 25, h)

	err := term.Draw(func(s Surface) {
		s.SetContent(2, 1, 'A', nil, tcell.StyleDefault.Bold(true))
		s.ShowCursor(5, 3)
	})
	require.NoError(t, err)

	cells, cw, _ := sim.GetContents()
	cell := cells[1*cw+2]
	assert.Equal(t, []rune{'A'}, cell.Runes)
	_, _, attrs := cell.Style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)
	// Cleared cells are blank, not the simulated hardware fill
	assert.Equal(t, []rune{' '}, cells[0].Runes)

	x, y, visible := sim.GetCursor()
	assert.Equal(t, 5, x)
	assert.Equal(t, 3, y)
	assert.True(t, visible)
}

func TestDrawRecoversPanic(t *testing.T) {
	term, sim := newSimTerminal(t, Config{})

	require.NoError(t, term.Draw(func(s Surface) {
		s.SetContent(0, 0, 'k', nil, tcell.StyleDefault)
	}))

	err := term.Draw(func(s Surface) {
		s.SetContent(0, 0, 'z', nil, tcell.StyleDefault)
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	// Failed frame is never presented
	cells, _, _ := sim.GetContents()
	assert.Equal(t, []rune{'k'}, cells[0].Runes)
}

// recordingScreen counts reporting mode toggles on a simulation screen
type recordingScreen struct {
	tcell.SimulationScreen
	calls map[string]int
}

func newRecordingScreen() *recordingScreen {
	return &recordingScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		calls:            make(map[string]int),
	}
}

func (r *recordingScreen) EnableMouse(flags ...tcell.MouseFlags) {
	r.calls["EnableMouse"]++
	r.SimulationScreen.EnableMouse(flags...)
}

func (r *recordingScreen) DisableMouse() {
	r.calls["DisableMouse"]++
	r.SimulationScreen.DisableMouse()
}

func (r *recordingScreen) EnablePaste() {
	r.calls["EnablePaste"]++
	r.SimulationScreen.EnablePaste()
}

func (r *recordingScreen) DisablePaste() {
	r.calls["DisablePaste"]++
	r.SimulationScreen.DisablePaste()
}

func (r *recordingScreen) EnableFocus() {
	r.calls["EnableFocus"]++
	r.SimulationScreen.EnableFocus()
}

func (r *recordingScreen) DisableFocus() {
	r.calls["DisableFocus"]++
	r.SimulationScreen.DisableFocus()
}

func TestFiniIdempotent(t *testing.T) {
	scr := newRecordingScreen()
	term := NewWithScreen(scr, Config{MouseCapture: true, BracketedPaste: true, ReportFocus: true})

	// Fini before Init is a no-op
	term.Fini()
	assert.Empty(t, scr.calls)

	require.NoError(t, term.Init())
	term.Fini()
	assert.NotPanics(t, term.Fini)

	assert.Equal(t, map[string]int{
		"EnableMouse":  1,
		"DisableMouse": 1,
		"EnablePaste":  1,
		"DisablePaste": 1,
		"EnableFocus":  1,
		"DisableFocus": 1,
	}, scr.calls)
}

func TestReportingModesFollowConfig(t *testing.T) {
	scr := newRecordingScreen()
	term := NewWithScreen(scr, Config{BracketedPaste: true})

	require.NoError(t, term.Init())
	term.Fini()

	assert.Equal(t, map[string]int{"EnablePaste": 1, "DisablePaste": 1}, scr.calls)
}

func TestDrawHidesUnrequestedCursor(t *testing.T) {
	term, sim := newSimTerminal(t, Config{})

	require.NoError(t, term.Draw(func(s Surface) { s.ShowCursor(4, 2) }))
	_, _, visible := sim.GetCursor()
	require.True(t, visible)

	require.NoError(t, term.Draw(func(s Surface) {}))
	_, _, visible = sim.GetCursor()
	assert.False(t, visible)
}

func TestInitTwiceFails(t *testing.T) {
	term, _ := newSimTerminal(t, Config{})
	assert.Error(t, term.Init())
}

func TestChannelEventsStopsOnQuit(t *testing.T) {
	term, sim := newSimTerminal(t, Config{})

	ch := make(chan tcell.Event, 4)
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		term.ChannelEvents(ch, quit)
		close(done)
	}()

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	ev := <-ch
	key, ok := ev.(*tcell.EventKey)
	require.True(t, ok)
	assert.Equal(t, 'x', key.Rune())

	close(quit)
	<-done
	_, open := <-ch
	assert.False(t, open)
}

func TestAutoColorModeResolved(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("TERM", "xterm-256color")

	term, _ := newSimTerminal(t, Config{ColorMode: ColorModeAuto})
	assert.Equal(t, ColorMode256, term.ColorMode())
}

func TestEmergencyResetSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	assert.Contains(t, out, "\x1b[?1000l")
	assert.Contains(t, out, "\x1b[?2004l")
	assert.Contains(t, out, "\x1b[?25h")
	assert.Contains(t, out, "\x1b[?1049l")
	assert.Contains(t, out, "\x1b[0m")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\x1bc")))
}
