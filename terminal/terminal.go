package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Surface is the drawable cell buffer handed to a draw callback
// tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	Size() (width, height int)
	ShowCursor(x, y int)
}

// Terminal provides terminal setup, input and frame output
type Terminal interface {
	// Init enters raw mode and the alternate screen, enabling configured input reporting
	Init() error

	// Fini restores the terminal, safe to call more than once
	Fini()

	// Size returns current dimensions
	Size() (width, height int)

	// ChannelEvents forwards raw events to ch until quit is closed or the terminal finishes
	// ch is closed on return
	ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{})

	// Draw clears the back buffer and cursor, runs fn and presents the result
	// A panic inside fn is returned as an error and nothing is presented
	Draw(fn func(s Surface)) error

	// ShowCursor places the cursor at absolute cell coordinates
	ShowCursor(x, y int)

	// HideCursor hides the cursor
	HideCursor()

	// ColorMode returns the resolved color capability, valid after Init
	ColorMode() ColorMode
}

// Config selects optional terminal features
type Config struct {
	ColorMode      ColorMode // ColorModeAuto detects from environment
	MouseCapture   bool
	BracketedPaste bool
	ReportFocus    bool
}

// termImpl implements Terminal over a tcell.Screen
type termImpl struct {
	screen tcell.Screen
	cfg    Config
	mode   ColorMode

	mu       sync.Mutex
	started  bool
	finished bool
}

// New creates a Terminal on the controlling TTY
func New(cfg Config) (Terminal, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("stdout is not a terminal")
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return NewWithScreen(s, cfg), nil
}

// NewWithScreen wraps an existing screen, such as tcell's simulation screen
func NewWithScreen(s tcell.Screen, cfg Config) Terminal {
	return &termImpl{screen: s, cfg: cfg}
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return errors.New("terminal already initialized")
	}
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	t.started = true

	if t.cfg.MouseCapture {
		t.screen.EnableMouse()
	}
	if t.cfg.BracketedPaste {
		t.screen.EnablePaste()
	}
	if t.cfg.ReportFocus {
		t.screen.EnableFocus()
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()

	t.mode = t.cfg.ColorMode
	if t.mode == ColorModeAuto {
		t.mode = refineColorMode(DetectColorMode(), t.screen.Colors())
	}
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.finished {
		return
	}
	t.finished = true

	if t.cfg.MouseCapture {
		t.screen.DisableMouse()
	}
	if t.cfg.BracketedPaste {
		t.screen.DisablePaste()
	}
	if t.cfg.ReportFocus {
		t.screen.DisableFocus()
	}
	t.screen.Fini()
}

func (t *termImpl) Size() (int, int) {
	return t.screen.Size()
}

func (t *termImpl) ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{}) {
	t.screen.ChannelEvents(ch, quit)
}

func (t *termImpl) Draw(fn func(s Surface)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.WithStack(fmt.Errorf("draw panic: %v", r))
		}
	}()

	t.screen.Clear()
	t.screen.HideCursor()
	fn(t.screen)
	t.screen.Show()
	return nil
}

func (t *termImpl) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *termImpl) HideCursor() {
	t.screen.HideCursor()
}

func (t *termImpl) ColorMode() ColorMode {
	return t.mode
}
