package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// PasteAssembler converts raw tcell events into host events
// Bracketed paste content, which tcell delivers as key events between start and
// end markers, is assembled into a single Paste event. Control keys inside a
// paste are written back as their raw bytes, Enter as a newline. Named keys
// with no byte form, such as arrows, are dropped.
type PasteAssembler struct {
	pasting bool
	buf     strings.Builder
}

// Feed returns the host event for ev, or false when ev produces none
func (p *PasteAssembler) Feed(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventPaste:
		if ev.Start() {
			p.pasting = true
			p.buf.Reset()
			return Event{}, false
		}
		if !p.pasting {
			return Event{}, false
		}
		p.pasting = false
		text := p.buf.String()
		p.buf.Reset()
		return Paste(text), true

	case *tcell.EventKey:
		if p.pasting {
			p.appendPasted(ev)
			return Event{}, false
		}
		return KeyPressed(TranslateKey(ev)), true

	case *tcell.EventResize:
		w, h := ev.Size()
		return Resize(BoundsOf(w, h)), true

	case *tcell.EventFocus:
		if ev.Focused {
			return FocusGained(), true
		}
		return FocusLost(), true
	}

	// Mouse, clipboard and interrupt events have no host counterpart
	return Event{}, false
}

// Pasting reports whether a bracketed paste is in progress
func (p *PasteAssembler) Pasting() bool {
	return p.pasting
}

func (p *PasteAssembler) appendPasted(ev *tcell.EventKey) {
	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		p.buf.WriteRune(ev.Rune())
	case k == tcell.KeyEnter:
		p.buf.WriteByte('\n')
	case k == tcell.KeyBackspace && ev.Rune() == 0x7f:
		p.buf.WriteByte(0x7f)
	case k >= tcell.KeyNUL && k < 0x20:
		p.buf.WriteByte(byte(k))
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		p.buf.WriteByte(byte(k - tcell.KeyCtrlSpace))
	}
}
