package input

import (
	"fmt"

	"github.com/lixenwraith/termhost/element"
)

// EventKind discriminates Event variants
type EventKind uint8

const (
	EventKeyPressed EventKind = iota
	EventFocusGained
	EventFocusLost
	EventPaste
	EventResize
	EventTick
)

// Event is a notification delivered to the host application
// Only the payload field matching Kind is meaningful
type Event struct {
	Kind   EventKind
	Key    Key            // EventKeyPressed
	Text   string         // EventPaste
	Bounds element.Bounds // EventResize
}

// KeyPressed returns a key event
func KeyPressed(k Key) Event { return Event{Kind: EventKeyPressed, Key: k} }

// FocusGained returns a focus-in event
func FocusGained() Event { return Event{Kind: EventFocusGained} }

// FocusLost returns a focus-out event
func FocusLost() Event { return Event{Kind: EventFocusLost} }

// Paste returns a bracketed paste event
func Paste(text string) Event { return Event{Kind: EventPaste, Text: text} }

// Resize returns a terminal resize event
func Resize(b element.Bounds) Event { return Event{Kind: EventResize, Bounds: b} }

// Tick returns a timer tick event
func Tick() Event { return Event{Kind: EventTick} }

func (e Event) String() string {
	switch e.Kind {
	case EventKeyPressed:
		return "KeyPressed(" + e.Key.String() + ")"
	case EventFocusGained:
		return "FocusGained"
	case EventFocusLost:
		return "FocusLost"
	case EventPaste:
		return fmt.Sprintf("Paste(%d bytes)", len(e.Text))
	case EventResize:
		return fmt.Sprintf("Resize(%dx%d)", e.Bounds.Width, e.Bounds.Height)
	case EventTick:
		return "Tick"
	}
	return fmt.Sprintf("Event(%d)", e.Kind)
}

// BoundsOf clamps terminal dimensions into Bounds
func BoundsOf(w, h int) element.Bounds {
	return element.Bounds{Width: clampU16(w), Height: clampU16(h)}
}

func clampU16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
