package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termhost/element"
	"github.com/lixenwraith/termhost/terminal"
)

// StyleResolver converts element styles to tcell styles for a color mode
type StyleResolver struct {
	Mode terminal.ColorMode
}

// NewStyleResolver creates a resolver for the given color mode
func NewStyleResolver(mode terminal.ColorMode) StyleResolver {
	return StyleResolver{Mode: mode}
}

// Resolve maps s to a tcell style
// Default colors leave the tcell color unset; Hidden is handled by the drawing code
func (r StyleResolver) Resolve(s element.Style) tcell.Style {
	st := tcell.StyleDefault
	if !s.Fg.IsDefault() {
		st = st.Foreground(resolveColor(s.Fg, r.Mode))
	}
	if !s.Bg.IsDefault() {
		st = st.Background(resolveColor(s.Bg, r.Mode))
	}

	m := s.Modifiers & element.ModifierMask
	if m == 0 {
		return st
	}
	if m&element.Bold != 0 {
		st = st.Bold(true)
	}
	if m&element.Dim != 0 {
		st = st.Dim(true)
	}
	if m&element.Italic != 0 {
		st = st.Italic(true)
	}
	if m&element.Underlined != 0 {
		st = st.Underline(true)
	}
	if m&(element.SlowBlink|element.RapidBlink) != 0 {
		st = st.Blink(true)
	}
	if m&element.Reversed != 0 {
		st = st.Reverse(true)
	}
	if m&element.CrossedOut != 0 {
		st = st.StrikeThrough(true)
	}
	return st
}
