package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termhost/core"
	"github.com/lixenwraith/termhost/terminal"
)

// Frame is one full-screen draw pass over a surface
// It records the cursor position requested by the element tree
type Frame struct {
	surface terminal.Surface
	area    core.Rect

	cursorX, cursorY int
	cursorSet        bool
}

// NewFrame creates a frame covering the whole surface
func NewFrame(s terminal.Surface) *Frame {
	w, h := s.Size()
	return &Frame{surface: s, area: core.NewRect(0, 0, w, h)}
}

// Area returns the full drawable area
func (f *Frame) Area() core.Rect {
	return f.area
}

// SetCursor records an absolute cursor position, last call wins
func (f *Frame) SetCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
	f.cursorSet = true
}

// Cursor returns the recorded cursor position
func (f *Frame) Cursor() (x, y int, ok bool) {
	return f.cursorX, f.cursorY, f.cursorSet
}

// Region returns a drawing view clipped to both r and the frame
func (f *Frame) Region(r core.Rect) Region {
	c := f.area.Intersect(r)
	return Region{surface: f.surface, X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// Region represents a rectangular area within the surface
// Coordinates passed to its methods are relative to the region's origin
type Region struct {
	surface terminal.Surface
	X, Y    int // Absolute position
	W, H    int // Dimensions
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{surface: r.surface, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Rect returns absolute bounds
func (r Region) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.surface.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Grapheme draws a cluster of display width w at (x, y)
// Clusters that would cross the right edge are not drawn
func (r Region) Grapheme(x, y int, g string, w int, style tcell.Style) {
	if x < 0 || y < 0 || y >= r.H || x+max(w, 1) > r.W {
		return
	}
	runes := []rune(g)
	if len(runes) == 0 {
		return
	}
	r.surface.SetContent(r.X+x, r.Y+y, runes[0], runes[1:], style)
}

// Fill fills the entire region with blanks in style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.surface.SetContent(r.X+x, r.Y+y, ' ', nil, style)
		}
	}
}

// Clear fills region with spaces and default style
func (r Region) Clear() {
	r.Fill(tcell.StyleDefault)
}
