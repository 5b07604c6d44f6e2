// Package render draws element trees onto a terminal surface.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termhost/core"
	"github.com/lixenwraith/termhost/element"
	"github.com/lixenwraith/termhost/layout"
	"github.com/lixenwraith/termhost/terminal"
)

// ScrollClampThreshold is the paragraph scroll offset at and above which scrolling is reset to zero
const ScrollClampThreshold = 65000

// Renderer walks element trees and writes cells into a Frame
type Renderer struct {
	resolver StyleResolver
}

// New creates a renderer resolving colors for the given mode
func New(mode terminal.ColorMode) *Renderer {
	return &Renderer{resolver: NewStyleResolver(mode)}
}

// Resolver returns the style resolver in use
func (rn *Renderer) Resolver() StyleResolver {
	return rn.resolver
}

// RenderAll draws every root over the full frame area in order and applies the cursor
func (rn *Renderer) RenderAll(roots []element.Element, f *Frame) {
	for _, el := range roots {
		rn.Render(el, f.Area(), f)
	}
	if x, y, ok := f.Cursor(); ok {
		f.surface.ShowCursor(x, y)
	}
}

// Render draws el into area
func (rn *Renderer) Render(el element.Element, area core.Rect, f *Frame) {
	if el == nil {
		return
	}
	el.Accept(&drawer{rn: rn, frame: f, area: area})
}

// drawer renders one element into one area
type drawer struct {
	rn    *Renderer
	frame *Frame
	area  core.Rect
}

func (d *drawer) resolve(s element.Style) tcell.Style {
	return d.rn.resolver.Resolve(s)
}

// putGlyph draws a cluster, or blanks of the same width when hidden
func (d *drawer) putGlyph(r Region, x, y int, g string, w int, st tcell.Style, hidden bool) {
	if !hidden {
		r.Grapheme(x, y, g, w, st)
		return
	}
	if x+w > r.W {
		return
	}
	for i := 0; i < max(w, 1); i++ {
		r.Cell(x+i, y, ' ', st)
	}
}

func (d *drawer) VisitBlock(b *element.Block) {
	d.drawBlock(d.frame.Region(d.area), b.Block)
}

func (d *drawer) VisitParagraph(p *element.Paragraph) {
	d.drawParagraph(p)
}

func (d *drawer) VisitListItems(l *element.ListItems) {
	d.drawList(l)
}

func (d *drawer) VisitLayout(l *element.Layout) {
	if l.Popup.Centered {
		// Nothing underneath may bleed through the popup
		d.frame.Region(d.area).Clear()
	}
	rects := layout.Split(l, d.area)
	for i, child := range l.Children {
		d.rn.Render(child, rects[i], d.frame)
	}
}
