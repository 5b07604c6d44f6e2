package render

import (
	"github.com/lixenwraith/termhost/element"
)

// EffectiveScroll returns the scroll offset actually applied for a requested one
func EffectiveScroll(scroll uint16) int {
	if scroll >= ScrollClampThreshold {
		return 0
	}
	return int(scroll)
}

func (d *drawer) drawParagraph(p *element.Paragraph) {
	outer := d.frame.Region(d.area)
	inner := d.drawBlock(outer, p.Block)

	if p.Cursor.Visible {
		d.frame.SetCursor(d.area.X+int(p.Cursor.Col), d.area.Y+int(p.Cursor.Row))
	}
	if inner.W <= 0 || inner.H <= 0 {
		return
	}

	base := p.Block.FillStyle
	skip := EffectiveScroll(p.Scroll)
	y := 0
	for _, line := range p.Lines {
		for _, rw := range wrap(line, base, inner.W) {
			if skip > 0 {
				skip--
				continue
			}
			if y >= inner.H {
				return
			}
			d.drawRow(inner, alignOffset(p.Alignment, rw.width(), inner.W), y, rw, nil)
			y++
		}
	}
}

// drawRow writes glyphs left to right from x, stopping at the region edge
// A non-nil over style is patched on top of each glyph's own style
func (d *drawer) drawRow(r Region, x, y int, rw row, over *element.Style) int {
	for _, g := range rw {
		if x+g.width > r.W {
			break
		}
		st := g.style
		if over != nil {
			st = st.Patch(*over)
		}
		d.putGlyph(r, x, y, g.text, g.width, d.resolve(st), st.Modifiers.Has(element.Hidden))
		x += g.width
	}
	return x
}
