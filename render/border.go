package render

import (
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/termhost/element"
)

// boxChars contains box drawing character sets indexed by BorderType
var boxChars = [...][6]rune{
	element.BorderPlain:   {'┌', '─', '┐', '│', '└', '┘'},
	element.BorderRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	element.BorderDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	element.BorderThick:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// drawBlock paints fill, borders and title, returning the inner content region
func (d *drawer) drawBlock(r Region, b element.BlockStyle) Region {
	if r.W <= 0 || r.H <= 0 {
		return r
	}

	if !b.FillStyle.IsZero() {
		r.Fill(d.resolve(b.FillStyle))
	}

	bt := b.BorderType
	if int(bt) >= len(boxChars) {
		bt = element.BorderPlain
	}
	chars := boxChars[bt]
	bs := d.resolve(b.FillStyle.Patch(b.BorderStyle))

	top := b.Borders.Has(element.BorderTop)
	bot := b.Borders.Has(element.BorderBot)
	left := b.Borders.Has(element.BorderLeft)
	right := b.Borders.Has(element.BorderRight)

	if top || bot {
		for x := 0; x < r.W; x++ {
			if top {
				r.Cell(x, 0, chars[boxH], bs)
			}
			if bot {
				r.Cell(x, r.H-1, chars[boxH], bs)
			}
		}
	}
	if left || right {
		for y := 0; y < r.H; y++ {
			if left {
				r.Cell(0, y, chars[boxV], bs)
			}
			if right {
				r.Cell(r.W-1, y, chars[boxV], bs)
			}
		}
	}

	// Corners only where both adjacent sides meet
	if top && left {
		r.Cell(0, 0, chars[boxTL], bs)
	}
	if top && right {
		r.Cell(r.W-1, 0, chars[boxTR], bs)
	}
	if bot && left {
		r.Cell(0, r.H-1, chars[boxBL], bs)
	}
	if bot && right {
		r.Cell(r.W-1, r.H-1, chars[boxBR], bs)
	}

	var lx, rx, ty, by int
	if left {
		lx = 1
	}
	if right {
		rx = 1
	}
	if top {
		ty = 1
	}
	if bot {
		by = 1
	}

	if b.Title.Text != "" {
		avail := r.W - lx - rx
		title := truncate(b.Title.Text, avail)
		x := lx + alignOffset(b.TitleAlignment, displayWidth(title), avail)
		d.drawString(r, x, 0, title, b.FillStyle.Patch(b.Title.Style))
		ty = 1
	}

	return r.Sub(lx, ty, r.W-lx-rx, r.H-ty-by)
}

// drawString writes s on one row starting at x, clipped to the region
func (d *drawer) drawString(r Region, x, y int, s string, st element.Style) int {
	ts := d.resolve(st)
	hidden := st.Modifiers.Has(element.Hidden)
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if x+w > r.W {
			break
		}
		d.putGlyph(r, x, y, cluster, w, ts, hidden)
		x += w
	}
	return x
}
