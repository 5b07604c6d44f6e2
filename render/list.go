package render

import (
	"github.com/lixenwraith/termhost/element"
)

// listEntry is one item wrapped to the available width
type listEntry struct {
	rows     []row
	selected bool
}

func (d *drawer) drawList(l *element.ListItems) {
	inner := d.drawBlock(d.frame.Region(d.area), l.Block)
	if inner.W <= 0 || inner.H <= 0 || len(l.Items) == 0 {
		return
	}

	base := l.Block.FillStyle
	sel := -1
	if l.Selected.Valid && l.Selected.Index >= 0 && l.Selected.Index < len(l.Items) {
		sel = l.Selected.Index
	}

	symbol := ""
	symW := 0
	if sel >= 0 {
		symbol = truncate(l.HighlightSymbol, inner.W)
		symW = displayWidth(symbol)
	}
	textW := inner.W - symW

	entries := make([]listEntry, len(l.Items))
	for i, item := range l.Items {
		rows := wrap(item, base, textW)
		if len(rows) == 0 {
			rows = []row{nil}
		}
		entries[i] = listEntry{rows: rows, selected: i == sel}
	}

	start := listOffset(entries, sel, inner.H)
	highlight := base.Patch(l.HighlightStyle)
	fromBottom := l.StartCorner.FromBottom()
	fromRight := l.StartCorner.FromRight()

	used := 0
	for i := start; i < len(entries) && used < inner.H; i++ {
		e := entries[i]
		h := min(len(e.rows), inner.H-used)

		// Top corners stack downward, bottom corners stack upward
		y := used
		if fromBottom {
			y = inner.H - used - h
		}

		for j := 0; j < h; j++ {
			rw := e.rows[j]
			ry := y + j
			prefix := ""
			var over *element.Style
			if e.selected {
				over = &highlight
				inner.Sub(0, ry, inner.W, 1).Fill(d.resolve(highlight))
				if j == 0 || l.RepeatHighlightSymbol {
					prefix = symbol
				}
			}

			x := 0
			if fromRight {
				x = max(inner.W-symW-rw.width(), 0)
			}
			if prefix != "" {
				d.drawString(inner, x, ry, prefix, highlight)
			}
			d.drawRow(inner, x+symW, ry, rw, over)
		}
		used += h
	}
}

// listOffset returns the first item index to draw so that sel is fully visible
func listOffset(entries []listEntry, sel, height int) int {
	if sel < 0 {
		return 0
	}
	start := 0
	for start < sel {
		total := 0
		for i := start; i <= sel; i++ {
			total += len(entries[i].rows)
		}
		if total <= height {
			break
		}
		start++
	}
	return start
}
