package render

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/termhost/element"
)

// glyph is one grapheme cluster with its display width and composed style
type glyph struct {
	text  string
	width int
	style element.Style
	space bool
}

// row is a run of glyphs occupying one screen line
type row []glyph

// width returns the total display width of the row
func (r row) width() int {
	w := 0
	for _, g := range r {
		w += g.width
	}
	return w
}

// trimRight drops trailing whitespace glyphs
func (r row) trimRight() row {
	n := len(r)
	for n > 0 && r[n-1].space {
		n--
	}
	return r[:n]
}

// segment is a run of glyphs ending at a line-break opportunity
type segment struct {
	glyphs    []glyph
	mustBreak bool
}

// segments splits a line into break-delimited glyph runs
// Styles are composed as base patched by each span's style
func segments(line element.Line, base element.Style) []segment {
	text := line.Text()
	if text == "" {
		return nil
	}

	// Byte offset -> style lookup across span boundaries
	styles := make([]element.Style, 0, len(line))
	ends := make([]int, 0, len(line))
	off := 0
	for _, sp := range line {
		off += len(sp.Text)
		ends = append(ends, off)
		styles = append(styles, base.Patch(sp.Style))
	}
	styleAt := func(pos int) element.Style {
		for i, end := range ends {
			if pos < end {
				return styles[i]
			}
		}
		return base
	}

	var segs []segment
	rest := text
	pos := 0
	state := -1
	for len(rest) > 0 {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		var s segment
		gstate := -1
		gpos := pos
		for len(seg) > 0 {
			var cluster string
			var w int
			cluster, seg, w, gstate = uniseg.FirstGraphemeClusterInString(seg, gstate)
			r := []rune(cluster)[0]
			if r < 0x20 || r == 0x7F {
				// Control characters (newlines, tabs) are not drawable
				gpos += len(cluster)
				continue
			}
			s.glyphs = append(s.glyphs, glyph{
				text:  cluster,
				width: w,
				style: styleAt(gpos),
				space: unicode.IsSpace(r),
			})
			gpos += len(cluster)
		}
		pos = gpos
		// The final segment always reports mustBreak at end of text
		s.mustBreak = mustBreak && len(rest) > 0
		segs = append(segs, s)
	}
	return segs
}

// wrap word-wraps a line to width, trimming whitespace at wrap points
// An empty line yields one empty row; width <= 0 yields nothing
func wrap(line element.Line, base element.Style, width int) []row {
	if width <= 0 {
		return nil
	}

	var rows []row
	var cur row
	curW := 0

	flush := func() {
		rows = append(rows, cur.trimRight())
		cur = nil
		curW = 0
	}

	for _, seg := range segments(line, base) {
		wordW := row(seg.glyphs).trimRight().width()
		fullW := row(seg.glyphs).width()

		switch {
		case curW+wordW <= width:
			cur = append(cur, seg.glyphs...)
			curW += fullW

		case wordW <= width:
			flush()
			cur = append(cur, seg.glyphs...)
			curW = fullW

		default:
			// Word longer than a whole line breaks between graphemes
			if curW > 0 {
				flush()
			}
			for _, g := range seg.glyphs {
				if curW+g.width > width && curW > 0 {
					if g.space {
						continue
					}
					flush()
				}
				cur = append(cur, g)
				curW += g.width
			}
		}

		if seg.mustBreak {
			flush()
		}
	}

	if len(cur) > 0 || len(rows) == 0 {
		flush()
	}
	return rows
}

// alignOffset returns the left offset placing w cells within avail
func alignOffset(a element.Alignment, w, avail int) int {
	if w >= avail {
		return 0
	}
	switch a {
	case element.AlignCenter:
		return (avail - w) / 2
	case element.AlignRight:
		return avail - w
	}
	return 0
}

// truncate shortens s to fit width display cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// displayWidth returns the number of cells s occupies
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
