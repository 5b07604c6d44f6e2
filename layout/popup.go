package layout

import (
	"github.com/lixenwraith/termhost/core"
	"github.com/lixenwraith/termhost/element"
)

// PopupArea returns the centered sub-rect covering px% of the width and py% of the height
// Computed as a vertical three-way split followed by a horizontal split of the middle band
func PopupArea(area core.Rect, px, py uint16) core.Rect {
	px = min(px, 100)
	py = min(py, 100)

	rows := Solve(band(py), area.Height)
	cols := Solve(band(px), area.Width)

	return core.NewRect(area.X+cols[0], area.Y+rows[0], cols[1], rows[1])
}

func band(p uint16) []element.Constraint {
	side := (100 - p) / 2
	return []element.Constraint{
		element.Percentage(side),
		element.Percentage(p),
		element.Percentage(side),
	}
}
