package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termhost/element"
	"github.com/lixenwraith/termhost/terminal"
)

// ansiLab holds the 16 ANSI palette entries for nearest-color search
var ansiLab [16]colorful.Color

func init() {
	for i := range ansiLab {
		ansiLab[i] = toColorful(terminal.PaletteRGB(uint8(i)))
	}
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// nearestANSI returns the perceptually closest of the 16 ANSI colors
func nearestANSI(r, g, b uint8) uint8 {
	c := toColorful(r, g, b)
	best := 0
	bestDist := c.DistanceLab(ansiLab[0])
	for i := 1; i < len(ansiLab); i++ {
		if d := c.DistanceLab(ansiLab[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

// resolveColor maps an element color to a tcell color within the mode's capability
// Default colors must be filtered by the caller
func resolveColor(c element.Color, mode terminal.ColorMode) tcell.Color {
	switch c.Kind {
	case element.ColorNamed:
		return tcell.PaletteColor(int(c.Index & 0x0F))

	case element.ColorIndexed:
		if mode == terminal.ColorMode16 && c.Index >= 16 {
			return tcell.PaletteColor(int(nearestANSI(terminal.PaletteRGB(c.Index))))
		}
		return tcell.PaletteColor(int(c.Index))

	case element.ColorRGB:
		switch mode {
		case terminal.ColorMode16:
			return tcell.PaletteColor(int(nearestANSI(c.R, c.G, c.B)))
		case terminal.ColorMode256:
			return tcell.PaletteColor(int(terminal.RGBTo256(c.R, c.G, c.B)))
		default:
			return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		}
	}
	return tcell.ColorDefault
}
