package terminal

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // Resolved from environment at Init
	ColorMode16                         // ANSI 16 colors
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeAuto:
		return "auto"
	case ColorMode16:
		return "16"
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	}
	return "unknown"
}

// ParseColorMode parses a config or flag value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorModeAuto, nil
	case "16", "ansi":
		return ColorMode16, nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "24bit", "true":
		return ColorModeTrueColor, nil
	}
	return ColorModeAuto, errors.Errorf("unknown color mode %q", s)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	if term == "linux" || term == "vt100" || term == "vt220" || term == "ansi" {
		return ColorMode16
	}

	return ColorMode256
}

// refineColorMode lowers a detected mode to what the terminfo entry reports
// colors <= 0 means unknown and leaves the mode as is
func refineColorMode(detected ColorMode, colors int) ColorMode {
	if detected == ColorModeTrueColor || colors <= 0 {
		return detected
	}
	if colors < 256 {
		return ColorMode16
	}
	return detected
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// ansiValues are the xterm defaults for palette indices 0-15
var ansiValues = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nearestCube maps 0-255 to nearest cube index 0-5
func nearestCube(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
// Near-gray colors are matched against the grayscale ramp as well as the cube
func RGBTo256(r, g, b uint8) uint8 {
	cr, cg, cb := nearestCube(r), nearestCube(g), nearestCube(b)
	cubeIdx := 16 + 36*cr + 6*cg + cb

	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))
	if maxDiff >= 10 {
		return cubeIdx
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	grayIdx := grayscaleStart + min(max(gray-8, 0)/10, 23)
	grayLevel := 8 + (grayIdx-grayscaleStart)*10
	grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)
	cubeDist := abs(int(r)-int(cubeValues[cr])) +
		abs(int(g)-int(cubeValues[cg])) +
		abs(int(b)-int(cubeValues[cb]))

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cubeIdx
}

// PaletteRGB returns the xterm default RGB value of a 256-palette index
func PaletteRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		v := ansiValues[index]
		return v[0], v[1], v[2]
	case index < grayscaleStart:
		n := index - 16
		return cubeValues[n/36], cubeValues[(n%36)/6], cubeValues[n%6]
	default:
		level := uint8(8 + int(index-grayscaleStart)*10)
		return level, level, level
	}
}
