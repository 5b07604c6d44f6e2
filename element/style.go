package element

// ColorKind discriminates Color variants
type ColorKind uint8

const (
	ColorDefault ColorKind = iota // No override, terminal default stays
	ColorNamed                    // One of the 16 ANSI colors, Index holds the Named value
	ColorIndexed                  // 256-color palette entry
	ColorRGB                      // 24-bit color
)

// Named enumerates the 16 ANSI colors in palette order
type Named uint8

const (
	Black Named = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

// Color is a foreground or background color
// The zero value is ColorDefault
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// Default leaves the terminal color untouched
var Default = Color{}

// NamedColor returns one of the 16 ANSI colors
func NamedColor(n Named) Color {
	return Color{Kind: ColorNamed, Index: uint8(n) & 0x0F}
}

// Indexed returns a 256-color palette entry
func Indexed(i uint8) Color {
	return Color{Kind: ColorIndexed, Index: i}
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// IsDefault reports whether the color leaves the terminal default in place
func (c Color) IsDefault() bool {
	return c.Kind == ColorDefault
}

// Modifier is a bitset of text attributes
type Modifier uint16

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut

	// ModifierMask covers every known modifier, other bits are ignored
	ModifierMask = Bold | Dim | Italic | Underlined | SlowBlink | RapidBlink | Reversed | Hidden | CrossedOut
)

// Has reports whether all bits of m are set
func (s Modifier) Has(m Modifier) bool {
	return s&m == m
}

// Style bundles colors and modifiers for a run of text
type Style struct {
	Fg        Color
	Bg        Color
	Modifiers Modifier
}

// StyleDefault changes nothing when applied
var StyleDefault = Style{}

// IsZero returns true if style has no colors or modifiers set
func (s Style) IsZero() bool {
	return s.Fg.IsDefault() && s.Bg.IsDefault() && s.Modifiers&ModifierMask == 0
}

// Patch layers other on top of s: non-default colors replace, modifiers accumulate
func (s Style) Patch(other Style) Style {
	if !other.Fg.IsDefault() {
		s.Fg = other.Fg
	}
	if !other.Bg.IsDefault() {
		s.Bg = other.Bg
	}
	s.Modifiers |= other.Modifiers & ModifierMask
	return s
}

// Foreground returns a copy with the foreground replaced
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background replaced
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Add returns a copy with the modifiers added
func (s Style) Add(m Modifier) Style {
	s.Modifiers |= m
	return s
}
