package main

import (
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// field is an immutable single-line text field
// Every edit returns a new value so host states never share backing arrays
type field struct {
	text   []rune
	cursor int // Rune index the cursor sits before
}

func (f field) Value() string {
	return string(f.text)
}

// Insert adds s at the cursor, line breaks become spaces
func (f field) Insert(s string) field {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
	runes := []rune(s)
	if len(runes) == 0 {
		return f
	}
	f.text = slices.Concat(f.text[:f.cursor], runes, f.text[f.cursor:])
	f.cursor += len(runes)
	return f
}

// DeleteBackward removes the rune before the cursor
func (f field) DeleteBackward() field {
	if f.cursor == 0 {
		return f
	}
	f.text = slices.Concat(f.text[:f.cursor-1], f.text[f.cursor:])
	f.cursor--
	return f
}

// DeleteForward removes the rune at the cursor
func (f field) DeleteForward() field {
	if f.cursor >= len(f.text) {
		return f
	}
	f.text = slices.Concat(f.text[:f.cursor], f.text[f.cursor+1:])
	return f
}

func (f field) Left() field {
	if f.cursor > 0 {
		f.cursor--
	}
	return f
}

func (f field) Right() field {
	if f.cursor < len(f.text) {
		f.cursor++
	}
	return f
}

func (f field) Home() field {
	f.cursor = 0
	return f
}

func (f field) End() field {
	f.cursor = len(f.text)
	return f
}

// View returns the visible slice of text for a box width cells wide and the
// cursor column within it
// The view scrolls so the cursor stays inside the box, leaving a cell for the cursor at the end
func (f field) View(width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	start := 0
	for start < f.cursor && runewidth.StringWidth(string(f.text[start:f.cursor])) > width-1 {
		start++
	}
	col := runewidth.StringWidth(string(f.text[start:f.cursor]))
	return runewidth.Truncate(string(f.text[start:]), width, ""), col
}
