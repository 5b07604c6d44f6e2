package element

import "strings"

// Span is a run of text sharing one style
type Span struct {
	Text  string
	Style Style
}

// Line is an ordered sequence of spans drawn left to right
type Line []Span

// Raw returns an unstyled span
func Raw(s string) Span {
	return Span{Text: s}
}

// Styled returns a span with the given style
func Styled(s string, st Style) Span {
	return Span{Text: s, Style: st}
}

// Text concatenates the span texts
func (l Line) Text() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Text
	}
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Lines splits a string on newlines into unstyled lines
func Lines(s string, st Style) []Line {
	parts := strings.Split(s, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{{Text: p, Style: st}}
	}
	return lines
}
