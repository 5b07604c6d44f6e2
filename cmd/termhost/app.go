package main

import (
	"fmt"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termhost/element"
	"github.com/lixenwraith/termhost/input"
	"github.com/lixenwraith/termhost/status"
)

// Colors
var (
	headerBg    = element.RGB(40, 50, 70)
	borderColor = element.RGB(80, 100, 140)
	accentColor = element.RGB(100, 200, 220)
	selectBg    = element.RGB(50, 50, 70)
	dimColor    = element.RGB(100, 100, 100)
	warnColor   = element.RGB(255, 180, 100)
	popupBg     = element.RGB(20, 20, 30)
)

const (
	title    = "termhost"
	pageStep = 5
)

var seedItems = []string{
	"Configuration file",
	"User preferences",
	"System settings",
	"Network config",
	"Display options",
	"Audio settings",
	"Input mapping",
	"Debug logging",
}

var cornerNames = [...]string{
	element.TopLeft:     "top-left",
	element.TopRight:    "top-right",
	element.BottomLeft:  "bottom-left",
	element.BottomRight: "bottom-right",
}

// demoState is the whole application state, replaced on every update
type demoState struct {
	bounds   element.Bounds
	items    []string
	selected int
	input    field
	corner   element.Corner
	help     bool
	focused  bool
	ticks    int
	status   string
}

// demo is the showcase host driven by the engine
// stats is read-only here, the engine writes it
type demo struct {
	stats *status.Registry
}

func (d demo) Init(b element.Bounds) (demoState, []element.Element) {
	s := demoState{
		bounds:  b,
		items:   slices.Clone(seedItems),
		focused: true,
		status:  "ready",
	}
	return s, view(s, d.stats.Snapshot())
}

func (demo) Update(s demoState, ev input.Event) demoState {
	switch ev.Kind {
	case input.EventKeyPressed:
		return s.key(ev.Key)
	case input.EventPaste:
		s.input = s.input.Insert(ev.Text)
		s.status = fmt.Sprintf("pasted %d bytes", len(ev.Text))
	case input.EventResize:
		s.bounds = ev.Bounds
		s.status = fmt.Sprintf("resized %dx%d", ev.Bounds.Width, ev.Bounds.Height)
	case input.EventFocusGained:
		s.focused = true
	case input.EventFocusLost:
		s.focused = false
	case input.EventTick:
		s.ticks++
	}
	return s
}

func (d demo) Render(s demoState) []element.Element {
	return view(s, d.stats.Snapshot())
}

func (s demoState) key(k input.Key) demoState {
	s.status = k.String()

	if k.Mods&(input.ModCtrl|input.ModAlt|input.ModMeta) != 0 {
		if k.Mods == input.ModCtrl && k.Code.Kind == input.KindScalar {
			switch k.Code.Text {
			case "u":
				s.input = field{}
			case "d":
				s = s.removeSelected()
			}
		}
		return s
	}

	switch k.Code.Kind {
	case input.KindScalar:
		s.input = s.input.Insert(k.Code.Text)
	case input.KindBackspace:
		s.input = s.input.DeleteBackward()
	case input.KindDelete:
		s.input = s.input.DeleteForward()
	case input.KindLeft:
		s.input = s.input.Left()
	case input.KindRight:
		s.input = s.input.Right()
	case input.KindHome:
		s.input = s.input.Home()
	case input.KindEnd:
		s.input = s.input.End()
	case input.KindUp:
		s.selected = s.clampSelection(s.selected - 1)
	case input.KindDown:
		s.selected = s.clampSelection(s.selected + 1)
	case input.KindPageUp:
		s.selected = s.clampSelection(s.selected - pageStep)
	case input.KindPageDown:
		s.selected = s.clampSelection(s.selected + pageStep)
	case input.KindTab:
		s.corner = (s.corner + 1) % 4
	case input.KindBackTab:
		s.corner = (s.corner + 3) % 4
	case input.KindEnter:
		if v := s.input.Value(); v != "" {
			s.items = append(slices.Clone(s.items), v)
			s.selected = len(s.items) - 1
			s.input = field{}
		}
	case input.KindFunction:
		if k.Code.F == 1 {
			s.help = !s.help
		}
	}
	return s
}

func (s demoState) removeSelected() demoState {
	if len(s.items) == 0 {
		return s
	}
	s.items = slices.Delete(slices.Clone(s.items), s.selected, s.selected+1)
	s.selected = s.clampSelection(s.selected)
	return s
}

func (s demoState) clampSelection(i int) int {
	return max(0, min(i, len(s.items)-1))
}

// view builds the element tree for s
func view(s demoState, stats []status.Metric) []element.Element {
	root := &element.Layout{
		Direction: element.Vertical,
		Constraints: []element.Constraint{
			element.Length(1),
			element.Min(3),
			element.Length(3),
			element.Length(1),
		},
		Children: []element.Element{
			header(s),
			body(s, stats),
			inputBox(s),
			footer(s),
		},
	}

	tree := []element.Element{root}
	if s.help {
		tree = append(tree, helpPopup())
	}
	return tree
}

func header(s demoState) element.Element {
	line := titleSpans(title, s.ticks)
	line = append(line, element.Styled(fmt.Sprintf("  %dx%d", s.bounds.Width, s.bounds.Height), element.Style{Fg: dimColor}))
	if !s.focused {
		line = append(line, element.Styled("  unfocused", element.Style{Fg: warnColor}))
	}
	return &element.Paragraph{
		Block:     element.BlockStyle{FillStyle: element.Style{Bg: headerBg}},
		Lines:     []element.Line{line},
		Alignment: element.AlignCenter,
	}
}

// titleSpans colors each letter along a hue wheel that rotates with the tick count
func titleSpans(text string, phase int) element.Line {
	line := make(element.Line, 0, len(text))
	i := 0
	for _, r := range text {
		hue := math.Mod(float64(phase*6+i*24), 360)
		c := colorful.Hcl(hue, 0.6, 0.75).Clamped()
		cr, cg, cb := c.RGB255()
		line = append(line, element.Styled(string(r), element.Style{
			Fg:        element.RGB(cr, cg, cb),
			Modifiers: element.Bold,
		}))
		i++
	}
	return line
}

func body(s demoState, stats []status.Metric) element.Element {
	items := make([]element.Line, len(s.items))
	for i, it := range s.items {
		items[i] = element.Line{element.Raw(it)}
	}
	sel := element.SelectNone
	if len(s.items) > 0 {
		sel = element.SelectIndex(s.selected)
	}

	list := &element.ListItems{
		Block: element.BlockStyle{
			Title:       element.Raw(" Items "),
			Borders:     element.BorderAll,
			BorderType:  element.BorderRounded,
			BorderStyle: element.Style{Fg: borderColor},
		},
		Items:           items,
		HighlightStyle:  element.Style{Fg: accentColor, Bg: selectBg, Modifiers: element.Bold},
		HighlightSymbol: "> ",
		StartCorner:     s.corner,
		Selected:        sel,
	}

	return &element.Layout{
		Direction:   element.Horizontal,
		Constraints: []element.Constraint{element.Percentage(40), element.Percentage(60)},
		Children:    []element.Element{list, details(s, stats)},
	}
}

func details(s demoState, stats []status.Metric) element.Element {
	var lines []element.Line
	if len(s.items) == 0 {
		lines = element.Lines("No items. Type a name and press Enter.", element.Style{Fg: dimColor})
	} else {
		lines = []element.Line{
			{element.Styled(s.items[s.selected], element.Style{Fg: accentColor, Modifiers: element.Bold})},
			{element.Styled(fmt.Sprintf("Item %d of %d", s.selected+1, len(s.items)), element.Style{Fg: dimColor})},
			{},
			{
				element.Raw("The list starts from the "),
				element.Styled(cornerNames[s.corner], element.Style{Modifiers: element.Underlined}),
				element.Raw(" corner. Press Tab to move it, Ctrl+D to remove the selected item."),
			},
		}
	}
	if len(stats) > 0 {
		lines = append(lines, element.Line{}, element.Line{element.Styled("Engine", element.Style{Modifiers: element.Bold})})
		for _, m := range stats {
			lines = append(lines, element.Line{
				element.Styled(fmt.Sprintf("%-18s", m.Name), element.Style{Fg: dimColor}),
				element.Raw(m.Value),
			})
		}
	}
	return &element.Paragraph{
		Block: element.BlockStyle{
			Title:       element.Raw(" Details "),
			Borders:     element.BorderAll,
			BorderStyle: element.Style{Fg: borderColor},
		},
		Lines: lines,
	}
}

func inputBox(s demoState) element.Element {
	inner := max(int(s.bounds.Width)-2, 0)
	text, col := s.input.View(inner)

	cursor := element.CursorHidden
	if !s.help && inner > 0 {
		cursor = element.CursorAt(uint16(1+col), 1)
	}
	return &element.Paragraph{
		Block: element.BlockStyle{
			Title:       element.Raw(" Input "),
			Borders:     element.BorderAll,
			BorderStyle: element.Style{Fg: borderColor},
		},
		Lines:  []element.Line{{element.Raw(text)}},
		Cursor: cursor,
	}
}

func footer(s demoState) element.Element {
	keys := &element.Paragraph{
		Lines: element.Lines("Esc quit  F1 help  Up/Down select  Enter add  Tab corner", element.Style{Fg: dimColor}),
	}
	status := &element.Paragraph{
		Lines:     []element.Line{{element.Styled(s.status, element.Style{Fg: accentColor})}},
		Alignment: element.AlignRight,
	}
	return &element.Layout{
		Direction:   element.Horizontal,
		Constraints: []element.Constraint{element.Min(1), element.Length(24)},
		Children:    []element.Element{keys, status},
	}
}

func helpPopup() element.Element {
	text := []element.Line{
		{element.Styled("Keys", element.Style{Modifiers: element.Bold})},
		{},
		{element.Raw("Up/Down, PgUp/PgDn   move selection")},
		{element.Raw("Enter                add input as item")},
		{element.Raw("Ctrl+D               remove selected item")},
		{element.Raw("Ctrl+U               clear input")},
		{element.Raw("Tab/Shift+Tab        move list corner")},
		{element.Raw("F1                   close this help")},
		{element.Raw("Esc                  quit")},
	}
	return &element.Layout{
		Popup: element.Centered(60, 60),
		Children: []element.Element{&element.Paragraph{
			Block: element.BlockStyle{
				Title:          element.Raw(" Help "),
				TitleAlignment: element.AlignCenter,
				Borders:        element.BorderAll,
				BorderType:     element.BorderDouble,
				BorderStyle:    element.Style{Fg: accentColor},
				FillStyle:      element.Style{Bg: popupBg},
			},
			Lines: text,
		}},
	}
}
