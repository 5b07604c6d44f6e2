// Package element defines the declarative UI vocabulary exchanged with the host
// application: a closed tree of renderable nodes rebuilt on every frame.
//
// Element is sealed. Consumers dispatch through Visitor.
package element

// Element is a node of the UI tree
type Element interface {
	// Accept calls the visitor method matching the concrete variant
	Accept(v Visitor)
	sealed()
}

// Visitor handles each Element variant
type Visitor interface {
	VisitParagraph(p *Paragraph)
	VisitBlock(b *Block)
	VisitLayout(l *Layout)
	VisitListItems(l *ListItems)
}

// Paragraph is a framed block of styled, word-wrapped text
type Paragraph struct {
	Block     BlockStyle
	Lines     []Line
	Alignment Alignment
	Scroll    uint16 // Wrapped lines skipped from the top
	Cursor    Cursor // Relative to the paragraph's own area
}

// Block is a bare bordered/titled frame with no content
type Block struct {
	Block BlockStyle
}

// Layout partitions its area among children according to constraints
type Layout struct {
	Children    []Element
	Direction   Direction
	Constraints []Constraint // Paired positionally with Children
	HMargin     uint16
	VMargin     uint16
	Popup       Popup
}

// ListItems is a framed list with an optional highlighted selection
type ListItems struct {
	Block                 BlockStyle
	Items                 []Line
	HighlightStyle        Style
	HighlightSymbol       string
	RepeatHighlightSymbol bool
	StartCorner           Corner
	Selected              Selection
}

func (p *Paragraph) Accept(v Visitor) { v.VisitParagraph(p) }
func (b *Block) Accept(v Visitor)     { v.VisitBlock(b) }
func (l *Layout) Accept(v Visitor)    { v.VisitLayout(l) }
func (l *ListItems) Accept(v Visitor) { v.VisitListItems(l) }

func (*Paragraph) sealed() {}
func (*Block) sealed()     {}
func (*Layout) sealed()    {}
func (*ListItems) sealed() {}

// Bounds is the terminal's drawable area
type Bounds struct {
	Width  uint16
	Height uint16
}

// Cursor requests terminal cursor placement
// The zero value is hidden
type Cursor struct {
	Visible  bool
	Col, Row uint16
}

// CursorHidden leaves the terminal cursor untouched
var CursorHidden = Cursor{}

// CursorAt places the cursor at (col, row) relative to the owning area
func CursorAt(col, row uint16) Cursor {
	return Cursor{Visible: true, Col: col, Row: row}
}

// Selection identifies the selected list item, if any
// The zero value selects nothing
type Selection struct {
	Valid bool
	Index int
}

// SelectNone is the empty selection
var SelectNone = Selection{}

// SelectIndex selects item n
func SelectIndex(n int) Selection {
	return Selection{Valid: true, Index: n}
}

// Corner is the rectangle corner a list grows from
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// FromBottom reports whether items stack upward from the bottom edge
func (c Corner) FromBottom() bool {
	return c == BottomLeft || c == BottomRight
}

// FromRight reports whether rows anchor to the right edge
func (c Corner) FromRight() bool {
	return c == TopRight || c == BottomRight
}
