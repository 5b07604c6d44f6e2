package element

// Alignment positions text horizontally within its area
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Borders is a bitset of frame sides
type Borders uint8

const (
	BorderNone  Borders = 0
	BorderTop   Borders = 1 << 0
	BorderRight Borders = 1 << 1
	BorderBot   Borders = 1 << 2
	BorderLeft  Borders = 1 << 3
	BorderAll           = BorderTop | BorderRight | BorderBot | BorderLeft
)

// Has reports whether all sides in b are present
func (s Borders) Has(b Borders) bool {
	return s&b == b
}

// BorderType selects the box drawing character set
type BorderType uint8

const (
	BorderPlain   BorderType = iota // ┌─┐│└┘
	BorderRounded                   // ╭─╮│╰╯
	BorderDouble                    // ╔═╗║╚╝
	BorderThick                     // ┏━┓┃┗┛
)

// BlockStyle describes the frame drawn around Paragraph, Block and ListItems
type BlockStyle struct {
	Title          Span
	TitleAlignment Alignment
	Borders        Borders
	BorderType     BorderType
	BorderStyle    Style
	FillStyle      Style
}
