package element

import "fmt"

// Direction is the axis a Layout splits along
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// ConstraintKind discriminates Constraint variants
type ConstraintKind uint8

const (
	ConstraintLength ConstraintKind = iota
	ConstraintMin
	ConstraintMax
	ConstraintPercentage
	ConstraintRatio
)

// Constraint is a sizing rule for one child of a Layout
// A holds the length/percentage/numerator, B the ratio denominator
type Constraint struct {
	Kind ConstraintKind
	A, B uint16
}

// Length requests exactly n cells
func Length(n uint16) Constraint { return Constraint{Kind: ConstraintLength, A: n} }

// Min requests at least n cells
func Min(n uint16) Constraint { return Constraint{Kind: ConstraintMin, A: n} }

// Max requests at most n cells
func Max(n uint16) Constraint { return Constraint{Kind: ConstraintMax, A: n} }

// Percentage requests p percent of the available length
func Percentage(p uint16) Constraint { return Constraint{Kind: ConstraintPercentage, A: p} }

// Ratio requests a/b of the available length
func Ratio(a, b uint16) Constraint { return Constraint{Kind: ConstraintRatio, A: a, B: b} }

// DefaultConstraint fills in for constraints missing from a Layout
var DefaultConstraint = Ratio(1, 1)

func (c Constraint) String() string {
	switch c.Kind {
	case ConstraintLength:
		return fmt.Sprintf("Length(%d)", c.A)
	case ConstraintMin:
		return fmt.Sprintf("Min(%d)", c.A)
	case ConstraintMax:
		return fmt.Sprintf("Max(%d)", c.A)
	case ConstraintPercentage:
		return fmt.Sprintf("Percentage(%d)", c.A)
	case ConstraintRatio:
		return fmt.Sprintf("Ratio(%d,%d)", c.A, c.B)
	}
	return fmt.Sprintf("Constraint(%d)", c.Kind)
}

// Popup optionally shrinks a Layout to a centered sub-area
// The zero value is no popup
type Popup struct {
	Centered bool
	PercentX uint16
	PercentY uint16
}

// NoPopup lays children out over the full area
var NoPopup = Popup{}

// Centered returns a popup occupying px% of the width and py% of the height
func Centered(px, py uint16) Popup {
	return Popup{Centered: true, PercentX: min(px, 100), PercentY: min(py, 100)}
}
