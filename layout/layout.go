// Package layout partitions screen area among the children of a Layout element.
package layout

import (
	"github.com/lixenwraith/termhost/core"
	"github.com/lixenwraith/termhost/element"
)

// Split returns one rect per child of l, in child order
// Rects tile the margin-shrunk (and popup-shrunk) area exactly
func Split(l *element.Layout, area core.Rect) []core.Rect {
	n := len(l.Children)
	if n == 0 {
		return nil
	}

	if l.Popup.Centered {
		area = PopupArea(area, l.Popup.PercentX, l.Popup.PercentY)
	}
	inner := area.Inner(int(l.HMargin), int(l.VMargin))

	constraints := Pad(l.Constraints, n)
	rects := make([]core.Rect, n)

	if l.Direction == element.Horizontal {
		sizes := Solve(constraints, inner.Width)
		x := inner.X
		for i, w := range sizes {
			rects[i] = core.NewRect(x, inner.Y, w, inner.Height)
			x += w
		}
	} else {
		sizes := Solve(constraints, inner.Height)
		y := inner.Y
		for i, h := range sizes {
			rects[i] = core.NewRect(inner.X, y, inner.Width, h)
			y += h
		}
	}
	return rects
}

// Pad returns exactly n constraints: surplus entries are dropped, missing ones default to Ratio(1,1)
func Pad(cs []element.Constraint, n int) []element.Constraint {
	out := make([]element.Constraint, n)
	copied := copy(out, cs)
	for i := copied; i < n; i++ {
		out[i] = element.DefaultConstraint
	}
	return out
}

// Solve distributes total cells among constraints along one axis
// The returned sizes are non-negative and always sum to total (zero when cs is empty)
func Solve(cs []element.Constraint, total int) []int {
	if len(cs) == 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}

	sizes := make([]int, len(cs))
	sum := 0
	for i, c := range cs {
		sizes[i] = preferred(c, total)
		sum += sizes[i]
	}

	switch {
	case sum < total:
		grow(cs, sizes, total-sum)
	case sum > total:
		// Deficit comes out of the trailing children first
		deficit := sum - total
		for i := len(sizes) - 1; i >= 0 && deficit > 0; i-- {
			take := min(sizes[i], deficit)
			sizes[i] -= take
			deficit -= take
		}
	}
	return sizes
}

// preferred returns the size a constraint asks for out of total
func preferred(c element.Constraint, total int) int {
	switch c.Kind {
	case element.ConstraintLength, element.ConstraintMin:
		return int(c.A)
	case element.ConstraintMax:
		return min(int(c.A), total)
	case element.ConstraintPercentage:
		return roundDiv(total*int(c.A), 100)
	case element.ConstraintRatio:
		if c.B == 0 {
			return 0
		}
		return roundDiv(total*int(c.A), int(c.B))
	}
	return 0
}

// grow hands surplus to Min children evenly, earliest first for the remainder
// Without Min children the last child absorbs it
func grow(cs []element.Constraint, sizes []int, surplus int) {
	var flexible []int
	for i, c := range cs {
		if c.Kind == element.ConstraintMin {
			flexible = append(flexible, i)
		}
	}
	if len(flexible) == 0 {
		sizes[len(sizes)-1] += surplus
		return
	}

	share := surplus / len(flexible)
	rem := surplus % len(flexible)
	for j, i := range flexible {
		sizes[i] += share
		if j < rem {
			sizes[i]++
		}
	}
}

// roundDiv divides rounding half up, n and d non-negative, d positive
func roundDiv(n, d int) int {
	return (2*n + d) / (2 * d)
}
