package layout

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termhost/core"
	"github.com/lixenwraith/termhost/element"
)

func children(n int) []element.Element {
	out := make([]element.Element, n)
	for i := range out {
		out[i] = &element.Block{}
	}
	return out
}

// assertTiles checks rects are inside area, pairwise disjoint and cover it exactly
func assertTiles(t *testing.T, area core.Rect, rects []core.Rect) {
	t.Helper()
	covered := 0
	for i, r := range rects {
		assert.GreaterOrEqual(t, r.Width, 0)
		assert.GreaterOrEqual(t, r.Height, 0)
		if !r.Empty() {
			assert.Equal(t, r, area.Intersect(r), "rect %d escapes area", i)
		}
		covered += r.Area()
		for j := i + 1; j < len(rects); j++ {
			assert.True(t, r.Intersect(rects[j]).Empty(), "rects %d and %d overlap", i, j)
		}
	}
	assert.Equal(t, area.Area(), covered)
}

func TestSplitPercentages(t *testing.T) {
	l := &element.Layout{
		Children:    children(2),
		Direction:   element.Horizontal,
		Constraints: []element.Constraint{element.Percentage(30), element.Percentage(70)},
	}
	got := Split(l, core.NewRect(0, 0, 100, 10))
	want := []core.Rect{
		{X: 0, Y: 0, Width: 30, Height: 10},
		{X: 30, Y: 0, Width: 70, Height: 10},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Split() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitZeroChildren(t *testing.T) {
	l := &element.Layout{Constraints: []element.Constraint{element.Length(3)}}
	assert.Nil(t, Split(l, core.NewRect(0, 0, 10, 10)))
}

func TestSplitPadsMissingConstraints(t *testing.T) {
	area := core.NewRect(2, 3, 40, 17)
	short := &element.Layout{
		Children:    children(3),
		Constraints: []element.Constraint{element.Length(5)},
	}
	explicit := &element.Layout{
		Children: children(3),
		Constraints: []element.Constraint{
			element.Length(5),
			element.Ratio(1, 1),
			element.Ratio(1, 1),
		},
	}
	assert.Equal(t, Split(explicit, area), Split(short, area))
}

func TestSplitIgnoresSurplusConstraints(t *testing.T) {
	l := &element.Layout{
		Children:    children(1),
		Direction:   element.Horizontal,
		Constraints: []element.Constraint{element.Length(4), element.Length(6)},
	}
	got := Split(l, core.NewRect(0, 0, 10, 1))
	require.Len(t, got, 1)
	assert.Equal(t, core.NewRect(0, 0, 10, 1), got[0])
}

func TestSplitTilesArea(t *testing.T) {
	constraintSets := [][]element.Constraint{
		nil,
		{element.Length(3)},
		{element.Min(2), element.Max(5), element.Percentage(10)},
		{element.Percentage(60), element.Percentage(60), element.Percentage(60)},
		{element.Ratio(1, 3), element.Ratio(2, 3), element.Ratio(1, 0)},
		{element.Length(200), element.Min(300)},
		{element.Min(1), element.Min(1), element.Length(1), element.Min(1), element.Max(2)},
	}
	areas := []core.Rect{
		core.NewRect(0, 0, 0, 0),
		core.NewRect(0, 0, 1, 1),
		core.NewRect(5, 7, 33, 11),
		core.NewRect(0, 0, 101, 101),
	}

	for ci, cs := range constraintSets {
		for _, n := range []int{1, 2, 4, 7} {
			for _, dir := range []element.Direction{element.Horizontal, element.Vertical} {
				for _, area := range areas {
					name := fmt.Sprintf("set%d/n%d/dir%d/%dx%d", ci, n, dir, area.Width, area.Height)
					t.Run(name, func(t *testing.T) {
						l := &element.Layout{Children: children(n), Direction: dir, Constraints: cs}
						rects := Split(l, area)
						require.Len(t, rects, n)
						assertTiles(t, area, rects)
					})
				}
			}
		}
	}
}

func TestSplitMargins(t *testing.T) {
	l := &element.Layout{
		Children:    children(2),
		Direction:   element.Vertical,
		Constraints: []element.Constraint{element.Percentage(50), element.Percentage(50)},
		HMargin:     2,
		VMargin:     1,
	}
	area := core.NewRect(0, 0, 20, 12)
	got := Split(l, area)
	assert.Equal(t, core.NewRect(2, 1, 16, 5), got[0])
	assert.Equal(t, core.NewRect(2, 6, 16, 5), got[1])
	assertTiles(t, area.Inner(2, 1), got)

	// Margins larger than the area collapse it rather than going negative
	l.HMargin, l.VMargin = 50, 50
	for _, r := range Split(l, area) {
		assert.True(t, r.Empty())
		assert.GreaterOrEqual(t, r.Width, 0)
		assert.GreaterOrEqual(t, r.Height, 0)
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name  string
		cs    []element.Constraint
		total int
		want  []int
	}{
		{"empty", nil, 10, nil},
		{"length exact", []element.Constraint{element.Length(3), element.Length(7)}, 10, []int{3, 7}},
		{"surplus to last", []element.Constraint{element.Length(3), element.Length(2)}, 10, []int{3, 7}},
		{"surplus to min", []element.Constraint{element.Min(2), element.Length(2), element.Min(1)}, 10, []int{5, 2, 3}},
		{"deficit from tail", []element.Constraint{element.Length(6), element.Length(6), element.Length(6)}, 10, []int{6, 4, 0}},
		{"max capped", []element.Constraint{element.Max(50)}, 8, []int{8}},
		{"ratio zero denominator", []element.Constraint{element.Ratio(1, 0), element.Length(4)}, 10, []int{0, 10}},
		{"ratio thirds", []element.Constraint{element.Ratio(1, 3), element.Ratio(1, 3), element.Ratio(1, 3)}, 10, []int{3, 3, 4}},
		{"percentage rounds half up", []element.Constraint{element.Percentage(50), element.Percentage(50)}, 5, []int{3, 2}},
		{"zero total", []element.Constraint{element.Min(3), element.Length(2)}, 0, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Solve(tt.cs, tt.total))
		})
	}
}

func TestPopupArea(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		got := PopupArea(core.NewRect(0, 0, 100, 100), 50, 50)
		assert.Equal(t, core.NewRect(25, 25, 50, 50), got)
	})

	t.Run("odd size rounds identically on both axes", func(t *testing.T) {
		got := PopupArea(core.NewRect(0, 0, 101, 101), 50, 50)
		assert.Equal(t, got.X, got.Y)
		assert.Equal(t, got.Width, got.Height)
		assert.Equal(t, core.NewRect(25, 25, 51, 51), got)
	})

	t.Run("offset origin", func(t *testing.T) {
		got := PopupArea(core.NewRect(10, 4, 100, 100), 50, 50)
		assert.Equal(t, core.NewRect(35, 29, 50, 50), got)
	})

	t.Run("full", func(t *testing.T) {
		area := core.NewRect(3, 3, 17, 9)
		assert.Equal(t, area, PopupArea(area, 100, 100))
	})

	t.Run("stays inside", func(t *testing.T) {
		area := core.NewRect(0, 0, 7, 3)
		for _, p := range []uint16{0, 1, 33, 99, 150} {
			got := PopupArea(area, p, p)
			if !got.Empty() {
				assert.Equal(t, got, area.Intersect(got))
			}
		}
	})
}

func TestSplitPopupShrinksChildren(t *testing.T) {
	l := &element.Layout{
		Children: children(1),
		Popup:    element.Centered(60, 20),
	}
	got := Split(l, core.NewRect(0, 0, 80, 20))
	require.Len(t, got, 1)
	assert.Equal(t, core.NewRect(16, 8, 48, 4), got[0])
}
