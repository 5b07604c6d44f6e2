package core

// Rect represents a rectangular target region in screen cells
// Width and Height are never negative
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// NewRect builds a rect, clamping negative dimensions to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first column past the rect
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rect
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner shrinks the rect by h cells on the left and right and v cells on the top and bottom
// Margins larger than the rect collapse it to zero size at its center line
func (r Rect) Inner(h, v int) Rect {
	if h < 0 {
		h = 0
	}
	if v < 0 {
		v = 0
	}
	if 2*h >= r.Width {
		h = r.Width / 2
	}
	if 2*v >= r.Height {
		v = r.Height / 2
	}
	return NewRect(r.X+h, r.Y+v, r.Width-2*h, r.Height-2*v)
}

// Intersect returns the overlap of two rects, zero-sized when disjoint
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}
