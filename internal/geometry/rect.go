package geometry

// Rect is a terminal region measured in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Spacing describes per-edge padding.
type Spacing struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// NewSpacing mirrors the top, bottom, left, right ordering used by callers.
func NewSpacing(top, bottom, left, right int) Spacing {
	return Spacing{Top: top, Bottom: bottom, Left: left, Right: right}
}

// Uniform returns spacing with the same value on every edge.
func Uniform(n int) Spacing {
	return Spacing{Top: n, Bottom: n, Left: n, Right: n}
}

// Horizontal returns the combined left and right spacing.
func (s Spacing) Horizontal() int {
	return clampNonNegative(s.Left) + clampNonNegative(s.Right)
}

// Vertical returns the combined top and bottom spacing.
func (s Spacing) Vertical() int {
	return clampNonNegative(s.Top) + clampNonNegative(s.Bottom)
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlapping region of r and other. Disjoint
// rectangles yield a zero-sized rectangle anchored at r's origin.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Normalize clamps negative dimensions to zero.
func (r Rect) Normalize() Rect {
	r.Width = clampNonNegative(r.Width)
	r.Height = clampNonNegative(r.Height)
	return r
}

// Expand grows the rectangle outward by the given spacing. The origin never
// moves past zero; whatever could not be applied on the leading edge is
// dropped rather than wrapped.
func Expand(r Rect, s Spacing) Rect {
	r = r.Normalize()
	left := min(clampNonNegative(s.Left), clampNonNegative(r.X))
	top := min(clampNonNegative(s.Top), clampNonNegative(r.Y))
	r.X -= left
	r.Y -= top
	r.Width += left + clampNonNegative(s.Right)
	r.Height += top + clampNonNegative(s.Bottom)
	return r
}

// Shrink pulls every edge inward by the given spacing, saturating at an
// empty rectangle.
func Shrink(r Rect, s Spacing) Rect {
	r = r.Normalize()
	left := min(clampNonNegative(s.Left), r.Width)
	top := min(clampNonNegative(s.Top), r.Height)
	r.X += left
	r.Y += top
	r.Width = saturatingSub(r.Width, left+clampNonNegative(s.Right))
	r.Height = saturatingSub(r.Height, top+clampNonNegative(s.Bottom))
	return r
}

func saturatingSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
