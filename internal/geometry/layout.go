package geometry

// Axis selects the direction a rectangle is split along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Position anchors a fixed-size rectangle inside a larger one.
type Position int

const (
	Center Position = iota
	TopLeft
	Top
	TopRight
	Left
	Right
	BottomLeft
	Bottom
	BottomRight
)

// CenterPercentage returns a rectangle covering the given percentage of base
// on each axis, centred.
func CenterPercentage(percentX, percentY int, base Rect) Rect {
	base = base.Normalize()
	w := base.Width * clampPercent(percentX) / 100
	h := base.Height * clampPercent(percentY) / 100
	return CenterAbsoluteInner(w, h, base)
}

// CenterAbsoluteInner returns a width x height rectangle centred in base.
// Requests larger than base are clamped to base. When the leftover space is
// odd the extra cell goes to the trailing side.
func CenterAbsoluteInner(width, height int, base Rect) Rect {
	base = base.Normalize()
	w := min(clampNonNegative(width), base.Width)
	h := min(clampNonNegative(height), base.Height)
	return Rect{
		X:      base.X + (base.Width-w)/2,
		Y:      base.Y + (base.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// CenterAbsoluteOuter returns base with marginX columns removed from both
// sides and marginY rows removed from top and bottom.
func CenterAbsoluteOuter(marginX, marginY int, base Rect) Rect {
	base = base.Normalize()
	mx := min(clampNonNegative(marginX), base.Width/2)
	my := min(clampNonNegative(marginY), base.Height/2)
	return Rect{
		X:      base.X + mx,
		Y:      base.Y + my,
		Width:  base.Width - 2*mx,
		Height: base.Height - 2*my,
	}
}

// CenteredLine returns a horizontally centred band of the given size that
// starts topPadding rows below the top of base.
func CenteredLine(width, height, topPadding int, base Rect) Rect {
	base = base.Normalize()
	w := min(clampNonNegative(width), base.Width)
	top := min(clampNonNegative(topPadding), base.Height)
	h := min(clampNonNegative(height), base.Height-top)
	return Rect{
		X:      base.X + (base.Width-w)/2,
		Y:      base.Y + top,
		Width:  w,
		Height: h,
	}
}

// Split divides r in two along axis. The first part receives percent of the
// available cells (rounded down) and the second part the remainder.
func Split(percent int, axis Axis, r Rect) [2]Rect {
	r = r.Normalize()
	p := clampPercent(percent)
	first, second := r, r
	switch axis {
	case Horizontal:
		first.Width = r.Width * p / 100
		second.X = r.X + first.Width
		second.Width = r.Width - first.Width
	default:
		first.Height = r.Height * p / 100
		second.Y = r.Y + first.Height
		second.Height = r.Height - first.Height
	}
	return [2]Rect{first, second}
}

// SplitTop carves rows off the top of r, returning the band and the rest.
func SplitTop(rows int, r Rect) (Rect, Rect) {
	r = r.Normalize()
	n := min(clampNonNegative(rows), r.Height)
	head := Rect{X: r.X, Y: r.Y, Width: r.Width, Height: n}
	rest := Rect{X: r.X, Y: r.Y + n, Width: r.Width, Height: r.Height - n}
	return head, rest
}

// SplitBottom carves rows off the bottom of r, returning the rest and the band.
func SplitBottom(rows int, r Rect) (Rect, Rect) {
	r = r.Normalize()
	n := min(clampNonNegative(rows), r.Height)
	rest := Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - n}
	foot := Rect{X: r.X, Y: r.Y + r.Height - n, Width: r.Width, Height: n}
	return rest, foot
}

// Anchor places a width x height rectangle inside base at the given position.
func Anchor(width, height int, pos Position, base Rect) Rect {
	base = base.Normalize()
	w := min(clampNonNegative(width), base.Width)
	h := min(clampNonNegative(height), base.Height)
	x := base.X + (base.Width-w)/2
	y := base.Y + (base.Height-h)/2
	switch pos {
	case TopLeft, Left, BottomLeft:
		x = base.X
	case TopRight, Right, BottomRight:
		x = base.X + base.Width - w
	}
	switch pos {
	case TopLeft, Top, TopRight:
		y = base.Y
	case BottomLeft, Bottom, BottomRight:
		y = base.Y + base.Height - h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}
