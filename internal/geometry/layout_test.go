package geometry

import "testing"

func TestCenterAbsoluteInnerExactSizeAndBalancedMargins(t *testing.T) {
	parents := []Rect{
		{Width: 80, Height: 24},
		{X: 3, Y: 2, Width: 41, Height: 17},
		{Width: 1, Height: 1},
		{X: 10, Y: 5, Width: 7, Height: 4},
	}
	for _, parent := range parents {
		for w := 0; w <= parent.Width; w++ {
			for h := 0; h <= parent.Height; h++ {
				got := CenterAbsoluteInner(w, h, parent)
				if got.Width != w || got.Height != h {
					t.Fatalf("parent %+v size %dx%d: got %+v", parent, w, h, got)
				}
				left := got.X - parent.X
				right := parent.Right() - got.Right()
				top := got.Y - parent.Y
				bottom := parent.Bottom() - got.Bottom()
				if left < 0 || right < 0 || top < 0 || bottom < 0 {
					t.Fatalf("parent %+v size %dx%d: rect escapes parent %+v", parent, w, h, got)
				}
				if diff := right - left; diff < 0 || diff > 1 {
					t.Fatalf("horizontal margins unbalanced: left %d right %d", left, right)
				}
				if diff := bottom - top; diff < 0 || diff > 1 {
					t.Fatalf("vertical margins unbalanced: top %d bottom %d", top, bottom)
				}
			}
		}
	}
}

func TestCenterAbsoluteInnerClampsOversizedRequests(t *testing.T) {
	base := Rect{X: 2, Y: 2, Width: 10, Height: 4}
	got := CenterAbsoluteInner(40, 9, base)
	if got != base {
		t.Fatalf("expected oversized request to fill base %+v, got %+v", base, got)
	}
	if got := CenterAbsoluteInner(-3, -1, base); !got.Empty() {
		t.Fatalf("expected negative request to produce empty rect, got %+v", got)
	}
}

func TestCenterPercentage(t *testing.T) {
	got := CenterPercentage(50, 50, Rect{Width: 80, Height: 20})
	want := Rect{X: 20, Y: 5, Width: 40, Height: 10}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got := CenterPercentage(150, 100, Rect{Width: 10, Height: 10}); got.Width != 10 {
		t.Fatalf("expected percentage clamped to 100, got %+v", got)
	}
}

func TestCenterAbsoluteOuter(t *testing.T) {
	got := CenterAbsoluteOuter(4, 2, Rect{Width: 20, Height: 10})
	want := Rect{X: 4, Y: 2, Width: 12, Height: 6}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	got = CenterAbsoluteOuter(30, 30, Rect{Width: 5, Height: 3})
	if got.Width < 0 || got.Height < 0 {
		t.Fatalf("expected saturated margins, got %+v", got)
	}
	if got.Width != 1 || got.Height != 1 {
		t.Fatalf("expected single centre cell, got %+v", got)
	}
}

func TestCenteredLine(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 20, Height: 5}
	got := CenteredLine(10, 1, 2, base)
	want := Rect{X: 5, Y: 2, Width: 10, Height: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	got = CenteredLine(30, 3, 9, base)
	if got.Height != 0 || got.Width != 20 {
		t.Fatalf("expected band clipped to base, got %+v", got)
	}
}

func TestSplit(t *testing.T) {
	parts := Split(40, Horizontal, Rect{X: 1, Y: 1, Width: 36, Height: 1})
	if parts[0].Width != 14 || parts[1].Width != 22 {
		t.Fatalf("unexpected widths %+v", parts)
	}
	if parts[1].X != parts[0].Right() {
		t.Fatalf("expected contiguous halves, got %+v", parts)
	}
	vertical := Split(50, Vertical, Rect{Width: 4, Height: 7})
	if vertical[0].Height+vertical[1].Height != 7 {
		t.Fatalf("expected heights to sum to 7, got %+v", vertical)
	}
}

func TestExpandShrinkSaturate(t *testing.T) {
	r := Rect{X: 0, Y: 1, Width: 4, Height: 2}
	grown := Expand(r, Uniform(1))
	want := Rect{X: 0, Y: 0, Width: 5, Height: 4}
	if grown != want {
		t.Fatalf("expected %+v, got %+v", want, grown)
	}

	shrunk := Shrink(Rect{X: 5, Y: 5, Width: 3, Height: 1}, NewSpacing(1, 1, 4, 4))
	if shrunk.Width != 0 || shrunk.Height != 0 {
		t.Fatalf("expected empty rect, got %+v", shrunk)
	}
	if shrunk.X < 5 || shrunk.Y < 5 {
		t.Fatalf("expected origin to stay inside source, got %+v", shrunk)
	}

	round := Shrink(Expand(Rect{X: 3, Y: 3, Width: 4, Height: 4}, Uniform(2)), Uniform(2))
	if round != (Rect{X: 3, Y: 3, Width: 4, Height: 4}) {
		t.Fatalf("expected expand/shrink round trip, got %+v", round)
	}
}

func TestAnchorPositions(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 6}
	tests := []struct {
		pos  Position
		x, y int
	}{
		{TopLeft, 0, 0},
		{Top, 3, 0},
		{TopRight, 6, 0},
		{Left, 0, 2},
		{Center, 3, 2},
		{Right, 6, 2},
		{BottomLeft, 0, 4},
		{Bottom, 3, 4},
		{BottomRight, 6, 4},
	}
	for _, tc := range tests {
		got := Anchor(4, 2, tc.pos, base)
		if got.X != tc.x || got.Y != tc.y || got.Width != 4 || got.Height != 2 {
			t.Fatalf("position %d: expected (%d,%d) 4x2, got %+v", tc.pos, tc.x, tc.y, got)
		}
	}
}

func TestIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 5, Height: 5}
	b := Rect{X: 3, Y: 4, Width: 5, Height: 5}
	if got := a.Intersect(b); got != (Rect{X: 3, Y: 4, Width: 2, Height: 1}) {
		t.Fatalf("unexpected intersection %+v", got)
	}
	if got := a.Intersect(Rect{X: 9, Y: 9, Width: 1, Height: 1}); !got.Empty() {
		t.Fatalf("expected empty intersection, got %+v", got)
	}
}
