package render

import (
	"strings"

	"github.com/atomicstack/matui/internal/geometry"
	"github.com/charmbracelet/lipgloss"
)

// Alignment positions a line within its rectangle.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// BorderType selects the corner glyphs of a block.
type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
)

type borderGlyphs struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
}

var glyphs = map[BorderType]borderGlyphs{
	BorderPlain:   {"┌", "┐", "└", "┘", "─", "│"},
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
}

// Block describes a bordered box with an optional title on its top edge.
type Block struct {
	Title       string
	Border      BorderType
	BorderStyle *lipgloss.Style
	TitleStyle  *lipgloss.Style
}

// Paragraph describes a run of text laid out inside a rectangle.
type Paragraph struct {
	Text  string
	Align Alignment
	Style *lipgloss.Style
	// Wrap breaks lines at spaces to fit the rectangle width.
	Wrap bool
}

// DrawBlock draws the border of b around r and returns the inner area.
// Rectangles smaller than 2x2 have no room for a border and are left as is.
func (f *Frame) DrawBlock(r geometry.Rect, b Block) geometry.Rect {
	r = r.Normalize()
	inner := geometry.Shrink(r, geometry.Uniform(1))
	if r.Width < 2 || r.Height < 2 {
		return inner
	}
	g := glyphs[b.Border]
	top := g.topLeft + strings.Repeat(g.horizontal, r.Width-2) + g.topRight
	bottom := g.bottomLeft + strings.Repeat(g.horizontal, r.Width-2) + g.bottomRight
	f.SetStringClipped(r.X, r.Y, top, b.BorderStyle, r)
	f.SetStringClipped(r.X, r.Bottom()-1, bottom, b.BorderStyle, r)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		f.SetStringClipped(r.X, y, g.vertical, b.BorderStyle, r)
		f.SetStringClipped(r.Right()-1, y, g.vertical, b.BorderStyle, r)
	}
	if b.Title != "" && r.Width > 2 {
		titleClip := geometry.Rect{X: r.X + 1, Y: r.Y, Width: r.Width - 2, Height: 1}
		style := b.TitleStyle
		if style == nil {
			style = b.BorderStyle
		}
		f.SetStringClipped(r.X+1, r.Y, b.Title, style, titleClip)
	}
	return inner
}

// DrawLine writes a single aligned line on row y of r, clipped to r.
func (f *Frame) DrawLine(r geometry.Rect, y int, text string, align Alignment, style *lipgloss.Style) {
	width := geometry.TextWidth(text)
	x := r.X
	switch align {
	case AlignCenter:
		if width < r.Width {
			x += (r.Width - width) / 2
		}
	case AlignRight:
		if width < r.Width {
			x += r.Width - width
		}
	}
	f.SetStringClipped(x, y, text, style, r)
}

// DrawParagraph lays p out inside r, top to bottom, dropping lines that do
// not fit. It returns the number of rows drawn.
func (f *Frame) DrawParagraph(r geometry.Rect, p Paragraph) int {
	r = r.Normalize()
	if r.Empty() {
		return 0
	}
	lines := ParagraphLines(p, r.Width)
	rows := min(len(lines), r.Height)
	for i := 0; i < rows; i++ {
		f.DrawLine(r, r.Y+i, lines[i], p.Align, p.Style)
	}
	return rows
}

// ParagraphLines returns the lines p would occupy at the given width.
func ParagraphLines(p Paragraph, width int) []string {
	if p.Wrap {
		return geometry.WrapLines(p.Text, " ", width)
	}
	return strings.Split(p.Text, "\n")
}
