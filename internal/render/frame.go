// Package render provides the cell buffer every menu, popup and widget draws
// into. A Frame is allocated per draw, filled by the component tree, then
// turned into a single styled string for the terminal.
package render

import (
	"strings"

	"github.com/atomicstack/matui/internal/geometry"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell is a single terminal position. Continuation cells trail a wide rune
// and render nothing themselves.
type Cell struct {
	Rune         rune
	Style        *lipgloss.Style
	continuation bool
}

// Frame is a fixed-size grid of cells. Writes outside the grid are dropped.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame allocates a blank frame. Negative sizes are treated as zero.
func NewFrame(width, height int) *Frame {
	width = max(width, 0)
	height = max(height, 0)
	f := &Frame{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range f.cells {
		f.cells[i].Rune = ' '
	}
	return f
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Area returns the full drawable rectangle.
func (f *Frame) Area() geometry.Rect {
	return geometry.Rect{Width: f.width, Height: f.height}
}

// Cell returns the cell at (x, y), or a blank cell outside the frame.
func (f *Frame) Cell(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return f.cells[y*f.width+x]
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

func (f *Frame) set(x, y int, c Cell) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = c
}

// SetString writes s starting at (x, y), clipped to the frame. It returns the
// number of cells written.
func (f *Frame) SetString(x, y int, s string, style *lipgloss.Style) int {
	return f.SetStringClipped(x, y, s, style, f.Area())
}

// SetStringClipped writes s starting at (x, y) without touching cells outside
// clip. Wide runes that would straddle the clip edge are not drawn.
func (f *Frame) SetStringClipped(x, y int, s string, style *lipgloss.Style, clip geometry.Rect) int {
	clip = clip.Intersect(f.Area())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > clip.Right() {
			break
		}
		if col >= clip.X {
			f.breakWide(col, y)
			f.breakWide(col+w-1, y)
			f.set(col, y, Cell{Rune: r, Style: style})
			if w == 2 {
				f.set(col+1, y, Cell{Rune: ' ', Style: style, continuation: true})
			}
			written += w
		}
		col += w
	}
	return written
}

// breakWide blanks the other half of a wide rune that covers (x, y), so a
// partial overwrite never leaves a dangling head or continuation cell.
func (f *Frame) breakWide(x, y int) {
	if !f.inBounds(x, y) {
		return
	}
	c := f.cells[y*f.width+x]
	if c.continuation {
		f.set(x-1, y, Cell{Rune: ' ', Style: c.Style})
		return
	}
	if next := f.Cell(x+1, y); next.continuation {
		f.set(x+1, y, Cell{Rune: ' ', Style: next.Style})
	}
}

// Fill sets every cell in r to ch with the given style.
func (f *Frame) Fill(r geometry.Rect, ch rune, style *lipgloss.Style) {
	r = r.Intersect(f.Area())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			f.set(x, y, Cell{Rune: ch, Style: style})
		}
	}
}

// Clear blanks r, dropping any styling.
func (f *Frame) Clear(r geometry.Rect) {
	f.Fill(r, ' ', nil)
}

// SetStyle restyles every cell in r without changing its content.
func (f *Frame) SetStyle(r geometry.Rect, style *lipgloss.Style) {
	r = r.Intersect(f.Area())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			f.cells[y*f.width+x].Style = style
		}
	}
}

// PlainLines returns the frame content without styling, one string per row,
// with trailing blanks trimmed.
func (f *Frame) PlainLines() []string {
	lines := make([]string, f.height)
	for y := 0; y < f.height; y++ {
		var b strings.Builder
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			if c.continuation {
				continue
			}
			b.WriteRune(c.Rune)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// String returns the unstyled frame content.
func (f *Frame) String() string {
	return strings.Join(f.PlainLines(), "\n")
}

// Render returns the frame as a styled string. Consecutive cells sharing a
// style pointer are rendered as one run.
func (f *Frame) Render() string {
	rows := make([]string, f.height)
	for y := 0; y < f.height; y++ {
		var (
			b       strings.Builder
			run     strings.Builder
			current *lipgloss.Style
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current != nil {
				b.WriteString(current.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			if c.continuation {
				continue
			}
			if c.Style != current {
				flush()
				current = c.Style
			}
			run.WriteRune(c.Rune)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
