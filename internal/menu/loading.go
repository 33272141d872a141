package menu

import (
	"strings"

	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/ui"
	"github.com/charmbracelet/bubbles/key"
)

const (
	// BarLength is the width of the progress bar in cells.
	BarLength = 20
	// BarTickSpeed is the number of ticks per progress step.
	BarTickSpeed = 1
)

// LoadingMenu shows a message above a bouncing progress bar.
type LoadingMenu struct {
	text     string
	tick     int
	progress int
}

func NewLoadingMenu(text string) *LoadingMenu {
	return &LoadingMenu{text: text}
}

func (m *LoadingMenu) Name() string { return "loading" }

// Text returns the message shown above the bar.
func (m *LoadingMenu) Text() string { return m.text }

// Progress is the bar position in [0, 2*BarLength).
func (m *LoadingMenu) Progress() int { return m.progress }

func (m *LoadingMenu) HandleEvent(ev event.Event, _ *ui.Context) {
	if ev.Kind != event.KindTick {
		return
	}
	m.tick = (m.tick + 1) % BarTickSpeed
	if m.tick == 0 {
		m.progress = (m.progress + 1) % (BarLength * 2)
	}
}

// Bar renders the progress bar. The filled block grows to full length, then
// drains from the left, so the motion bounces instead of jumping back.
func (m *LoadingMenu) Bar() string {
	p := m.progress
	if p <= BarLength {
		return strings.Repeat("█", p) + strings.Repeat(" ", BarLength-p)
	}
	p -= BarLength
	return strings.Repeat(" ", p) + strings.Repeat("█", BarLength-p)
}

func (m *LoadingMenu) Draw(f *render.Frame, area geometry.Rect, ctx *ui.Context) {
	width, textHeight := geometry.TextSize(m.text)
	width = max(width, BarLength+2)
	box := geometry.CenterAbsoluteInner(width, textHeight+2, area)

	textArea, rest := geometry.SplitTop(textHeight, box)
	_, barArea := geometry.SplitTop(1, rest)
	f.DrawParagraph(textArea, render.Paragraph{Text: m.text, Align: render.AlignCenter, Style: ctx.Styles().Loading})
	f.DrawLine(barArea, barArea.Y, m.Bar(), render.AlignCenter, ctx.Styles().Progress)
}

func (m *LoadingMenu) HelpMessage(*ui.Context) []key.Binding { return nil }

func (m *LoadingMenu) MinimumSize() (int, int) {
	width, lines := geometry.TextSize(m.text)
	return max(width, BarLength+2), lines + 2
}
