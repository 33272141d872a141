package widget

import (
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/theme"
	"github.com/atomicstack/matui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// LabeledInput draws a label to the left of an Input. The label takes Split
// percent of the width.
type LabeledInput struct {
	Label      string
	LabelAlign render.Alignment
	Split      int
	Input      *Input
}

func NewLabeledInput(label string) *LabeledInput {
	return &LabeledInput{Label: label, LabelAlign: render.AlignLeft, Split: 40, Input: NewInput()}
}

func (l *LabeledInput) HandleKey(ctx *ui.Context, msg tea.KeyMsg) { l.Input.HandleKey(ctx, msg) }

func (l *LabeledInput) Tick(ctx *ui.Context) { l.Input.Tick(ctx) }

func (l *LabeledInput) Focused() bool { return l.Input.Focused() }

func (l *LabeledInput) SetFocused(focused bool) { l.Input.SetFocused(focused) }

func (l *LabeledInput) Render(f *render.Frame, area geometry.Rect, styles *theme.Styles) {
	parts := geometry.Split(l.Split, geometry.Horizontal, area)
	f.DrawLine(parts[0], parts[0].Y, l.Label, l.LabelAlign, styles.Label)
	l.Input.Render(f, parts[1], styles)
}
