// Package widget holds the focusable controls menus are built from.
package widget

import (
	"strings"

	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/theme"
	"github.com/atomicstack/matui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button posts its Action when Enter is pressed while it is focused and
// enabled.
type Button struct {
	Label        string
	Action       ui.Notification
	Align        render.Alignment
	InnerPadding int
	OuterPadding int

	enabled bool
	focused bool
}

// NewButton returns an enabled, centred button. A nil action makes Enter a
// no-op.
func NewButton(label string, action ui.Notification) *Button {
	return &Button{Label: label, Action: action, Align: render.AlignCenter, enabled: true}
}

func (b *Button) Enabled() bool { return b.enabled }

func (b *Button) SetEnabled(enabled bool) { b.enabled = enabled }

func (b *Button) Focused() bool { return b.focused }

func (b *Button) SetFocused(focused bool) { b.focused = focused }

func (b *Button) Tick(*ui.Context) {}

func (b *Button) HandleKey(ctx *ui.Context, msg tea.KeyMsg) {
	if !b.focused || !b.enabled || msg.Type != tea.KeyEnter || b.Action == nil {
		return
	}
	ctx.SendNotification(b.Action)
}

// Text returns the label with its brackets and padding.
func (b *Button) Text() string {
	inner := strings.Repeat(" ", max(b.InnerPadding, 0))
	outer := strings.Repeat(" ", max(b.OuterPadding, 0))
	return outer + "[" + inner + b.Label + inner + "]" + outer
}

func (b *Button) Render(f *render.Frame, area geometry.Rect, styles *theme.Styles) {
	if area.Empty() {
		return
	}
	text := b.Text()
	x := area.X
	if diff := area.Width - geometry.TextWidth(text); diff > 0 {
		switch b.Align {
		case render.AlignCenter:
			x += (diff + 1) / 2
		case render.AlignRight:
			x += diff
		}
	}
	f.SetStringClipped(x, area.Y, text, b.style(styles), area)
}

func (b *Button) style(styles *theme.Styles) *lipgloss.Style {
	switch {
	case b.focused && b.enabled:
		return styles.ButtonSelected
	case !b.enabled:
		return styles.ButtonDisabled
	default:
		return styles.Button
	}
}
