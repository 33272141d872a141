package menu

import (
	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/ui"
	"github.com/atomicstack/matui/internal/ui/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const confirmTitle = "Confirm"

var (
	confirmTitlePadding   = geometry.NewSpacing(0, 0, 8, 8)
	confirmMessagePadding = geometry.NewSpacing(1, 1, 4, 4)
)

const (
	focusConfirm = iota
	focusCancel
)

// NewConfirmPopup asks the user to confirm message. Choosing Confirm posts
// onConfirm; either choice then closes the popup.
func NewConfirmPopup(message string, onConfirm ui.Notification) *ui.Popup {
	mw, mh := paddedSize(message, confirmMessagePadding)
	tw, th := paddedSize(confirmTitle, confirmTitlePadding)
	// One extra row for the buttons.
	area := ui.Absolute(max(mw, tw), th+mh+1, geometry.Center)
	return ui.NewPopup(NewConfirmMenu(message, onConfirm), area)
}

// ConfirmMenu offers Confirm and Cancel buttons. Cancel starts focused.
type ConfirmMenu struct {
	message string
	buttons [2]*widget.Button
	focus   int
}

func NewConfirmMenu(message string, onConfirm ui.Notification) *ConfirmMenu {
	m := &ConfirmMenu{
		message: message,
		buttons: [2]*widget.Button{
			widget.NewButton("Confirm", onConfirm),
			widget.NewButton("Cancel", nil),
		},
	}
	m.setFocus(focusCancel)
	return m
}

func (m *ConfirmMenu) Name() string { return "confirm" }

func (m *ConfirmMenu) Message() string { return m.message }

// Focus returns the index of the focused button, 0 for Confirm and 1 for
// Cancel.
func (m *ConfirmMenu) Focus() int { return m.focus }

func (m *ConfirmMenu) setFocus(index int) {
	m.focus = index
	for i, b := range m.buttons {
		b.SetFocused(i == index)
	}
}

func (m *ConfirmMenu) HandleEvent(ev event.Event, ctx *ui.Context) {
	if ev.Kind != event.KindKey {
		return
	}
	msg := ev.Key
	switch {
	case matches(msg, keyLeft):
		m.setFocus(cycle(m.focus, -1, len(m.buttons)))
	case matches(msg, keyRight):
		m.setFocus(cycle(m.focus, 1, len(m.buttons)))
	case msg.Type == tea.KeyEnter:
		for _, b := range m.buttons {
			b.HandleKey(ctx, msg)
		}
		ctx.SendNotification(ui.HidePopup{})
	case matches(msg, keyEscape):
		ctx.SendNotification(ui.HidePopup{})
	}
}

func (m *ConfirmMenu) Draw(f *render.Frame, area geometry.Rect, ctx *ui.Context) {
	_, titleHeight := paddedSize(confirmTitle, confirmTitlePadding)
	head, rest := geometry.SplitTop(titleHeight, area)
	body, foot := geometry.SplitBottom(1, rest)

	f.DrawParagraph(geometry.Shrink(head, confirmTitlePadding), render.Paragraph{
		Text:  confirmTitle,
		Align: render.AlignCenter,
		Style: ctx.Styles().Title,
		Wrap:  true,
	})
	f.DrawParagraph(geometry.Shrink(body, confirmMessagePadding), render.Paragraph{
		Text:  m.message,
		Align: render.AlignCenter,
		Style: ctx.Styles().Text,
		Wrap:  true,
	})

	halves := geometry.Split(50, geometry.Horizontal, foot)
	m.buttons[focusConfirm].Render(f, halves[0], ctx.Styles())
	m.buttons[focusCancel].Render(f, halves[1], ctx.Styles())
}

func (m *ConfirmMenu) HelpMessage(*ui.Context) []key.Binding {
	return []key.Binding{keyLeft, keyRight, keyConfirm}
}

func (m *ConfirmMenu) MinimumSize() (int, int) {
	mw, mh := paddedSize(m.message, confirmMessagePadding)
	tw, th := paddedSize(confirmTitle, confirmTitlePadding)
	return max(mw, tw), th + mh + 1
}
