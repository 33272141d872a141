package menu

import (
	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MessageBuilder assembles a dismissible message popup.
type MessageBuilder struct {
	title          string
	hasTitle       bool
	titleAlign     render.Alignment
	titlePadding   geometry.Spacing
	message        string
	messageAlign   render.Alignment
	messagePadding geometry.Spacing
	position       geometry.Position
}

// NewMessage starts a builder for message. By default the popup is centred,
// untitled, left aligned and padded by one row and four columns.
func NewMessage(message string) *MessageBuilder {
	return &MessageBuilder{
		titleAlign:     render.AlignCenter,
		message:        message,
		messageAlign:   render.AlignLeft,
		messagePadding: geometry.NewSpacing(1, 1, 4, 4),
		position:       geometry.Center,
	}
}

func (b *MessageBuilder) Title(title string) *MessageBuilder {
	b.title = title
	b.hasTitle = true
	return b
}

func (b *MessageBuilder) TitleAlign(a render.Alignment) *MessageBuilder {
	b.titleAlign = a
	return b
}

func (b *MessageBuilder) TitlePadding(s geometry.Spacing) *MessageBuilder {
	b.titlePadding = s
	return b
}

func (b *MessageBuilder) Message(message string) *MessageBuilder {
	b.message = message
	return b
}

func (b *MessageBuilder) MessageAlign(a render.Alignment) *MessageBuilder {
	b.messageAlign = a
	return b
}

func (b *MessageBuilder) MessagePadding(s geometry.Spacing) *MessageBuilder {
	b.messagePadding = s
	return b
}

func (b *MessageBuilder) Position(p geometry.Position) *MessageBuilder {
	b.position = p
	return b
}

// Popup sizes the popup to fit the padded title and message.
func (b *MessageBuilder) Popup() *ui.Popup {
	width, height := paddedSize(b.message, b.messagePadding)
	if b.hasTitle {
		tw, th := paddedSize(b.title, b.titlePadding)
		width = max(width, tw)
		height += th
	}
	return ui.NewPopup(b.Menu(), ui.Absolute(width, height, b.position))
}

// Menu returns the popup content without the placement.
func (b *MessageBuilder) Menu() *MessageMenu {
	return &MessageMenu{
		title:          b.title,
		hasTitle:       b.hasTitle,
		titleAlign:     b.titleAlign,
		titlePadding:   b.titlePadding,
		message:        b.message,
		messageAlign:   b.messageAlign,
		messagePadding: b.messagePadding,
	}
}

// MessageMenu shows an optional bold title above a wrapped message. Esc or
// Enter closes it.
type MessageMenu struct {
	title          string
	hasTitle       bool
	titleAlign     render.Alignment
	titlePadding   geometry.Spacing
	message        string
	messageAlign   render.Alignment
	messagePadding geometry.Spacing
}

func (m *MessageMenu) Name() string { return "message" }

func (m *MessageMenu) Title() string { return m.title }

func (m *MessageMenu) Message() string { return m.message }

func (m *MessageMenu) HandleEvent(ev event.Event, ctx *ui.Context) {
	if ev.Kind != event.KindKey {
		return
	}
	if matches(ev.Key, keyEscape) || ev.Key.Type == tea.KeyEnter {
		ctx.SendNotification(ui.HidePopup{})
	}
}

func (m *MessageMenu) Draw(f *render.Frame, area geometry.Rect, ctx *ui.Context) {
	if m.hasTitle {
		_, titleHeight := paddedSize(m.title, m.titlePadding)
		head, rest := geometry.SplitTop(titleHeight, area)
		f.DrawParagraph(geometry.Shrink(head, m.titlePadding), render.Paragraph{
			Text:  m.title,
			Align: m.titleAlign,
			Style: ctx.Styles().Title,
			Wrap:  true,
		})
		area = rest
	}
	f.DrawParagraph(geometry.Shrink(area, m.messagePadding), render.Paragraph{
		Text:  m.message,
		Align: m.messageAlign,
		Style: ctx.Styles().Text,
		Wrap:  true,
	})
}

func (m *MessageMenu) HelpMessage(*ui.Context) []key.Binding {
	return []key.Binding{keyEscape}
}

func (m *MessageMenu) MinimumSize() (int, int) { return 0, 0 }
