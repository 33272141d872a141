package ui

import (
	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Menu is a full screen, or the content of a popup. Exactly one base menu is
// active at a time.
type Menu interface {
	HandleEvent(ev event.Event, ctx *Context)
	Draw(f *render.Frame, area geometry.Rect, ctx *Context)
	// HelpMessage lists the bindings shown in the help footer while this menu
	// has input focus.
	HelpMessage(ctx *Context) []key.Binding
	// MinimumSize is the smallest area Draw can work with.
	MinimumSize() (width, height int)
}

// Widget is a focusable control owned by a menu. The menu decides which
// widget has focus and tells it through SetFocused, and passes the context's
// styles to Render.
type Widget interface {
	HandleKey(ctx *Context, msg tea.KeyMsg)
	Tick(ctx *Context)
	Render(f *render.Frame, area geometry.Rect, styles *theme.Styles)
	Focused() bool
	SetFocused(focused bool)
}

// MenuName returns a short label for trace output.
func MenuName(m Menu) string {
	if named, ok := m.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "menu"
}
