// Package menu implements the screens and popups of the application.
package menu

import (
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyUp      = key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("Up", "Select up"))
	keyDown    = key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("Down", "Select down"))
	keyLeft    = key.NewBinding(key.WithKeys("left"), key.WithHelp("Left", "Select left"))
	keyRight   = key.NewBinding(key.WithKeys("right"), key.WithHelp("Right", "Select right"))
	keyEscape  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Close popup"))
	keySubmit  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit login"))
	keyConfirm = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Confirm selection"))
)

// paddedSize measures text and adds padding on every edge.
func paddedSize(text string, pad geometry.Spacing) (int, int) {
	w, h := geometry.TextSize(text)
	return w + pad.Horizontal(), h + pad.Vertical()
}

// cycle moves a focus index by delta within [0, n), wrapping at both ends.
func cycle(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}

func matches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
