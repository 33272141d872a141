package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. Frames
// group cells by style pointer, so components must pass these pointers
// through rather than copying the styles.
type Styles struct {
	Border         *lipgloss.Style
	PopupBorder    *lipgloss.Style
	Title          *lipgloss.Style
	HelpBorder     *lipgloss.Style
	HelpText       *lipgloss.Style
	Error          *lipgloss.Style
	Text           *lipgloss.Style
	Label          *lipgloss.Style
	Button         *lipgloss.Style
	ButtonSelected *lipgloss.Style
	ButtonDisabled *lipgloss.Style
	InputValid     *lipgloss.Style
	InputInvalid   *lipgloss.Style
	Cursor         *lipgloss.Style
	Loading        *lipgloss.Style
	Progress       *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	PopupBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	HelpBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	HelpText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	ButtonSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
	),
	InputValid: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	),
	InputInvalid: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Progress: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
