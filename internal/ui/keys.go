package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

const (
	DefaultHelpKey   = "alt+?"
	DefaultQuitKey   = "ctrl+d"
	DefaultResyncKey = "ctrl+r"
)

// KeyMap holds the global chords the App intercepts before any menu sees a
// key.
type KeyMap struct {
	ToggleHelp key.Binding
	Quit       key.Binding
	Resync     key.Binding
}

// NewKeyMap builds the global bindings from chords in Bubble Tea notation,
// for example "alt+?" or "ctrl+d". Empty chords fall back to the defaults.
func NewKeyMap(helpChord, quitChord string) KeyMap {
	if strings.TrimSpace(helpChord) == "" {
		helpChord = DefaultHelpKey
	}
	if strings.TrimSpace(quitChord) == "" {
		quitChord = DefaultQuitKey
	}
	return KeyMap{
		ToggleHelp: key.NewBinding(key.WithKeys(helpChord), key.WithHelp(ChordLabel(helpChord), "Toggle help menu")),
		Quit:       key.NewBinding(key.WithKeys(quitChord), key.WithHelp(ChordLabel(quitChord), "Exit matui")),
		Resync:     key.NewBinding(key.WithKeys(DefaultResyncKey), key.WithHelp(ChordLabel(DefaultResyncKey), "Sync now")),
	}
}

// DefaultKeyMap returns the bindings used when nothing is configured.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(DefaultHelpKey, DefaultQuitKey)
}

// Global returns the bindings that prefix every help footer.
func (k KeyMap) Global() []key.Binding {
	return []key.Binding{k.ToggleHelp, k.Quit}
}

var modifierLabels = map[string]string{
	"alt":   "Alt",
	"ctrl":  "Ctrl",
	"shift": "Shift",
}

// ChordLabel turns "ctrl+d" into "Ctrl+D" and "shift+tab" into "Shift+Tab".
func ChordLabel(chord string) string {
	parts := strings.Split(chord, "+")
	// "alt++" splits into a trailing empty part; the key is "+".
	if strings.HasSuffix(chord, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	for i, part := range parts {
		if i < len(parts)-1 {
			if label, ok := modifierLabels[part]; ok {
				parts[i] = label
			}
			continue
		}
		parts[i] = keyLabel(part)
	}
	return strings.Join(parts, "+")
}

func keyLabel(k string) string {
	if len([]rune(k)) == 1 {
		return strings.ToUpper(k)
	}
	if k == "" {
		return k
	}
	return strings.ToUpper(k[:1]) + k[1:]
}

// HintText renders a binding as "Key - Description".
func HintText(b key.Binding) string {
	h := b.Help()
	return h.Key + " - " + h.Desc
}
