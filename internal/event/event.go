// Package event turns terminal input and a fixed-rate clock into a single
// stream of events for the UI loop.
package event

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind tags which payload of an Event is set.
type Kind int

const (
	KindKey Kind = iota
	KindMouse
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindTick:
		return "tick"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one unit of input delivered to the active UI layer.
type Event struct {
	Kind  Kind
	Key   tea.KeyMsg
	Mouse tea.MouseMsg
}

func Key(msg tea.KeyMsg) Event {
	return Event{Kind: KindKey, Key: msg}
}

func Mouse(msg tea.MouseMsg) Event {
	return Event{Kind: KindMouse, Mouse: msg}
}

func Tick() Event {
	return Event{Kind: KindTick}
}

func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		return "key(" + e.Key.String() + ")"
	case KindMouse:
		return "mouse(" + e.Mouse.String() + ")"
	default:
		return e.Kind.String()
	}
}
