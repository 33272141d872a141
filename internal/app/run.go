// Package app wires the UI runtime together: the App state machine, the
// Bubble Tea host model and the Run entry point.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/matui/internal/backend"
	"github.com/atomicstack/matui/internal/client"
	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTick is the animation and input polling period.
const DefaultTick = 100 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Tick         time.Duration
	Width        int
	Height       int
	HelpKey      string
	QuitKey      string
	HideHelp     bool
	Verbose      bool
	SyncInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program until the user quits.
// The terminal is restored on every exit path.
func Run(cfg Config, b backend.Backend) error {
	if b == nil {
		return errors.New("run: no backend configured")
	}
	tick := cfg.Tick
	if tick <= 0 {
		tick = DefaultTick
	}

	input := event.NewQueueInput()
	defer input.Close()
	source, events := event.Spawn(input, tick)
	defer source.Stop()

	a := New(events, Options{
		Settings: ui.Settings{HideHelp: cfg.HideHelp, Verbose: cfg.Verbose},
		Keys:     ui.NewKeyMap(cfg.HelpKey, cfg.QuitKey),
		Starter:  client.NewStarter(b, cfg.SyncInterval),
	})
	model := NewModel(a, input, source, cfg.Width, cfg.Height)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
