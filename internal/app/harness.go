package app

import (
	"github.com/atomicstack/matui/internal/bus"
	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// maxSettleSteps bounds Settle so a menu that keeps re-posting notifications
// cannot hang a test.
const maxSettleSteps = 256

// Harness drives an App without a terminal. Events are queued on a private
// mailbox and consumed through Step, exactly as the real loop does.
type Harness struct {
	app    *App
	events *bus.Mailbox[event.Event]
}

// NewHarness creates an App configured by opts behind a harness.
func NewHarness(opts Options) *Harness {
	events := bus.New[event.Event]()
	return &Harness{app: New(events, opts), events: events}
}

func (h *Harness) App() *App { return h.app }

// Queue adds ev without stepping.
func (h *Harness) Queue(ev event.Event) {
	_ = h.events.Send(ev)
}

// Send queues ev and runs frames until nothing is pending.
func (h *Harness) Send(ev event.Event) {
	h.Queue(ev)
	h.Settle()
}

func (h *Harness) Key(msg tea.KeyMsg) { h.Send(event.Key(msg)) }

// Type sends each rune of s as its own key press.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.Key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) Tick() { h.Send(event.Tick()) }

// Step runs a single frame.
func (h *Harness) Step() bool { return h.app.Step() }

// Settle runs frames until both mailboxes are empty or the app quits.
func (h *Harness) Settle() {
	for i := 0; i < maxSettleSteps; i++ {
		if h.events.Len() == 0 && h.app.Pending() == 0 {
			return
		}
		if h.app.Step() {
			return
		}
	}
}

// View draws a width x height frame and returns it without styling.
func (h *Harness) View(width, height int) string {
	f := render.NewFrame(width, height)
	h.app.Draw(f)
	return f.String()
}
