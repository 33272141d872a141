package app

import (
	"reflect"
	"time"

	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/logging/events"
	"github.com/atomicstack/matui/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces Step. Each frame handles at most one event and one
// notification, so it runs well ahead of the input tick.
const frameInterval = 16 * time.Millisecond

type frameMsg time.Time

type msgHandler func(tea.Msg) tea.Cmd

// Model hosts the App inside a Bubble Tea program. Terminal messages are
// pushed to the input goroutine; a frame timer drives Step.
type Model struct {
	app    *App
	input  *event.QueueInput
	source *event.Handle

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps app. Positive width or height pin the viewport instead of
// following the terminal size.
func NewModel(app *App, input *event.QueueInput, source *event.Handle, width, height int) *Model {
	m := &Model{app: app, input: input, source: source}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

func (m *Model) App() *App { return m.app }

func (m *Model) Init() tea.Cmd {
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleInputMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleInputMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleInputMsg(msg tea.Msg) tea.Cmd {
	if m.input != nil {
		m.input.Push(msg)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	// The event source drops resizes; the next View picks up the new size.
	return m.handleInputMsg(msg)
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	if m.app.Step() {
		events.App.Stop("quit")
		if m.source != nil {
			m.source.Stop()
		}
		return tea.Quit
	}
	return nextFrame()
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	f := render.NewFrame(m.width, m.height)
	m.app.Draw(f)
	return f.Render()
}
