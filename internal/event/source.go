package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/matui/internal/bus"
	"github.com/atomicstack/matui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Input is a source of raw terminal messages. Poll waits at most timeout for
// the next message. It returns a nil message when none arrived and an error
// once the input is closed.
type Input interface {
	Poll(timeout time.Duration) (tea.Msg, error)
}

// QueueInput is an Input fed by whoever owns the terminal. The Bubble Tea
// host pushes every key, mouse and resize message it receives.
type QueueInput struct {
	queue *bus.Mailbox[tea.Msg]
}

func NewQueueInput() *QueueInput {
	return &QueueInput{queue: bus.New[tea.Msg]()}
}

// Push queues msg for the input goroutine. It never blocks.
func (q *QueueInput) Push(msg tea.Msg) {
	if err := q.queue.Send(msg); err != nil {
		events.Bus.SendDropped("input", err)
	}
}

func (q *QueueInput) Poll(timeout time.Duration) (tea.Msg, error) {
	if timeout <= 0 {
		if msg, ok := q.queue.TryRecv(); ok {
			return msg, nil
		}
		if q.queue.Closed() {
			return nil, bus.ErrClosed
		}
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	msg, err := q.queue.Recv(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, nil
	}
	return msg, err
}

// Close stops accepting messages.
func (q *QueueInput) Close() {
	q.queue.Close()
}

// Handle controls the goroutines started by Spawn.
type Handle struct {
	stop chan struct{}
	once sync.Once
}

// Stop asks both goroutines to return. It does not wait for them.
func (h *Handle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

func (h *Handle) stopped() bool {
	select {
	case <-h.stop:
		return true
	default:
		return false
	}
}

// Spawn starts the input and tick goroutines. Both share the returned
// mailbox; there is no priority between them.
func Spawn(input Input, tick time.Duration) (*Handle, *bus.Mailbox[Event]) {
	h := &Handle{stop: make(chan struct{})}
	out := bus.New[Event]()
	go readInput(h, input, tick, out)
	go emitTicks(h, tick, out)
	return h, out
}

func readInput(h *Handle, input Input, tick time.Duration, out bus.Sender[Event]) {
	defer events.Input.Stopped("input")
	lastTick := time.Now()
	for !h.stopped() {
		budget := max(tick-time.Since(lastTick), 0)
		msg, err := input.Poll(budget)
		if err != nil {
			return
		}
		if msg != nil {
			forward(msg, out)
		}
		if time.Since(lastTick) >= tick {
			lastTick = time.Now()
		}
	}
}

func forward(msg tea.Msg, out bus.Sender[Event]) {
	var ev Event
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev = Key(msg)
	case tea.MouseMsg:
		ev = Mouse(msg)
	case tea.WindowSizeMsg:
		events.Input.ResizeDiscarded(msg.Width, msg.Height)
		return
	default:
		return
	}
	if err := out.Send(ev); err != nil {
		events.Bus.SendDropped("event", err)
	}
}

func emitTicks(h *Handle, tick time.Duration, out bus.Sender[Event]) {
	timer := time.NewTimer(tick)
	defer timer.Stop()
	for {
		select {
		case <-h.stop:
			events.Input.Stopped("tick")
			return
		case <-timer.C:
		}
		if err := out.Send(Tick()); err != nil {
			events.Bus.SendDropped("event", err)
		}
		timer.Reset(tick)
	}
}
