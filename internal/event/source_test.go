package event

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/matui/internal/bus"
	tea "github.com/charmbracelet/bubbletea"
)

func nextNonTick(t *testing.T, m *bus.Mailbox[Event]) Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for {
		ev, err := m.Recv(ctx)
		if err != nil {
			t.Fatalf("timed out waiting for input event: %v", err)
		}
		if ev.Kind != KindTick {
			return ev
		}
	}
}

func TestSpawnForwardsKeysAndMouse(t *testing.T) {
	input := NewQueueInput()
	h, events := Spawn(input, 20*time.Millisecond)
	defer h.Stop()

	input.Push(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	input.Push(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	ev := nextNonTick(t, events)
	if ev.Kind != KindKey || ev.Key.String() != "a" {
		t.Fatalf("expected key a, got %s", ev)
	}
	ev = nextNonTick(t, events)
	if ev.Kind != KindMouse || ev.Mouse.X != 3 || ev.Mouse.Y != 4 {
		t.Fatalf("expected mouse at 3,4, got %+v", ev)
	}
}

func TestSpawnDiscardsResize(t *testing.T) {
	input := NewQueueInput()
	h, events := Spawn(input, 20*time.Millisecond)
	defer h.Stop()

	input.Push(tea.WindowSizeMsg{Width: 80, Height: 24})
	input.Push(tea.KeyMsg{Type: tea.KeyEnter})

	ev := nextNonTick(t, events)
	if ev.Kind != KindKey || ev.Key.Type != tea.KeyEnter {
		t.Fatalf("expected resize to be skipped and enter delivered, got %s", ev)
	}
}

func TestSpawnEmitsTicks(t *testing.T) {
	h, events := Spawn(NewQueueInput(), 5*time.Millisecond)
	defer h.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ticks := 0
	for ticks < 3 {
		ev, err := events.Recv(ctx)
		if err != nil {
			t.Fatalf("expected ticks, got %d before %v", ticks, err)
		}
		if ev.Kind == KindTick {
			ticks++
		}
	}
}

func TestHandleStopIsIdempotent(t *testing.T) {
	h, _ := Spawn(NewQueueInput(), time.Millisecond)
	h.Stop()
	h.Stop()
	if !h.stopped() {
		t.Fatalf("expected handle to report stopped")
	}
}

func TestQueueInputPollTimesOut(t *testing.T) {
	input := NewQueueInput()
	start := time.Now()
	if msg, err := input.Poll(10 * time.Millisecond); msg != nil || err != nil {
		t.Fatalf("expected empty poll, got %v %v", msg, err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Fatalf("expected poll to wait for the budget")
	}
	if msg, err := input.Poll(0); msg != nil || err != nil {
		t.Fatalf("expected zero-budget poll to return immediately, got %v %v", msg, err)
	}
	input.Push(tea.KeyMsg{Type: tea.KeyEsc})
	if msg, err := input.Poll(0); err != nil || msg.(tea.KeyMsg).Type != tea.KeyEsc {
		t.Fatalf("expected queued esc, got %v %v", msg, err)
	}
}

func TestQueueInputPollReportsClose(t *testing.T) {
	input := NewQueueInput()
	input.Push(tea.KeyMsg{Type: tea.KeyEnter})
	input.Close()

	if msg, err := input.Poll(0); err != nil || msg == nil {
		t.Fatalf("expected queued message before close is reported, got %v %v", msg, err)
	}
	if _, err := input.Poll(0); !errors.Is(err, bus.ErrClosed) {
		t.Fatalf("expected closed error without budget, got %v", err)
	}
	if _, err := input.Poll(10 * time.Millisecond); !errors.Is(err, bus.ErrClosed) {
		t.Fatalf("expected closed error with budget, got %v", err)
	}
}

type closedInput struct{ polls atomic.Int32 }

func (c *closedInput) Poll(time.Duration) (tea.Msg, error) {
	c.polls.Add(1)
	return nil, bus.ErrClosed
}

func TestInputGoroutineReturnsWhenInputCloses(t *testing.T) {
	input := &closedInput{}
	h, _ := Spawn(input, 5*time.Millisecond)
	defer h.Stop()

	time.Sleep(50 * time.Millisecond)
	if n := input.polls.Load(); n != 1 {
		t.Fatalf("expected a single poll of a closed input, got %d", n)
	}
}
