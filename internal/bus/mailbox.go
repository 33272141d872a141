// Package bus carries values between goroutines without ever blocking the
// sender. The UI loop drains its mailboxes one item per frame.
package bus

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Send and Recv once the mailbox has been closed.
var ErrClosed = errors.New("bus: mailbox closed")

// Sender is the producer half of a mailbox. Any number of goroutines may hold
// one.
type Sender[T any] interface {
	Send(T) error
}

// Mailbox is an unbounded multi-producer, single-consumer FIFO queue. Items
// from one producer are delivered in the order they were sent; items from
// different producers interleave in arrival order.
type Mailbox[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	signal chan struct{}
}

// New returns an empty, open mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{signal: make(chan struct{}, 1)}
}

// Send appends v to the queue. It never blocks. After Close it drops v and
// returns ErrClosed.
func (m *Mailbox[T]) Send(v T) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.items = append(m.items, v)
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Mailbox[T]) notify() {
	select {
	case m.signal <- struct{}{}:
	default:
	}
}

// TryRecv pops the oldest item without waiting.
func (m *Mailbox[T]) TryRecv() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	v := m.items[0]
	m.items[0] = zero
	m.items = m.items[1:]
	if len(m.items) == 0 {
		m.items = nil
	}
	return v, true
}

// Recv waits for an item, the context to end, or the mailbox to close with
// nothing left queued.
func (m *Mailbox[T]) Recv(ctx context.Context) (T, error) {
	for {
		if v, ok := m.TryRecv(); ok {
			return v, nil
		}
		var zero T
		if m.Closed() {
			return zero, ErrClosed
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-m.signal:
		}
	}
}

// Len reports how many items are waiting.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Closed reports whether Close has been called.
func (m *Mailbox[T]) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Close stops accepting new items. Queued items can still be received.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()
	m.notify()
}
