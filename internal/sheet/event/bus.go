package event

import (
	"context"
	"errors"
	"sync"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

// ErrBusClosed is returned by Publish after Close.
var ErrBusClosed = errors.New("event bus is closed")

// Bus is a buffered in-process feed of upload events with a close-safe
// publish side.
type Bus struct {
	mu     sync.RWMutex
	closed bool
	events chan entity.UploadEvent
}

// NewBus creates a Bus holding at most buffer undelivered events.
func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{events: make(chan entity.UploadEvent, buffer)}
}

// Publish enqueues event for the consumers. It blocks while the buffer is
// full and fails with the context's error when ctx ends first.
func (b *Bus) Publish(ctx context.Context, event entity.UploadEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	select {
	case b.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns the consuming side of the bus. The channel closes when
// the bus closes.
func (b *Bus) Subscribe() <-chan entity.UploadEvent {
	return b.events
}

// Close stops the bus. Events already in the buffer stay readable; further
// publishes fail with ErrBusClosed. Close is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.events)
	}
}
