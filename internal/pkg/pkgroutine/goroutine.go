package pkgroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine = 10

// Manager runs background tasks under a bounded level of concurrency.
//
// Tasks report failures by returning errors; Wait joins everything collected
// so shutdown paths can surface background failures.
type Manager struct {
	mu    sync.Mutex
	errs  []error
	wg    sync.WaitGroup
	slots chan struct{}
}

// NewManager creates a Manager allowing at most maxGoroutine tasks at once.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{slots: make(chan struct{}, maxGoroutine)}
}

// Go runs f on its own goroutine, blocking while the manager is at capacity.
// When ctx ends before a slot frees, or before f starts, f is dropped and a
// warning is logged.
func (m *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	select {
	case m.slots <- struct{}{}:
	case <-ctx.Done():
		slog.WarnContext(ctx, "goroutine canceled before start", "because", ctx.Err())
		return
	}

	m.wg.Add(1)
	go m.run(ctx, f)
}

func (m *Manager) run(ctx context.Context, f func(ctx context.Context) error) {
	defer m.wg.Done()
	defer func() {
		<-m.slots

		if rvr := recover(); rvr != nil {
			slog.ErrorContext(ctx, "panic occurred in goroutine", "stack", string(debug.Stack()))
		}
	}()

	select {
	case <-ctx.Done():
		slog.WarnContext(ctx, "goroutine canceled", "because", ctx.Err())
		return
	default:
	}

	if err := f(ctx); err != nil {
		m.mu.Lock()
		m.errs = append(m.errs, err)
		m.mu.Unlock()
	}
}

// Wait blocks until every scheduled task finishes and returns the collected
// errors joined together.
func (m *Manager) Wait() error {
	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()

	return errors.Join(m.errs...)
}
