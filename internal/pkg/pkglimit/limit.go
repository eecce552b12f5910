package pkglimit

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrSaturated is returned when no slot frees up within the wait window.
// Callers should surface it as a retryable condition.
var ErrSaturated = errors.New("too many concurrent uploads, please try again later")

// DefaultMaxConcurrent is used when New receives a non-positive limit.
const DefaultMaxConcurrent int64 = 5

// DefaultMaxWait is used when New receives a non-positive wait window.
const DefaultMaxWait = 30 * time.Second

// Limiter bounds how many units of work may run at the same time.
//
// Acquire blocks until a slot frees, the wait window expires, or the caller's
// context ends. Each successful Acquire must be paired with exactly one
// Release.
type Limiter struct {
	sem     *semaphore.Weighted
	maxWait time.Duration
}

// New creates a Limiter allowing at most maxConcurrent concurrent holders.
func New(maxConcurrent int64, maxWait time.Duration) *Limiter {
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}

	return &Limiter{
		sem:     semaphore.NewWeighted(maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire claims a slot, waiting up to the configured window.
//
// It returns ErrSaturated when the window expires with no free slot, or the
// context's error when the caller's context ends first.
func (l *Limiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	if err := l.sem.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrSaturated
	}

	return nil
}

// Release frees a slot claimed by Acquire.
func (l *Limiter) Release() {
	l.sem.Release(1)
}
