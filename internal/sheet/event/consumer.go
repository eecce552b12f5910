package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

// Handler consumes upload events delivered by the consumer workers.
type Handler interface {
	Handle(ctx context.Context, event entity.UploadEvent) error
}

// ConsumerConfig tunes the audit consumer. Zero values fall back to
// working defaults.
type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.Workers < 1 {
		c.Workers = 4
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 100 * time.Millisecond
	}

	return c
}

// AuditConsumer drains upload events off the bus and feeds them to a
// handler, deduplicating by event ID and retrying transient failures with a
// doubling backoff.
type AuditConsumer struct {
	bus      *Bus
	handler  Handler
	cfg      ConsumerConfig
	seen     sync.Map
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

func NewAuditConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *AuditConsumer {
	return &AuditConsumer{
		bus:     bus,
		handler: handler,
		cfg:     cfg.withDefaults(),
		quit:    make(chan struct{}),
	}
}

// Start launches the worker pool.
func (c *AuditConsumer) Start() {
	for i := 0; i < c.cfg.Workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

// Stop closes the bus and waits for the workers to drain it, giving up when
// ctx ends. Workers sleeping between retries wake up immediately; events
// still buffered get one attempt each.
func (c *AuditConsumer) Stop(ctx context.Context) error {
	c.stopOnce.Do(func() {
		if c.bus != nil {
			c.bus.Close()
		}
		close(c.quit)
	})

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *AuditConsumer) worker() {
	defer c.wg.Done()

	for event := range c.bus.Subscribe() {
		c.record(event)
	}
}

func (c *AuditConsumer) record(event entity.UploadEvent) {
	if c.handler == nil {
		return
	}

	if event.EventID != "" {
		if _, dup := c.seen.LoadOrStore(event.EventID, struct{}{}); dup {
			slog.Info("skip duplicate upload event", "event_id", event.EventID, "file", event.FileName)
			return
		}
	}

	backoff := c.cfg.BaseBackoff
	for attempt := 0; ; attempt++ {
		err := c.handler.Handle(context.Background(), event)
		if err == nil {
			return
		}

		if attempt == c.cfg.MaxRetries {
			slog.Error("failed to record upload audit after retries", "event_id", event.EventID, "file", event.FileName, "error", err)
			return
		}

		if !c.pause(backoff) {
			return
		}
		backoff *= 2
	}
}

// pause sleeps for d, returning false when Stop interrupted the sleep.
func (c *AuditConsumer) pause(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-c.quit:
		return false
	}
}
