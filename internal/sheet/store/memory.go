package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

// InMemoryStats folds upload events into running counters. It doubles
// as the audit event handler and as the read model behind the stats
// endpoint.
type InMemoryStats struct {
	mu    sync.RWMutex
	stats entity.Stats
}

func NewInMemoryStats() *InMemoryStats {
	return &InMemoryStats{}
}

func (s *InMemoryStats) Handle(ctx context.Context, event entity.UploadEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.TotalUploads++

	switch event.Status {
	case entity.UploadStatusProcessed:
		s.stats.Processed++
	case entity.UploadStatusFailed:
		s.stats.Failed++
	}

	switch {
	case event.Format.Delimited():
		s.stats.DelimitedUploads++
	case event.Format.Workbook():
		s.stats.WorkbookUploads++
	}

	s.stats.RowsParsed += event.Rows
	if event.OccurredAt > s.stats.LastUploadAt {
		s.stats.LastUploadAt = event.OccurredAt
	}

	return nil
}

func (s *InMemoryStats) Stats(ctx context.Context) (entity.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stats, nil
}
