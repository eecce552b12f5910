package store

import (
	"context"
	"sync"
	"testing"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

func TestInMemoryStats_Handle_Folds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stats := NewInMemoryStats()

	events := []entity.UploadEvent{
		{
			EventID:    "evt-1",
			FileName:   "people.csv",
			Format:     entity.FormatCSV,
			Status:     entity.UploadStatusProcessed,
			Rows:       10,
			OccurredAt: 100,
		},
		{
			EventID:    "evt-2",
			FileName:   "report.xlsx",
			Format:     entity.FormatXLSX,
			Status:     entity.UploadStatusProcessed,
			Rows:       5,
			OccurredAt: 300,
		},
		{
			EventID:    "evt-3",
			FileName:   "notes.txt",
			Status:     entity.UploadStatusFailed,
			Reason:     "unsupported",
			OccurredAt: 200,
		},
	}

	for _, event := range events {
		if err := stats.Handle(ctx, event); err != nil {
			t.Fatalf("Handle() err = %v", err)
		}
	}

	got, err := stats.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() err = %v", err)
	}

	want := entity.Stats{
		TotalUploads:     3,
		Processed:        2,
		Failed:           1,
		DelimitedUploads: 1,
		WorkbookUploads:  1,
		RowsParsed:       15,
		LastUploadAt:     300,
	}
	if got != want {
		t.Fatalf("Stats() = %+v, want %+v", got, want)
	}
}

func TestInMemoryStats_Empty(t *testing.T) {
	t.Parallel()

	got, err := NewInMemoryStats().Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() err = %v", err)
	}
	if got != (entity.Stats{}) {
		t.Fatalf("Stats() = %+v, want zero value", got)
	}
}

func TestInMemoryStats_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stats := NewInMemoryStats()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = stats.Handle(ctx, entity.UploadEvent{
				Format: entity.FormatCSV,
				Status: entity.UploadStatusProcessed,
				Rows:   1,
			})
		}()
	}
	wg.Wait()

	got, err := stats.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() err = %v", err)
	}
	if got.TotalUploads != 50 || got.RowsParsed != 50 {
		t.Fatalf("Stats() = %+v, want 50 uploads and rows", got)
	}
}
