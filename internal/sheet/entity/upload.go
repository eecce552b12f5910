package entity

import "time"

// StoredFile points at one uploaded file persisted under the upload
// directory. It never outlives the request that created it.
type StoredFile struct {
	Path string
	Name string
	Size int64
}

// UploadEvent is published after every finished pipeline, processed or
// failed, and feeds the audit counters.
type UploadEvent struct {
	EventID    string
	FileName   string
	Format     Format
	Status     UploadStatus
	Reason     string
	Size       int64
	Rows       int64
	Sheets     int64
	Duration   time.Duration
	OccurredAt int64
}

// Stats aggregates upload events for observability.
type Stats struct {
	TotalUploads     int64
	Processed        int64
	Failed           int64
	DelimitedUploads int64
	WorkbookUploads  int64
	RowsParsed       int64
	LastUploadAt     int64
}
