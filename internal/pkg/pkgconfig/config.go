package pkgconfig

import (
	"io"
	"time"
)

// Config is the read-only view of application configuration.
//
// Keys use dot notation (for example "modules.sheet.upload_dir"). Absent
// keys resolve to the type's zero value, so callers supply their own
// fallbacks where zero is not a usable default.
type Config interface {
	// GetString returns the value for key as a string.
	GetString(key string) string

	// GetInt returns the value for key as an int64.
	GetInt(key string) int64

	// GetBool returns the value for key as a bool.
	GetBool(key string) bool

	// GetDuration returns the value for key parsed as a time.Duration.
	// Malformed values resolve to zero.
	GetDuration(key string) time.Duration

	io.Closer
}
