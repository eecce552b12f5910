// Package pkglog wires the application's structured logging.
//
// It installs a JSON slog handler with renamed standard keys and a wrapping
// handler that stamps every record with the service name and, when present,
// the request correlation ID.
package pkglog
