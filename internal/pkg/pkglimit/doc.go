// Package pkglimit provides a small concurrency limiter built on a weighted
// semaphore.
//
// The application uses it to cap simultaneous upload pipelines so a burst of
// slow clients cannot exhaust disk or CPU. Waiting is bounded; callers get a
// retryable error instead of queueing forever.
package pkglimit
