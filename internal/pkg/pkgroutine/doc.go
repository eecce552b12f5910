// Package pkgroutine runs background work under a concurrency cap.
//
// The request path hands fire-and-forget tasks, such as event publication,
// to a Manager so they outlive the request without leaking unbounded
// goroutines, and so shutdown can wait for them.
package pkgroutine
