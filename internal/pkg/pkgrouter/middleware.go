package pkgrouter

import "net/http"

// Middleware decorates an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain wraps handler with the given middleware so that the first entry
// becomes the outermost layer.
func Chain(handler http.Handler, chain ...Middleware) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	return handler
}
