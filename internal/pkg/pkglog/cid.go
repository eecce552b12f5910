package pkglog

import "context"

type correlationKey struct{}

// SetCorrelationID stores a request correlation ID in the context. The HTTP
// middleware calls this once per request, before any handler logging runs.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cid)
}

// GetCorrelationID returns the correlation ID in the context, or the empty
// string when none was set.
func GetCorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(correlationKey{}).(string)
	return cid
}
