package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/gosheet/internal/pkg/pkglog"
)

// Generator produces unique strings, used here for request correlation IDs.
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID tracks a request end-to-end across logs.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is the alternative name some proxies send.
	HeaderRequestID = "X-Request-ID"
)

// maxCIDLen caps client-supplied correlation IDs so a hostile header cannot
// bloat every log record of the request.
const maxCIDLen = 128

func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if strings.ContainsAny(v, "\r\n") {
		return ""
	}
	if len(v) > maxCIDLen {
		v = v[:maxCIDLen]
	}

	return v
}

// middlewareCorrelationID adopts the client's correlation ID when it is
// usable, otherwise generates one. The ID goes into the response header and
// the request context.
func middlewareCorrelationID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := normalizeCID(r.Header.Get(HeaderCorrelationID))
			if cid == "" {
				cid = normalizeCID(r.Header.Get(HeaderRequestID))
			}
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
