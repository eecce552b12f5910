package pkgrouter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/julienschmidt/httprouter"
)

// maxLoggedBodyBytes caps how much of a body gets buffered for logging.
const maxLoggedBodyBytes = 64 * 1024

//nolint:gochecknoglobals // shared lookup table
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"access_token":  {},
	"refresh_token": {},
	"authorization": {},
	"cookie":        {},
}

func maskHeaders(headers http.Header) http.Header {
	masked := headers.Clone()
	for key := range masked {
		if _, found := sensitiveKeys[strings.ToLower(key)]; found {
			masked.Set(key, "***")
		}
	}

	return masked
}

func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, inner := range val {
			if _, found := sensitiveKeys[strings.ToLower(k)]; found {
				masked[k] = "***"
				continue
			}
			masked[k] = maskData(inner)
		}
		return masked
	case []any:
		masked := make([]any, len(val))
		for i, inner := range val {
			masked[i] = maskData(inner)
		}
		return masked
	default:
		return v
	}
}

// loggedResponse keeps a capped copy of the response for logging while
// passing everything through to the real writer.
type loggedResponse struct {
	http.ResponseWriter
	status int
	bytes  int
	body   bytes.Buffer
	capped bool
}

func (w *loggedResponse) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *loggedResponse) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	w.buffer(p)

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *loggedResponse) buffer(p []byte) {
	if w.capped || len(p) == 0 {
		return
	}

	remaining := maxLoggedBodyBytes - w.body.Len()
	if remaining <= 0 {
		w.capped = true
		return
	}
	if len(p) > remaining {
		p = p[:remaining]
		w.capped = true
	}
	w.body.Write(p)
}

func (w *loggedResponse) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

//nolint:err113 // dynamic error, never matched
func (w *loggedResponse) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	return h.Hijack()
}

func (w *loggedResponse) Push(target string, opts *http.PushOptions) error {
	if p, ok := w.ResponseWriter.(http.Pusher); ok {
		return p.Push(target, opts)
	}
	return http.ErrNotSupported
}

func matchedRoutePath(r *http.Request) string {
	if pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); pattern != "" {
		return pattern
	}

	return r.URL.Path
}

func parseAndMaskBody(contentType string, body []byte) any {
	if len(body) == 0 {
		return nil
	}

	var jsonBody any
	if err := json.Unmarshal(body, &jsonBody); err == nil {
		return maskData(jsonBody)
	}

	if strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		if values, err := url.ParseQuery(string(body)); err == nil {
			masked := make(map[string]any, len(values))
			for k, v := range values {
				switch {
				case hasSensitiveKey(k):
					masked[k] = "***"
				case len(v) == 1:
					masked[k] = v[0]
				default:
					masked[k] = v
				}
			}
			return masked
		}
	}

	if !utf8.Valid(body) {
		return "<binary body omitted>"
	}
	if len(body) > maxLoggedBodyBytes {
		return string(body[:maxLoggedBodyBytes]) + "...(truncated)"
	}

	return string(body)
}

func hasSensitiveKey(k string) bool {
	_, found := sensitiveKeys[strings.ToLower(k)]
	return found
}

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := matchedRoutePath(r)
		start := time.Now()

		slog.InfoContext(r.Context(), "request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"headers", maskHeaders(r.Header),
			"body", requestBodyForLog(r),
		)

		rec := &loggedResponse{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		slog.InfoContext(r.Context(), "response sent",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
			"body", responseBodyForLog(rec),
		)
	})
}

// requestBodyForLog buffers and restores the request body. Multipart uploads
// are never buffered; the handler streams them to disk.
func requestBodyForLog(r *http.Request) any {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(strings.ToLower(contentType), "multipart/form-data") {
		return "<multipart body omitted>"
	}

	var raw []byte
	if r.Body != nil {
		//nolint:errcheck // best effort for logging only
		raw, _ = io.ReadAll(r.Body)
	}
	r.Body = io.NopCloser(bytes.NewReader(raw))

	return parseAndMaskBody(contentType, raw)
}

func responseBodyForLog(rec *loggedResponse) any {
	raw := rec.body.Bytes()

	var body any
	var parsed any
	switch {
	case json.Unmarshal(raw, &parsed) == nil:
		body = maskData(parsed)
	case len(raw) > 0 && utf8.Valid(raw):
		body = string(raw)
	case len(raw) > 0:
		body = "<binary body omitted>"
	}

	if rec.capped {
		return map[string]any{"body": body, "truncated": true}
	}

	return body
}
