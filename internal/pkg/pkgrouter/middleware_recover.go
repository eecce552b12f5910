package pkgrouter

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
)

func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			// net/http treats this sentinel as a deliberate abort.
			//nolint:errorlint // must compare directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(r.Context(), "panic on the server", "because", rvr)
			dumpInternalFrames(debug.Stack())

			if r.Header.Get("Connection") != "Upgrade" {
				WriteJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// dumpInternalFrames prints only the stack frames that point into this
// repository, keeping panic output short enough to scan in a terminal.
func dumpInternalFrames(stack []byte) {
	fmt.Fprintln(os.Stderr, "===== panic stack =====")
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)
		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}

		frame := line[idx+1:]
		if end := strings.IndexByte(frame, ' '); end != -1 {
			frame = frame[:end]
		}
		fmt.Fprintln(os.Stderr, "stack trace:", frame)
	}
	fmt.Fprintln(os.Stderr, "===== end =====")
}
