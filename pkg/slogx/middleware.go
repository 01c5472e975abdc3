package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/trippath/innkeeper/pkg/idx"
)

// probePaths are logged at debug so orchestrator health checks don't flood
// the access log.
var probePaths = map[string]bool{
	"/livez":  true,
	"/readyz": true,
}

// HTTPMiddleware logs each request and attaches a request-scoped logger to
// the request context. The request ID is taken from X-Request-ID when the
// caller supplies one, generated otherwise, and echoed back on the response.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}
			w.Header().Set("X-Request-ID", reqID)

			rw := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			next.ServeHTTP(rw, r.WithContext(WithContext(r.Context(), logger)))

			level := slog.LevelInfo
			if probePaths[r.URL.Path] {
				level = slog.LevelDebug
			}
			logger.Log(r.Context(), level, "http_request",
				"status", rw.status,
				"bytes", rw.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// responseRecorder captures the status code and body size for the access
// log. Proxied invoice downloads make the byte count worth having.
type responseRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (rw *responseRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseRecorder) Write(p []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += n
	return n, err
}
