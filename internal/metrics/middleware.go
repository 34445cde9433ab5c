package metrics

import (
	"net/http"
	"strings"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// HTTPMiddleware returns middleware that records HTTP metrics.
func HTTPMiddleware(reg *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reg.InFlightInc()
			defer reg.InFlightDec()

			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			duration := time.Since(start).Seconds()
			reg.RecordRequest(r.Method, normalizePath(r.URL.Path), rw.statusCode, duration)
		})
	}
}

// normalizePath collapses per-trade subpaths so the path label stays
// low-cardinality; trade IDs are UUIDs and must not become label values.
func normalizePath(path string) string {
	const prefix = "/api/v1/trades/"
	if rest, ok := strings.CutPrefix(path, prefix); ok && rest != "" {
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return prefix + "{id}" + rest[i:]
		}
		return prefix + "{id}"
	}
	return path
}
