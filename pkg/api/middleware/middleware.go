package middleware

import (
	"net/http"
	"time"

	"github.com/cbodonnell/redracer/pkg/log"
)

// statusRecorder captures the status code written by the next handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// NewLoggingMiddleware logs every request at debug level, and failed ones
// at warn level.
func NewLoggingMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			if rec.status >= http.StatusBadRequest {
				log.Warn("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
				return
			}
			log.Debug("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
		})
	}
}
