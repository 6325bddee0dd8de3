package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// statusRecorder captures the response status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument tags each request with an ID, records metrics under the route's
// canonical path, and logs the outcome.
func (s *Server) instrument(path string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		duration := time.Since(start)
		s.metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
		s.metrics.HTTPDuration.WithLabelValues(path).Observe(duration.Seconds())
		s.logger.Debug("request handled",
			"request_id", requestID,
			"path", path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"duration", duration,
		)
	})
}
