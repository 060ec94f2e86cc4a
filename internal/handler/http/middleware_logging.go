package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level, client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		log.WithLevel(accessLevel(status)).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
