package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a request logger carrying "trace_id" to the context.
// An incoming X-Trace-ID header is reused, otherwise a new UUID is minted.
// The ID is echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
