package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, incoming string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"reuses incoming trace id", "my-custom-trace-id"},
		{"reuses incoming uuid", "550e8400-e29b-41d4-a716-446655440000"},
		{"generates uuid when absent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			rr := executeWithTraceID(h, tt.incoming, next)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusTeapot, rr.Code)
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	seen := make(map[string]struct{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for range 50 {
		id := executeWithTraceID(h, "", next).Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace id %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_RequestLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewLoggerTo(&buf, "notesd")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	executeWithTraceID(h, "trace-42", next)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}
