package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) }

	router.Get("/api/items", ok)
	router.Post("/api/items", ok)
	router.Delete("/api/items/{id}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered GET", http.MethodGet, "/api/items", http.StatusOK},
		{"registered POST", http.MethodPost, "/api/items", http.StatusOK},
		{"registered DELETE with param", http.MethodDelete, "/api/items/42", http.StatusOK},
		{"unregistered PUT becomes 404", http.MethodPut, "/api/items", http.StatusNotFound},
		{"unregistered GET on param route becomes 404", http.MethodGet, "/api/items/42", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_DelegatesMatchingMethod(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
