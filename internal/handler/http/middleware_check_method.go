// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] meant to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 Not Found whenever the requested
// method has no handler for the matched path, so callers using an
// unsupported method learn nothing about which routes exist. Parameterised
// patterns such as "/api/notes/{id}" are matched through [chi.Mux.Match].
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
