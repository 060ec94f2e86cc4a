// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to record the status code
// and the number of body bytes written, for the access log.
//
// WriteHeader is forwarded to the underlying writer at most once.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader (or an implicit WriteHeader via
	// Write) is called.
	status int

	wroteHeader bool

	// size is the running total of body bytes across all Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies WriteHeader(http.StatusOK) when no status was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap exposes the underlying writer to [http.ResponseController].
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
