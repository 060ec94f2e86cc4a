// Package http implements the daemon's REST API.
//
// It wires chi routes for the master password lifecycle, login sessions
// and notes, and carries the request-scoped middleware: trace IDs, access
// logging, bearer authentication and the method check. Every non-2xx
// response body is a [models.ErrorResponse].
//
// [models.ErrorResponse]: github.com/MKhiriev/go-secret-notes/models.ErrorResponse
package http
