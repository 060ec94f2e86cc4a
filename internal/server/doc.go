// Package server runs the daemon's transport servers.
//
// It owns the listener lifecycle: startup, serving until the context is
// cancelled and a bounded graceful shutdown.
package server
