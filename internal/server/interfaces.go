package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled
	// or serving fails. On cancellation it shuts the server down gracefully
	// and returns the shutdown error, if any.
	RunServer(ctx context.Context) error
}
