// Package workers runs the background jobs of the daemon. Every worker
// blocks in Run until its context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done or the worker fails. A worker that stops
// because ctx was cancelled returns nil.
type Worker interface {
	Run(ctx context.Context) error
}
