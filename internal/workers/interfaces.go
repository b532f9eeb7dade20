// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutine and returns immediately; the worker
// runs until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is safe to call on a worker that never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusReporter publishes the serving status derived from health checks.
type StatusReporter interface {
	SetServing(serving bool)
}
